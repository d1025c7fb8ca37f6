package scorestore

// Memory keeps the score in memory for the life of the process.
type Memory struct {
	score int
	saves int
}

// NewMemory creates a Memory store holding score.
func NewMemory(score int) *Memory {
	return &Memory{score: score}
}

// Load returns the stored score.
func (m *Memory) Load() (int, error) {
	return m.score, nil
}

// Save replaces the stored score.
func (m *Memory) Save(score int) error {
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	return m.saves
}
