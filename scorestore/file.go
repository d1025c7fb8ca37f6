// Package scorestore keeps the highest score between games.
package scorestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// DefaultFile is the file the high score is kept in when no other path is
// given.
const DefaultFile = "HighestScore.txt"

// File stores the score as a plain-text decimal integer.
type File struct {
	path string
}

// NewFile creates a File store at path. The file is not touched until Load
// or Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the path of the score file.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored score, or 0 if the file does not exist. A file that
// does not hold an integer is reported as an error along with 0.
func (f *File) Load() (int, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("os.ReadFile: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return score, nil
}

// Save overwrites the file with score.
func (f *File) Save(score int) error {
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	return nil
}
