package tetris

// Action represents a command the player can issue to a Game.
type Action uint8

// All possible actions.
const (
	NoAction Action = iota
	Left
	Right
	RotateCW
	RotateCCW
	SoftDrop

	// actionLimit is used to iterate through all actions.
	actionLimit
)

func (a Action) String() string {
	switch a {
	case NoAction:
		return "No_Action"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case RotateCW:
		return "Rotate_CW"
	case RotateCCW:
		return "Rotate_CCW"
	case SoftDrop:
		return "Soft_Drop"
	}
	return "Unknown"
}

// Inverse returns the action that undoes a. SoftDrop has no inverse because a
// piece never moves up; NoAction is returned for it.
func (a Action) Inverse() Action {
	switch a {
	case Left:
		return Right
	case Right:
		return Left
	case RotateCW:
		return RotateCCW
	case RotateCCW:
		return RotateCW
	}
	return NoAction
}
