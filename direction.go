package spritegen

// Direction is a character facing. The declared order is the row order of
// the player sheet and the frame order of the legendary strip.
type Direction int

const (
	South Direction = iota
	West
	East
	North
)

// Directions lists all facings in sheet order.
var Directions = [...]Direction{South, West, East, North}

func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	}
	return "unknown"
}

// facing holds the per-direction occlusion rules: which arms and eyes are
// drawn and whether the hair shows its back shape. The near arm hides when
// the body turns past it, and the back of the head has no eyes.
type facing struct {
	leftArm  bool
	rightArm bool
	leftEye  bool
	rightEye bool
	backHair bool
}

var facings = [...]facing{
	South: {leftArm: true, rightArm: true, leftEye: true, rightEye: true},
	West:  {leftArm: true, leftEye: true},
	East:  {rightArm: true, rightEye: true},
	North: {leftArm: true, rightArm: true, backHair: true},
}

// walkOffsets is the 4-phase leg bounce: neutral, up, neutral, down. The
// left leg shifts by the offset, the right leg by its negation.
var walkOffsets = [...]int{0, -1, 0, 1}
