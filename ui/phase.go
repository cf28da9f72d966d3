package ui

// Phase is what the window shows the player between frames.
type Phase int

const (
	Idle Phase = iota
	Drag
	Matched
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Drag:
		return "Drag"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}
