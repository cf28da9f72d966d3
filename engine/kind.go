package engine

// Kind is the symbol a token carries. Only equality is meaningful.
type Kind int

const (
	Empty Kind = iota
	Car
	Bus
	Bike
	Scooter
	Train
)

// Kinds lists every playable kind (Empty excluded).
var Kinds = []Kind{Car, Bus, Bike, Scooter, Train}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Car:
		return "car"
	case Bus:
		return "bus"
	case Bike:
		return "bike"
	case Scooter:
		return "scooter"
	case Train:
		return "train"
	default:
		return "unknown"
	}
}

// Token is what a cell holds. Status is a free annotation for the
// presentation layer (selection, highlight) and is ignored by matching.
type Token struct {
	Kind   Kind
	Status string
}

func (t Token) IsEmpty() bool {
	return t.Kind == Empty
}

func (t Token) String() string {
	if t.Status == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Status + ")"
}
