package entities

// Control says who drives a roster seat
type Control int

const (
	// ControlHuman seats take actions from the caller
	ControlHuman Control = iota
	// ControlCPU seats take actions from the CPU brain
	ControlCPU
)

// String returns "human" or "cpu"
func (c Control) String() string {
	switch c {
	case ControlHuman:
		return "human"
	case ControlCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

// Seat is one roster entry: a player and how it is controlled
type Seat struct {
	Player  *Player
	Control Control
}

// IsCPU reports whether the seat is played by the CPU brain
func (s *Seat) IsCPU() bool {
	return s.Control == ControlCPU
}
