package units

import "fmt"

// Base scale factors. Quantities are written as value*unit, e.g.
// 9.80616*Metre/(Second*Second). No dimension checking is performed.
const (
	Metre  = 1.0
	Second = 1.0
	Hour   = 3600 * Second

	Minute    = 60 * Second
	Kilometre = 1000 * Metre
)

// System is a caller-selected set of base scales. Everything derived from a
// System uses the same base, so mixing Systems is the caller's problem.
type System struct {
	Metre, Second, Hour float64
}

func SI() System {
	return System{
		Metre:  Metre,
		Second: Second,
		Hour:   Hour,
	}
}

// NewSystem builds a System from a length and time scale, with the hour
// derived from the second.
func NewSystem(metre, second float64) System {
	return System{
		Metre:  metre,
		Second: second,
		Hour:   3600 * second,
	}
}

func (s System) Minute() float64    { return 60 * s.Second }
func (s System) Kilometre() float64 { return 1000 * s.Metre }
func (s System) Day() float64       { return 24 * s.Hour }

func (s System) Validate() (err error) {
	switch {
	case !(s.Metre > 0):
		err = fmt.Errorf("metre scale must be positive, have %v", s.Metre)
	case !(s.Second > 0):
		err = fmt.Errorf("second scale must be positive, have %v", s.Second)
	case !(s.Hour > 0):
		err = fmt.Errorf("hour scale must be positive, have %v", s.Hour)
	}
	return
}
