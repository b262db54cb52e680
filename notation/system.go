package notation

// System is a positional numeral system.
type System uint8

const (
	Binary System = iota
	Octal
	Decimal
	Hexadecimal
)

// Systems lists every supported System in ascending base order.
func Systems() []System {
	return []System{Binary, Octal, Decimal, Hexadecimal}
}

// Base returns the radix of the system.
func (s System) Base() uint64 {
	switch s {
	case Binary:
		return 2
	case Octal:
		return 8
	case Decimal:
		return 10
	case Hexadecimal:
		return 16
	}
	panic("notation: unknown system")
}

// GroupWidth is the number of bits a single digit of s spans.
// It is zero for Decimal, whose digits do not align with bits.
func (s System) GroupWidth() int {
	switch s {
	case Binary:
		return 1
	case Octal:
		return 3
	case Hexadecimal:
		return 4
	}
	return 0
}

// Suffix is the canonical notation suffix of the system.
func (s System) Suffix() rune {
	switch s {
	case Binary:
		return 'b'
	case Octal:
		return 'o'
	case Decimal:
		return 'd'
	case Hexadecimal:
		return 'h'
	}
	panic("notation: unknown system")
}

func (s System) String() string {
	switch s {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return "Unknown"
}
