package notation

import "fmt"

const digits = "0123456789abcdef"

// Value returns the numeric value of digit c in system s.
// Hexadecimal letters are accepted in either case.
func Value(c rune, s System) (uint8, error) {
	var v uint8
	switch {
	case c >= '0' && c <= '9':
		v = uint8(c - '0')
	case c >= 'a' && c <= 'f':
		v = uint8(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = uint8(c-'A') + 10
	default:
		return 0, &Error{Kind: InvalidDigit, Char: c}
	}
	if uint64(v) >= s.Base() {
		return 0, &Error{Kind: InvalidDigit, Char: c}
	}
	return v, nil
}

// Digit returns the lower-case digit character for v. It panics if v > 15.
func Digit(v uint8) rune {
	return rune(digits[v])
}

// BinaryGroup expands an octal or hexadecimal digit into its zero-padded
// 3 or 4 bit binary form.
func BinaryGroup(c rune, s System) (string, error) {
	if s != Octal && s != Hexadecimal {
		return "", fmt.Errorf("notation: %v digits do not expand to bit groups", s)
	}
	v, err := Value(c, s)
	if err != nil {
		return "", err
	}
	group := make([]byte, s.GroupWidth())
	for i := len(group) - 1; i >= 0; i-- {
		group[i] = '0' + v&1
		v >>= 1
	}
	return string(group), nil
}

// GroupDigit is the inverse of BinaryGroup. It accepts groups of one to four
// bits since the most significant group of a number may be short.
func GroupDigit(bits string) (rune, error) {
	if len(bits) == 0 || len(bits) > Hexadecimal.GroupWidth() {
		return 0, fmt.Errorf("notation: bit group %q must hold 1 to 4 bits", bits)
	}
	var v uint8
	for _, c := range bits {
		b, err := Value(c, Binary)
		if err != nil {
			return 0, err
		}
		v = v<<1 | b
	}
	return Digit(v), nil
}
