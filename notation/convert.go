package notation

import (
	"math/bits"
	"strings"
)

// Transform renders a validated digit string of system from in system to.
//
// Binary, octal and hexadecimal are converted into each other by regrouping
// bits and work for digit strings of any length. Conversions involving
// decimal go through a uint64 magnitude and fail with ErrOverflow above
// math.MaxUint64. Converting a system to itself returns digits unchanged.
func Transform(digits string, from, to System) (string, error) {
	switch {
	case from == to:
		return digits, nil
	case from == Decimal || to == Decimal:
		m, err := magnitude(digits, from)
		if err != nil {
			return "", err
		}
		return render(m, to), nil
	case to == Binary:
		return expand(digits, from)
	case from == Binary:
		return regroup(digits, to)
	default:
		// octal and hexadecimal meet in binary
		bitString, err := expand(digits, from)
		if err != nil {
			return "", err
		}
		return regroup(bitString, to)
	}
}

// expand concatenates the full-width bit groups of every digit and strips
// the leading zeros of the result.
func expand(digits string, from System) (string, error) {
	var b strings.Builder
	b.Grow(len(digits) * from.GroupWidth())
	for _, c := range digits {
		group, err := BinaryGroup(c, from)
		if err != nil {
			return "", err
		}
		b.WriteString(group)
	}
	bitString := strings.TrimLeft(b.String(), "0")
	if bitString == "" {
		return "0", nil
	}
	return bitString, nil
}

// regroup reads a bit string as octal or hexadecimal digits. Only the most
// significant group may be shorter than the group width; it is consumed
// first, then the rest of the string in full-width groups.
func regroup(bitString string, to System) (string, error) {
	width := to.GroupWidth()
	var b strings.Builder
	b.Grow(len(bitString)/width + 1)

	if head := len(bitString) % width; head != 0 {
		d, err := GroupDigit(bitString[:head])
		if err != nil {
			return "", err
		}
		b.WriteRune(d)
		bitString = bitString[head:]
	}
	for len(bitString) > 0 {
		d, err := GroupDigit(bitString[:width])
		if err != nil {
			return "", err
		}
		b.WriteRune(d)
		bitString = bitString[width:]
	}
	return b.String(), nil
}

// magnitude sums digit * base^k over the digit string, k counted from the
// least significant end, and reports ErrOverflow instead of wrapping.
func magnitude(digits string, from System) (uint64, error) {
	base := from.Base()
	var (
		total          uint64
		weight         uint64 = 1
		weightOverflow bool
	)
	runes := []rune(digits)
	for i := len(runes) - 1; i >= 0; i-- {
		v, err := Value(runes[i], from)
		if err != nil {
			return 0, err
		}
		if v != 0 {
			if weightOverflow {
				return 0, &Error{Kind: Overflow}
			}
			hi, term := bits.Mul64(uint64(v), weight)
			if hi != 0 {
				return 0, &Error{Kind: Overflow}
			}
			sum, carry := bits.Add64(total, term, 0)
			if carry != 0 {
				return 0, &Error{Kind: Overflow}
			}
			total = sum
		}
		if !weightOverflow {
			hi, next := bits.Mul64(weight, base)
			weightOverflow = hi != 0
			weight = next
		}
	}
	return total, nil
}

// render emits m in system to by repeated division. Remainders come out
// least significant first, so the buffer is filled from its end.
func render(m uint64, to System) string {
	if m == 0 {
		return "0"
	}
	base := to.Base()
	var buf [64]byte
	i := len(buf)
	for m != 0 {
		i--
		buf[i] = digits[m%base]
		m /= base
	}
	return string(buf[i:])
}
