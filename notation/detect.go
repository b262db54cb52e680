package notation

// Detect selects the numeral system named by the trailing character of an input.
// A trailing decimal digit means the input carries no suffix and is decimal.
func Detect(trailing rune) (System, error) {
	switch trailing {
	case 'b', 'B':
		return Binary, nil
	case 'o', 'O', 'q', 'Q':
		return Octal, nil
	case 'd', 'D':
		return Decimal, nil
	case 'h', 'H':
		return Hexadecimal, nil
	}
	if isDecimalDigit(trailing) {
		return Decimal, nil
	}
	return 0, &Error{Kind: InvalidNotation, Char: trailing}
}

func isDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
