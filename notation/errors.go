package notation

import "fmt"

// Kind classifies conversion failures.
type Kind uint8

const (
	// Empty means there was no input at all.
	Empty Kind = iota + 1
	// InvalidNotation means the trailing character is neither a suffix nor a digit.
	InvalidNotation
	// InvalidDigit means a character is not a legal digit of the detected system.
	InvalidDigit
	// Zero means the input represents the value zero, which is not converted.
	Zero
	// Overflow means the magnitude does not fit in 64 bits.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case InvalidNotation:
		return "invalid_notation"
	case InvalidDigit:
		return "invalid_digit"
	case Zero:
		return "zero"
	case Overflow:
		return "overflow"
	}
	return "unknown"
}

var (
	ErrEmpty           = &Error{Kind: Empty}
	ErrInvalidNotation = &Error{Kind: InvalidNotation}
	ErrInvalidDigit    = &Error{Kind: InvalidDigit}
	ErrZero            = &Error{Kind: Zero}
	ErrOverflow        = &Error{Kind: Overflow}
)

// Error is returned by every failing operation of this package.
// Char holds the offending character for InvalidNotation and InvalidDigit.
type Error struct {
	Kind  Kind
	Char  rune
	Input string
}

func (e *Error) Error() string {
	switch e.Kind {
	case Empty:
		return "input cannot be empty"
	case InvalidNotation:
		return fmt.Sprintf("invalid notation ending: %c", e.Char)
	case InvalidDigit:
		return fmt.Sprintf("invalid digit in number: %c", e.Char)
	case Zero:
		return "0 in all notations is 0"
	case Overflow:
		if e.Input != "" {
			return fmt.Sprintf("number %s exceeds 64 bits", e.Input)
		}
		return "number exceeds 64 bits"
	}
	return "unknown notation error"
}

// Is matches errors of the same kind. A target without a character
// (such as ErrInvalidDigit) matches any offending character.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other.Kind != e.Kind {
		return false
	}
	return other.Char == 0 || other.Char == e.Char
}

func withInput(err error, input string) error {
	if e, ok := err.(*Error); ok && e.Input == "" {
		return &Error{Kind: e.Kind, Char: e.Char, Input: input}
	}
	return err
}
