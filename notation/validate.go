package notation

import (
	"strings"
	"unicode/utf8"
)

// Validate strips the notation suffix and leading zeros from raw and checks
// that every remaining character is a digit of s. The returned digit string
// keeps the case of the input.
func Validate(raw string, s System) (string, error) {
	digitString := raw
	if last, size := utf8.DecodeLastRuneInString(raw); size > 0 && !isDecimalDigit(last) {
		digitString = raw[:len(raw)-size]
	}
	digitString = strings.TrimLeft(digitString, "0")
	if digitString == "" {
		return "", &Error{Kind: Zero, Input: raw}
	}
	for _, c := range digitString {
		if _, err := Value(c, s); err != nil {
			return "", withInput(err, raw)
		}
	}
	return digitString, nil
}
