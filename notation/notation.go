package notation

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
)

// Result holds one input rendered in every numeral system.
type Result struct {
	// System is the system detected from the input suffix.
	System System
	// Digits is the validated input without suffix and leading zeros.
	Digits string
	// Magnitude is the value the digits represent.
	Magnitude uint64

	Binary      string
	Octal       string
	Decimal     string
	Hexadecimal string
}

// In returns the rendering of the result in system s.
func (r *Result) In(s System) string {
	switch s {
	case Binary:
		return r.Binary
	case Octal:
		return r.Octal
	case Decimal:
		return r.Decimal
	case Hexadecimal:
		return r.Hexadecimal
	}
	return ""
}

// implement zap.ObjectMarshaler interface.
func (r *Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("system", r.System.String())
	enc.AddString("digits", r.Digits)
	enc.AddString("binary", r.Binary)
	enc.AddString("octal", r.Octal)
	enc.AddString("decimal", r.Decimal)
	enc.AddString("hexadecimal", r.Hexadecimal)
	return nil
}

// Convert detects the notation of input, validates it and renders it in all
// four systems. No partial result is returned on failure.
func Convert(input string) (*Result, error) {
	last, size := utf8.DecodeLastRuneInString(input)
	if size == 0 {
		return nil, ErrEmpty
	}
	system, err := Detect(last)
	if err != nil {
		return nil, withInput(err, input)
	}
	digitString, err := Validate(input, system)
	if err != nil {
		return nil, err
	}
	m, err := magnitude(digitString, system)
	if err != nil {
		return nil, withInput(err, input)
	}

	res := &Result{System: system, Digits: digitString, Magnitude: m}
	for _, to := range Systems() {
		out, err := Transform(digitString, system, to)
		if err != nil {
			return nil, withInput(err, input)
		}
		switch to {
		case Binary:
			res.Binary = out
		case Octal:
			res.Octal = out
		case Decimal:
			res.Decimal = out
		case Hexadecimal:
			res.Hexadecimal = strings.ToLower(out)
		}
	}
	return res, nil
}
