package notation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/radix/notation"
)

func TestConvertScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input  string
		system notation.System
		bin    string
		oct    string
		dec    string
		hex    string
	}{
		{"1010b", notation.Binary, "1010", "12", "10", "a"},
		{"17o", notation.Octal, "1111", "17", "15", "f"},
		{"255d", notation.Decimal, "11111111", "377", "255", "ff"},
		{"ffh", notation.Hexadecimal, "11111111", "377", "255", "ff"},
		{"42", notation.Decimal, "101010", "52", "42", "2a"},
		{"17q", notation.Octal, "1111", "17", "15", "f"},
		{"FFH", notation.Hexadecimal, "11111111", "377", "255", "ff"},
		{"0001b", notation.Binary, "1", "1", "1", "1"},
		{"1000000b", notation.Binary, "1000000", "100", "64", "40"},
		{"dead00h", notation.Hexadecimal, "110111101010110100000000", "67526400", "14593280", "dead00"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			res, err := notation.Convert(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.system, res.System)
			require.Equal(t, tc.bin, res.Binary)
			require.Equal(t, tc.oct, res.Octal)
			require.Equal(t, tc.dec, res.Decimal)
			require.Equal(t, tc.hex, res.Hexadecimal)
			require.Equal(t, tc.dec, res.In(notation.Decimal))
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  error
		char  rune
	}{
		{"", notation.ErrEmpty, 0},
		{"0b", notation.ErrZero, 0},
		{"000d", notation.ErrZero, 0},
		{"0", notation.ErrZero, 0},
		{"h", notation.ErrZero, 0},
		{"29b", notation.ErrInvalidDigit, '2'},
		{"19b", notation.ErrInvalidDigit, '9'},
		{"8o", notation.ErrInvalidDigit, '8'},
		{"1ad", notation.ErrInvalidDigit, 'a'},
		{"fgh", notation.ErrInvalidDigit, 'g'},
		{"42x", notation.ErrInvalidNotation, 'x'},
		{"12 ", notation.ErrInvalidNotation, ' '},
		{"18446744073709551616", notation.ErrOverflow, 0},
		{"10000000000000000h", notation.ErrOverflow, 0},
		{"2000000000000000000000o", notation.ErrOverflow, 0},
		{"1" + strings.Repeat("0", 64) + "b", notation.ErrOverflow, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			res, err := notation.Convert(tc.input)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, res)
			if tc.char != 0 {
				var nerr *notation.Error
				require.ErrorAs(t, err, &nerr)
				require.Equal(t, tc.char, nerr.Char)
			}
		})
	}
}

func TestOverflowMessage(t *testing.T) {
	t.Parallel()
	_, err := notation.Convert("18446744073709551616")
	require.EqualError(t, err, "number 18446744073709551616 exceeds 64 bits")

	_, err = notation.Transform("10000000000000000", notation.Hexadecimal, notation.Decimal)
	require.EqualError(t, err, "number exceeds 64 bits")
}

func TestTransformReportsNonASCIIDigit(t *testing.T) {
	t.Parallel()
	for _, to := range []notation.System{notation.Binary, notation.Hexadecimal} {
		_, err := notation.Transform("1٣", notation.Decimal, to)
		require.ErrorIs(t, err, &notation.Error{Kind: notation.InvalidDigit, Char: '٣'})
		require.EqualError(t, err, "invalid digit in number: ٣")
	}
}

func TestConvertCeiling(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"18446744073709551615",
		"ffffffffffffffffh",
		"1777777777777777777777o",
		strings.Repeat("1", 64) + "b",
	} {
		res, err := notation.Convert(input)
		require.NoError(t, err, input)
		require.Equal(t, uint64(1<<64-1), res.Magnitude)
		require.Equal(t, "18446744073709551615", res.Decimal)
		require.Equal(t, "ffffffffffffffff", res.Hexadecimal)
		require.Equal(t, "1777777777777777777777", res.Octal)
		require.Equal(t, strings.Repeat("1", 64), res.Binary)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()
	for c, want := range map[rune]notation.System{
		'b': notation.Binary,
		'B': notation.Binary,
		'o': notation.Octal,
		'O': notation.Octal,
		'q': notation.Octal,
		'Q': notation.Octal,
		'd': notation.Decimal,
		'D': notation.Decimal,
		'h': notation.Hexadecimal,
		'H': notation.Hexadecimal,
		'0': notation.Decimal,
		'7': notation.Decimal,
		'9': notation.Decimal,
	} {
		got, err := notation.Detect(c)
		require.NoError(t, err)
		require.Equal(t, want, got, "suffix %c", c)
	}

	_, err := notation.Detect('x')
	require.ErrorIs(t, err, notation.ErrInvalidNotation)
	require.ErrorIs(t, err, &notation.Error{Kind: notation.InvalidNotation, Char: 'x'})
	require.NotErrorIs(t, err, &notation.Error{Kind: notation.InvalidNotation, Char: 'y'})
	require.EqualError(t, err, "invalid notation ending: x")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	t.Run("strips leading zeros", func(t *testing.T) {
		for _, input := range []string{"007d", "7d", "7", "0007"} {
			digits, err := notation.Validate(input, notation.Decimal)
			require.NoError(t, err)
			require.Equal(t, "7", digits)
		}
	})
	t.Run("keeps case", func(t *testing.T) {
		digits, err := notation.Validate("00aBcH", notation.Hexadecimal)
		require.NoError(t, err)
		require.Equal(t, "aBc", digits)
	})
	t.Run("strips exactly one suffix", func(t *testing.T) {
		_, err := notation.Validate("11bb", notation.Binary)
		require.ErrorIs(t, err, &notation.Error{Kind: notation.InvalidDigit, Char: 'b'})
	})
	t.Run("zero", func(t *testing.T) {
		_, err := notation.Validate("000o", notation.Octal)
		require.ErrorIs(t, err, notation.ErrZero)
		require.EqualError(t, err, "0 in all notations is 0")
	})
	t.Run("invalid digit", func(t *testing.T) {
		_, err := notation.Validate("19b", notation.Binary)
		require.ErrorIs(t, err, notation.ErrInvalidDigit)
		require.EqualError(t, err, "invalid digit in number: 9")
	})
	t.Run("first invalid digit is reported", func(t *testing.T) {
		_, err := notation.Validate("29b", notation.Binary)
		require.ErrorIs(t, err, &notation.Error{Kind: notation.InvalidDigit, Char: '2'})
		require.EqualError(t, err, "invalid digit in number: 2")
	})
}

func TestTransformRoundTrip(t *testing.T) {
	t.Parallel()
	values := []uint64{1, 2, 7, 8, 9, 10, 15, 16, 17, 255, 256, 4095, 4096, 1 << 32, 1<<63 + 12345, 1<<64 - 1}
	for _, v := range values {
		res, err := notation.Convert(strings.TrimLeft(decimal(v), "0"))
		require.NoError(t, err)
		for _, from := range notation.Systems() {
			src := res.In(from)
			for _, to := range notation.Systems() {
				out, err := notation.Transform(src, from, to)
				require.NoError(t, err)
				require.Equal(t, res.In(to), out, "%v -> %v of %d", from, to, v)

				back, err := notation.Transform(out, to, from)
				require.NoError(t, err)
				require.Equal(t, src, back, "%v -> %v -> %v of %d", from, to, from, v)
			}
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	t.Parallel()
	for _, s := range notation.Systems() {
		out, err := notation.Transform("1", s, s)
		require.NoError(t, err)
		require.Equal(t, "1", out)
	}
	out, err := notation.Transform("AbC", notation.Hexadecimal, notation.Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, "AbC", out)
}

func TestTransformGroupingIsWidthIndependent(t *testing.T) {
	t.Parallel()
	hex := strings.Repeat("f", 40)
	bin, err := notation.Transform(hex, notation.Hexadecimal, notation.Binary)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("1", 160), bin)

	oct, err := notation.Transform(hex, notation.Hexadecimal, notation.Octal)
	require.NoError(t, err)
	require.Equal(t, "1"+strings.Repeat("7", 53), oct)

	_, err = notation.Transform(hex, notation.Hexadecimal, notation.Decimal)
	require.ErrorIs(t, err, notation.ErrOverflow)
}

func decimal(v uint64) string {
	var b []byte
	for v != 0 {
		b = append([]byte{byte('0' + v%10)}, b...)
		v /= 10
	}
	return string(b)
}
