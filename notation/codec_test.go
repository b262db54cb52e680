package notation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueRanges(t *testing.T) {
	t.Parallel()
	legal := map[System]string{
		Binary:      "01",
		Octal:       "01234567",
		Decimal:     "0123456789",
		Hexadecimal: "0123456789abcdefABCDEF",
	}
	for s, chars := range legal {
		for _, c := range chars {
			_, err := Value(c, s)
			require.NoError(t, err, "%c in %v", c, s)
		}
	}

	for _, tc := range []struct {
		c rune
		s System
	}{
		{'2', Binary},
		{'8', Octal},
		{'9', Octal},
		{'a', Decimal},
		{'F', Decimal},
		{'g', Hexadecimal},
		{'-', Hexadecimal},
		{'٣', Decimal},
	} {
		_, err := Value(tc.c, tc.s)
		require.ErrorIs(t, err, &Error{Kind: InvalidDigit, Char: tc.c})
	}

	v, err := Value('E', Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, uint8(14), v)
}

func TestDigit(t *testing.T) {
	t.Parallel()
	for v := uint8(0); v < 16; v++ {
		got, err := Value(Digit(v), Hexadecimal)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.Equal(t, 'a', Digit(10))
	require.Panics(t, func() { Digit(16) })
}

func TestBinaryGroups(t *testing.T) {
	t.Parallel()
	group, err := BinaryGroup('5', Octal)
	require.NoError(t, err)
	require.Equal(t, "101", group)

	group, err = BinaryGroup('1', Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, "0001", group)

	group, err = BinaryGroup('C', Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, "1100", group)

	_, err = BinaryGroup('8', Octal)
	require.ErrorIs(t, err, ErrInvalidDigit)

	_, err = BinaryGroup('1', Decimal)
	require.Error(t, err)

	for bits, want := range map[string]rune{
		"0":    '0',
		"1":    '1',
		"10":   '2',
		"011":  '3',
		"11":   '3',
		"0111": '7',
		"1000": '8',
		"1111": 'f',
	} {
		got, err := GroupDigit(bits)
		require.NoError(t, err)
		require.Equal(t, want, got, bits)
	}

	_, err = GroupDigit("")
	require.Error(t, err)
	_, err = GroupDigit("10000")
	require.Error(t, err)
	_, err = GroupDigit("12")
	require.ErrorIs(t, err, ErrInvalidDigit)
}

func TestMagnitude(t *testing.T) {
	t.Parallel()
	m, err := magnitude("1010", Binary)
	require.NoError(t, err)
	require.Equal(t, uint64(10), m)

	m, err = magnitude("FF", Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, uint64(255), m)

	m, err = magnitude("18446744073709551615", Decimal)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<64-1), m)

	_, err = magnitude("18446744073709551616", Decimal)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = magnitude("99999999999999999999", Decimal)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = magnitude("100000000000000000000", Decimal)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = magnitude("4٣", Decimal)
	require.ErrorIs(t, err, &Error{Kind: InvalidDigit, Char: '٣'})
}

func TestRender(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0", render(0, Hexadecimal))
	require.Equal(t, "101010", render(42, Binary))
	require.Equal(t, "52", render(42, Octal))
	require.Equal(t, "42", render(42, Decimal))
	require.Equal(t, "2a", render(42, Hexadecimal))
	require.Equal(t, "1777777777777777777777", render(1<<64-1, Octal))
}

func TestRegroupShortHead(t *testing.T) {
	t.Parallel()
	out, err := regroup("11111", Octal)
	require.NoError(t, err)
	require.Equal(t, "37", out)

	out, err = regroup("11111", Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, "1f", out)

	out, err = regroup("111111", Octal)
	require.NoError(t, err)
	require.Equal(t, "77", out)
}
