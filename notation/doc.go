/*
Package notation converts non-negative integers between binary, octal, decimal and
hexadecimal digit strings.

An input is a digit string optionally followed by a single notation suffix:
b/B for binary, o/O/q/Q for octal, d/D for decimal and h/H for hexadecimal.
Without a suffix the input is read as decimal. Convert runs the whole pipeline:
the trailing character selects the System (Detect), the suffix and leading zeros
are stripped and every digit is checked (Validate), and the digit string is then
rendered in all four systems (Transform).

Binary, octal and hexadecimal are converted into each other by regrouping bits.
Conversions to and from decimal go through a uint64 magnitude, so values above
math.MaxUint64 are rejected with ErrOverflow. Zero is rejected with ErrZero.

All functions are pure and safe for concurrent use.
*/
package notation
