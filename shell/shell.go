// Package shell is the interactive front end of the converter.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spacemeshos/radix/logging"
	"github.com/spacemeshos/radix/notation"
)

const banner = `Input a number.
End your number with a specific letter to specify notation:
b = binary; o/q = octal; d = decimal(optional); h = hexadecimal;
`

type Converter interface {
	Convert(ctx context.Context, input string) (*notation.Result, error)
}

//nolint:lll
type Config struct {
	Compare bool `long:"compare" description:"Also print the value formatted by the Go runtime for comparison"`
	Repeat  bool `long:"repeat"  description:"Keep reading numbers after a successful conversion"`
}

type Shell struct {
	conv Converter
	cfg  Config
	in   io.Reader
	out  io.Writer
}

func New(conv Converter, in io.Reader, out io.Writer, cfg Config) *Shell {
	return &Shell{
		conv: conv,
		cfg:  cfg,
		in:   in,
		out:  out,
	}
}

// Run reads numbers line by line until one converts successfully, or until
// the input ends when Repeat is set. It returns ctx.Err() as soon as ctx is
// done, even while waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprint(s.out, banner)
	lines, readErr := s.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.handle(ctx, strings.TrimSpace(line)) && !s.cfg.Repeat {
				return nil
			}
		}
	}
}

// readLines feeds input lines into a channel so Run can wait on ctx at the
// same time. The error channel receives exactly one value before lines is closed.
func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// handle processes one input line and reports whether it was converted.
func (s *Shell) handle(ctx context.Context, line string) bool {
	if line == "" {
		fmt.Fprintln(s.out, "Input cannot be empty. Try again.")
		return false
	}
	logger := logging.FromContext(ctx).With(zap.Stringer("request_id", uuid.New()), zap.String("input", line))

	last, _ := utf8.DecodeLastRuneInString(line)
	system, err := notation.Detect(last)
	if err != nil {
		logger.Debug("unknown notation", zap.Error(err))
		fmt.Fprintf(s.out, "%s. Try again.\n", capitalize(err.Error()))
		return false
	}
	if utf8.RuneCountInString(line) == 1 && (last < '0' || last > '9') {
		fmt.Fprintln(s.out, "Input a number and notation. Try again.")
		return false
	}
	fmt.Fprintf(s.out, "Notation detected: %v\n", system)

	res, err := s.conv.Convert(logging.NewContext(ctx, logger), line)
	if err != nil {
		logger.Debug("conversion failed", zap.Error(err))
		fmt.Fprintf(s.out, "%s. Try again.\n", capitalize(err.Error()))
		return false
	}
	printRenderings(s.out, res, s.cfg.Compare)
	return true
}

// Print writes the detected notation and the four renderings of res.
func Print(w io.Writer, res *notation.Result, compare bool) {
	fmt.Fprintf(w, "Notation detected: %v\n", res.System)
	printRenderings(w, res, compare)
}

func printRenderings(w io.Writer, res *notation.Result, compare bool) {
	fmt.Fprintf(w, "To Binary: %s\n", res.Binary)
	fmt.Fprintf(w, "To Octal: %s\n", res.Octal)
	fmt.Fprintf(w, "To Decimal: %s\n", res.Decimal)
	fmt.Fprintf(w, "To Hexadecimal: %s\n", res.Hexadecimal)
	if compare {
		fmt.Fprintln(w, "\nAs a uint64 formatted by the Go runtime (for comparison):")
		for _, base := range []int{2, 8, 10, 16} {
			fmt.Fprintln(w, strconv.FormatUint(res.Magnitude, base))
		}
	}
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
