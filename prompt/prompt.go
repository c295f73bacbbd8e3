// Package prompt reads typed values from a line-oriented input stream,
// re-prompting until a line parses and passes validation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	DefaultInvalidMessage = "Invalid value. Please try again.\n"
	DefaultFormatMessage  = "Invalid format. Please try again.\n"
)

// ErrNoInput is returned when the input is exhausted before a valid value
// was read.
var ErrNoInput = errors.New("prompt: no more input")

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// Request describes a single value to ask for. Empty messages fall back to
// the defaults and a nil Validate accepts every parsed value.
type Request[T any] struct {
	Message string
	// Indent is the number of tabs written before Message. Error messages
	// are indented one tab further.
	Indent         int
	Validate       func(value T) bool
	InvalidMessage string
	FormatMessage  string
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Read writes req.Message and reads lines until one holds exactly one token
// that scans into T and is accepted by req.Validate.
func Read[T any](p *Prompter, req Request[T]) (T, error) {
	var zero T

	indent := strings.Repeat("\t", max(req.Indent, 0))
	errIndent := indent + "\t"
	invalidMessage := withDefault(req.InvalidMessage, DefaultInvalidMessage)
	formatMessage := withDefault(req.FormatMessage, DefaultFormatMessage)

	for {
		if _, err := io.WriteString(p.out, indent+req.Message); err != nil {
			return zero, fmt.Errorf("prompt: write: %w", err)
		}

		line, err := p.readLine()
		if err != nil {
			return zero, err
		}

		value, ok := parse[T](line)
		msg := ""
		switch {
		case !ok:
			msg = formatMessage
		case req.Validate != nil && !req.Validate(value):
			msg = invalidMessage
		default:
			return value, nil
		}

		if _, err := io.WriteString(p.out, errIndent+msg); err != nil {
			return zero, fmt.Errorf("prompt: write: %w", err)
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("prompt: read: %w", err)
		}
		return "", ErrNoInput
	}
	return p.scanner.Text(), nil
}

// parse scans a single value from line. Anything left after the value,
// trailing blanks included, is a format error.
func parse[T any](line string) (T, bool) {
	var value T
	r := strings.NewReader(line)
	if _, err := fmt.Fscan(r, &value); err != nil {
		return value, false
	}
	return value, r.Len() == 0
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
