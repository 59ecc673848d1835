package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once stdin reaches EOF.
var ErrInputClosed = errors.New("input closed")

// Prompter reads one answer per line. Field prompts repeat until the answer
// passes the client-side checks.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints label and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Required asks until a non-blank answer is given.
func (p *Prompter) Required(label string) (string, error) {
	for {
		answer, err := p.Line(label + ": ")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "  This field is required")
	}
}

// Int asks until the answer is an integer in [min, max].
func (p *Prompter) Int(label string, min, max int) (int, error) {
	for {
		answer, err := p.Line(fmt.Sprintf("%s (%d-%d): ", label, min, max))
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		switch {
		case answer == "":
			fmt.Fprintln(p.out, "  This field is required")
		case err != nil:
			fmt.Fprintln(p.out, "  Must be a whole number")
		case n < min || n > max:
			fmt.Fprintf(p.out, "  Must be between %d and %d\n", min, max)
		default:
			return n, nil
		}
	}
}

// Confirm defaults to no unless def is true.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	answer, err := p.Line(fmt.Sprintf("%s %s ", question, hint))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}
