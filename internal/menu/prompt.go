package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/cjr/internal/setup"
)

// ErrInputClosed is returned when the input stream ends while a prompt is
// waiting for an answer.
var ErrInputClosed = errors.New("input closed")

// prompter reads answers one line at a time.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// line writes prompt and returns the next input line without its line
// ending. A final line without a newline is still returned.
func (p *prompter) line(prompt string) (string, error) {
	if prompt != "" {
		p.printf("%s", prompt)
	}
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			p.println()
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// pause waits for Enter.
func (p *prompter) pause(msg string) error {
	_, err := p.line(msg)
	return err
}

// index asks until the answer is a number in 1..n and returns it.
func (p *prompter) index(prompt string, n int) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && i >= 1 && i <= n {
			return i, nil
		}
		p.println(rangeHint(n))
	}
}

func rangeHint(n int) string {
	if n == 2 {
		return "Invalid input! Choose 1 or 2."
	}
	return fmt.Sprintf("Invalid input! Choose 1-%d.", n)
}

// choose lists the field's choices and returns the selected label.
func (p *prompter) choose(f setup.ChoiceField) (string, error) {
	p.printf("%s:\n", f.Prompt)
	for i, c := range f.Choices {
		if c.Hint != "" {
			p.printf("[%d] %s (%s)\n", i+1, c.Label, c.Hint)
		} else {
			p.printf("[%d] %s\n", i+1, c.Label)
		}
	}
	i, err := p.index("> ", len(f.Choices))
	if err != nil {
		return "", err
	}
	return f.Choices[i-1].Label, nil
}

// number asks until the answer is an integer in [lo, hi].
func (p *prompter) number(prompt string, lo, hi int, invalid string) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= lo && n <= hi {
			return n, nil
		}
		p.println(invalid)
	}
}

// confirm asks until the answer is Y or N, case-insensitively.
func (p *prompter) confirm(prompt string) (bool, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		p.println("Please answer Y or N.")
	}
}

// Confirm asks prompt on w until the answer read from r is Y or N.
func Confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	return newPrompter(r, w).confirm(prompt)
}
