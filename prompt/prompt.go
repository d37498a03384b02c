// Package prompt reads operator answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/daystram/illegalpairs/id"
)

var (
	warn    = color.New(color.FgYellow)
	fail    = color.New(color.FgRed)
	success = color.New(color.FgGreen)
)

// ParseConfirm reports whether line approves a run: exactly "1" before the
// line break.
func ParseConfirm(line string) bool {
	return strings.TrimRight(line, "\r\n") == "1"
}

// ParseChoice reads a menu selection in [1, n].
func ParseChoice(line string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

// ParseID reads a decimal ID.
func ParseID(line string) (id.ID, bool) {
	v, err := id.Parse(line)
	if err != nil {
		return 0, false
	}
	return v, true
}

type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Confirm asks question and waits for one line. Only "1" approves.
func (p *Prompter) Confirm(question string) (bool, error) {
	warn.Fprintln(p.out, question)
	fmt.Fprint(p.out, "Enter 1 to continue, anything else to cancel: ")
	line, err := p.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return ParseConfirm(line), nil
}

// Choice lists options and asks until one of them is picked. The returned
// selection is 1-based.
func (p *Prompter) Choice(title string, options []string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintln(p.out)
	for {
		fmt.Fprint(p.out, "Enter the number for your selection: ")
		line, err := p.readLine()
		if err != nil {
			return 0, errors.Wrap(err, "read selection")
		}
		if v, ok := ParseChoice(line, len(options)); ok {
			return v, nil
		}
	}
}

// ID asks for an ID until a valid one is entered.
func (p *Prompter) ID(label string) (id.ID, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return 0, errors.Wrapf(err, "read %s", strings.ToLower(label))
		}
		if v, ok := ParseID(line); ok {
			return v, nil
		}
	}
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Prompter) Warnf(format string, a ...any) {
	warn.Fprintf(p.out, format, a...)
}

func (p *Prompter) Errorf(format string, a ...any) {
	fail.Fprintf(p.out, format, a...)
}

func (p *Prompter) Successf(format string, a ...any) {
	success.Fprintf(p.out, format, a...)
}

type flusher interface {
	Flush() error
}

// readLine consumes one whole line. A final line without a line break is
// returned as is; io.EOF is only reported when nothing was left. A buffered
// out is flushed first so the question is visible.
func (p *Prompter) readLine() (string, error) {
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", errors.Wrap(err, "flush prompt")
		}
	}
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}
