package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/themekit/themekit/icon"
	"github.com/themekit/themekit/style"
	"github.com/themekit/themekit/util"
)

// Line prompts with plain text and numbered menus. It works on pipes and in tests.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (l *Line) read() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}

		if line == "" {
			return "", ErrInputClosed
		}
	}

	return strings.TrimSpace(line), nil
}

func (l *Line) reject(err error) {
	fmt.Fprintf(l.out, "%s %s\n", icon.Get(icon.Fail), util.Capitalize(err.Error()))
}

func (l *Line) Input(message, def string, validate func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(l.out, "%s %s ", message, style.Faint("("+def+")"))
		} else {
			fmt.Fprintf(l.out, "%s ", message)
		}

		answer, err := l.read()
		if err != nil {
			return "", err
		}

		if answer == "" {
			answer = def
		}

		if validate != nil {
			if err := validate(answer); err != nil {
				l.reject(err)
				continue
			}
		}

		return answer, nil
	}
}

func (l *Line) Select(message string, options []Option) (int, error) {
	fmt.Fprintf(l.out, "\n%s\n", message)
	for i, o := range options {
		if o.Description != "" {
			fmt.Fprintf(l.out, "  %d. %s %s\n", i+1, o.Label, style.Faint(o.Description))
		} else {
			fmt.Fprintf(l.out, "  %d. %s\n", i+1, o.Label)
		}
	}

	for {
		fmt.Fprint(l.out, "Select an option (number): ")

		answer, err := l.read()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}

		l.reject(errors.New("invalid selection, please try again"))
	}
}
