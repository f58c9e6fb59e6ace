// Package prompt asks the questions needed to generate a theme.
//
// Every prompt is a request, validate and retry loop with no upper bound on
// attempts: invalid answers are never accepted silently.
package prompt

import (
	"errors"
	"os"

	"github.com/themekit/themekit/util"
)

// Option is one entry of a selection menu.
type Option struct {
	Label       string
	Description string
}

// Prompter asks one question at a time.
type Prompter interface {
	// Input asks for free text. An empty answer becomes def. Answers rejected
	// by validate are asked again.
	Input(message, def string, validate func(string) error) (string, error)

	// Select asks to pick one of options and returns its index.
	Select(message string, options []Option) (int, error)
}

// ErrInputClosed is returned when the input ends before a question was answered.
var ErrInputClosed = errors.New("input closed before all questions were answered")

// Default picks the survey prompter on a terminal and the line prompter otherwise.
func Default() Prompter {
	if util.IsTerminal() {
		return NewSurvey()
	}

	return NewLine(os.Stdin, os.Stdout)
}
