package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
)

// Survey prompts with arrow-key menus on a terminal.
type Survey struct {
	opts []survey.AskOpt
}

func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

func (s *Survey) Input(message, def string, validate func(string) error) (string, error) {
	input := survey.Input{
		Message: message,
		Default: def,
	}

	opts := s.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(func(ans any) error {
			str, _ := ans.(string)
			return validate(strings.TrimSpace(str))
		}))
	}

	var response string
	if err := survey.AskOne(&input, &response, opts...); err != nil {
		return "", err
	}

	response = strings.TrimSpace(response)
	if response == "" {
		response = def
	}

	return response, nil
}

func (s *Survey) Select(message string, options []Option) (int, error) {
	sel := survey.Select{
		Message: message,
		Options: lo.Map(options, func(o Option, _ int) string {
			return o.Label
		}),
		Description: func(_ string, index int) string {
			return options[index].Description
		},
	}

	var index int
	if err := survey.AskOne(&sel, &index, s.opts...); err != nil {
		return 0, err
	}

	return index, nil
}
