package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/themekit/themekit/theme"
)

// Answers pre-fill the questions; a present value skips its prompt.
type Answers struct {
	DisplayName mo.Option[string]
	Description mo.Option[string]
	Author      mo.Option[string]
	Preset      mo.Option[theme.Preset]
	Primary     mo.Option[string]
	Secondary   mo.Option[string]
	Tertiary    mo.Option[string]
	Accent      mo.Option[string]
	Style       mo.Option[theme.Style]
	Animation   mo.Option[string]

	// Custom asks for the four seeds instead of offering the preset menu
	Custom bool
	// DefaultAuthor is suggested when the author is asked for
	DefaultAuthor string
}

// custom reports whether Custom was chosen up front or any seed color was given directly.
func (a Answers) custom() bool {
	return a.Custom || lo.SomeBy([]mo.Option[string]{a.Primary, a.Secondary, a.Tertiary, a.Accent}, mo.Option[string].IsPresent)
}

// Selection is a collected request plus how its seeds were chosen.
type Selection struct {
	Request theme.Request
	// Preset is the preset name, or theme.Custom
	Preset string
}

var errEmptyName = errors.New("display name must contain at least one letter or digit")

func validateDisplayName(name string) error {
	if strings.Trim(theme.Slugify(name), "-") == "" {
		return errEmptyName
	}

	return nil
}

func validateHex(hex string) error {
	return theme.CheckHex(hex)
}

// ask returns the pre-filled answer if present, and prompts otherwise.
func ask[T any](given mo.Option[T], check func(T) error, fallback func() (T, error)) (T, error) {
	if value, ok := given.Get(); ok {
		if check != nil {
			if err := check(value); err != nil {
				return value, err
			}
		}

		return value, nil
	}

	return fallback()
}

// Collect asks, in order, for the display name, description, author, color
// preset (or four custom seeds), style and loading animation.
func Collect(p Prompter, a Answers) (Selection, error) {
	var (
		sel Selection
		req = &sel.Request
		err error
	)

	req.DisplayName, err = ask(a.DisplayName, validateDisplayName, func() (string, error) {
		return p.Input(`Theme display name (e.g., "My Awesome Theme"):`, "", validateDisplayName)
	})
	if err != nil {
		return sel, fmt.Errorf("display name: %w", err)
	}

	req.Description, err = ask(a.Description, nil, func() (string, error) {
		return p.Input("Brief description:", "", nil)
	})
	if err != nil {
		return sel, fmt.Errorf("description: %w", err)
	}

	req.Author, err = ask(a.Author, nil, func() (string, error) {
		return p.Input("Your name or organization:", a.DefaultAuthor, nil)
	})
	if err != nil {
		return sel, fmt.Errorf("author: %w", err)
	}

	if sel.Preset, req.Seeds, err = collectSeeds(p, a); err != nil {
		return sel, fmt.Errorf("colors: %w", err)
	}

	req.Style, err = ask(a.Style, nil, func() (theme.Style, error) {
		options := lo.Map(theme.Styles(), func(s theme.Style, _ int) Option {
			return Option{Label: s.String(), Description: s.Description()}
		})

		index, err := p.Select("Select a style:", options)
		return theme.Style(index), err
	})
	if err != nil {
		return sel, fmt.Errorf("style: %w", err)
	}

	req.LoadingAnimation, err = ask(a.Animation, nil, func() (string, error) {
		options := lo.Map(theme.LoadingAnimations, func(name string, _ int) Option {
			return Option{Label: name}
		})

		index, err := p.Select("Select a loading animation:", options)
		if err != nil {
			return "", err
		}

		return theme.LoadingAnimations[index], nil
	})
	if err != nil {
		return sel, fmt.Errorf("loading animation: %w", err)
	}

	return sel, nil
}

func collectSeeds(p Prompter, a Answers) (string, theme.Seeds, error) {
	if preset, ok := a.Preset.Get(); ok {
		return preset.Name, preset.Seeds, nil
	}

	if !a.custom() {
		options := lo.Map(theme.PresetNames(), func(name string, _ int) Option {
			return Option{Label: name}
		})

		index, err := p.Select("Select a color preset:", options)
		if err != nil {
			return "", theme.Seeds{}, err
		}

		presets := theme.Presets()
		if index < len(presets) {
			return presets[index].Name, presets[index].Seeds, nil
		}
	}

	seeds, err := collectCustom(p, a)
	return theme.Custom, seeds, err
}

func collectCustom(p Prompter, a Answers) (theme.Seeds, error) {
	type role struct {
		label string
		given mo.Option[string]
		def   string
		dst   *string
	}

	var seeds theme.Seeds
	roles := []role{
		{"primary (main brand)", a.Primary, theme.CustomDefaults.Primary, &seeds.Primary},
		{"secondary accent", a.Secondary, theme.CustomDefaults.Secondary, &seeds.Secondary},
		{"tertiary accent", a.Tertiary, theme.CustomDefaults.Tertiary, &seeds.Tertiary},
		{"highlight accent", a.Accent, theme.CustomDefaults.Accent, &seeds.Accent},
	}

	for _, r := range roles {
		value, err := ask(r.given, validateHex, func() (string, error) {
			return p.Input(fmt.Sprintf("Enter %s color (hex format like %s):", r.label, r.def), r.def, validateHex)
		})
		if err != nil {
			return seeds, fmt.Errorf("%s: %w", r.label, err)
		}

		*r.dst = value
	}

	return seeds, nil
}
