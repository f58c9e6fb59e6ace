package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Seeds are the four brand colors every other color is derived from.
type Seeds struct {
	Primary   string `json:"primary" yaml:"primary" validate:"required,rrggbb"`
	Secondary string `json:"secondary" yaml:"secondary" validate:"required,rrggbb"`
	Tertiary  string `json:"tertiary" yaml:"tertiary" validate:"required,rrggbb"`
	Accent    string `json:"accent" yaml:"accent" validate:"required,rrggbb"`
}

// List returns the seeds in primary, secondary, tertiary, accent order.
func (s Seeds) List() []string {
	return []string{s.Primary, s.Secondary, s.Tertiary, s.Accent}
}

// Validate checks that every seed is a #RRGGBB color.
func (s Seeds) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := lo.Map(ves, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s %q", strings.ToLower(fe.Field()), fe.Value())
	})

	return fmt.Errorf("invalid seed colors: %s: %w", strings.Join(fields, ", "), ErrInvalidHex)
}

// ErrInvalidHex is returned for colors that are not in the #RRGGBB form.
var ErrInvalidHex = errors.New("invalid hex color, use the format #RRGGBB")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
			return hexPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// CheckHex validates a single seed color.
func CheckHex(hex string) error {
	if err := validatorInstance().Var(hex, "required,rrggbb"); err != nil {
		return ErrInvalidHex
	}

	return nil
}
