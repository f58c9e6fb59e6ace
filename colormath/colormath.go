// Package colormath implements the channel arithmetic used to derive theme colors from seed colors.
//
// All helpers treat a color as three independent 8-bit channels; no color-space
// conversion takes place. Inputs are expected to be well-formed #RRGGBB strings.
package colormath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Channels decodes a #RRGGBB string into its three channels. Malformed input decodes as black.
func Channels(hex string) (r, g, b int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}

func encode(r, g, b int) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

func step(amount float64) int {
	return int(math.Round(255 * amount))
}

func clamp(v int) int {
	return max(0, min(255, v))
}

// Lighten adds round(255*amount) to every channel, saturating at 255.
func Lighten(hex string, amount float64) string {
	r, g, b := Channels(hex)
	d := step(amount)
	return encode(clamp(r+d), clamp(g+d), clamp(b+d))
}

// Darken subtracts round(255*amount) from every channel, saturating at 0.
func Darken(hex string, amount float64) string {
	r, g, b := Channels(hex)
	d := step(amount)
	return encode(clamp(r-d), clamp(g-d), clamp(b-d))
}

// Translucent renders the color as an rgba() expression with the given alpha.
func Translucent(hex string, alpha float64) string {
	r, g, b := Channels(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatAlpha(alpha))
}

// FormatAlpha renders an opacity with at most three decimals and no trailing zeros.
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(math.Round(alpha*1000)/1000, 'f', -1, 64)
}
