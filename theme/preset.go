package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Preset is a named set of seed colors.
type Preset struct {
	Name  string `json:"name"`
	Seeds Seeds  `json:"seeds"`
}

// Custom is the menu entry that asks for the seeds one by one.
const Custom = "Custom"

// CustomDefaults are used for every custom seed the user leaves empty.
var CustomDefaults = Seeds{
	Primary:   "#00d4ff",
	Secondary: "#ff00ff",
	Tertiary:  "#00ff88",
	Accent:    "#ffd700",
}

var presets = []Preset{
	{"Cyberpunk", Seeds{"#00d4ff", "#ff00ff", "#00ff88", "#ffd700"}},
	{"Ocean", Seeds{"#0891b2", "#06b6d4", "#22d3ee", "#67e8f9"}},
	{"Forest", Seeds{"#10b981", "#34d399", "#6ee7b7", "#a7f3d0"}},
	{"Sunset", Seeds{"#f97316", "#fb923c", "#fdba74", "#fed7aa"}},
	{"Purple Dream", Seeds{"#8b5cf6", "#a78bfa", "#c4b5fd", "#ddd6fe"}},
	{"Monochrome", Seeds{"#64748b", "#94a3b8", "#cbd5e1", "#e2e8f0"}},
	{"Rose Gold", Seeds{"#f43f5e", "#fb7185", "#fda4af", "#fecdd3"}},
}

// Presets returns the preset table in menu order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetNames returns the preset names in menu order, followed by Custom.
func PresetNames() []string {
	names := lo.Map(presets, func(p Preset, _ int) string {
		return p.Name
	})

	return append(names, Custom)
}

// IsCustom reports whether name selects the Custom menu entry, ignoring case.
func IsCustom(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), Custom)
}

// FindPreset resolves a preset by exact name, ignoring case, or by a
// fuzzy match when exactly one preset matches best.
func FindPreset(query string) (Preset, error) {
	query = strings.TrimSpace(query)

	if p, ok := lo.Find(presets, func(p Preset) bool {
		return strings.EqualFold(p.Name, query)
	}); ok {
		return p, nil
	}

	names := lo.Map(presets, func(p Preset, _ int) string {
		return p.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return Preset{}, fmt.Errorf("unknown preset %q, did you mean %q?", query, Closest(query, names))
	}

	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		tied := lo.Filter(ranks, func(r fuzzy.Rank, _ int) bool {
			return r.Distance == ranks[0].Distance
		})
		matches := lo.Map(tied, func(r fuzzy.Rank, _ int) string {
			return r.Target
		})
		return Preset{}, fmt.Errorf("preset %q is ambiguous: %s", query, strings.Join(matches, ", "))
	}

	return presets[ranks[0].OriginalIndex], nil
}

// LoadingAnimations is the closed list of loading indicators, in menu order.
var LoadingAnimations = []string{"pulse", "spinner", "dots", "fractal", "glitch", "wave"}

// DefaultLoadingAnimation is used when none was chosen.
const DefaultLoadingAnimation = "pulse"

// ParseLoadingAnimation resolves a loading animation by name, ignoring case.
func ParseLoadingAnimation(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if lo.Contains(LoadingAnimations, name) {
		return name, nil
	}

	return "", fmt.Errorf("unknown loading animation %q, did you mean %q?", name, Closest(name, LoadingAnimations))
}
