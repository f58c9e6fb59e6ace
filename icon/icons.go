package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Info
	Palette
	Tip
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(°ロ°)",
		squares: "🟨",
	},
	Info: {
		emoji:   "ℹ️",
		nerd:    "",
		plain:   "i",
		kaomoji: "(・_・)",
		squares: "🟪",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(✿◠‿◠)",
		squares: "🟧",
	},
	Tip: {
		emoji:   "💡",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・ω・)ノ",
		squares: "🟫",
	},
}
