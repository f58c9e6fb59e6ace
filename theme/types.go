// Package theme turns a handful of seed inputs into a complete two-variant design-token document.
package theme

// Color is a CSS color value: hex, rgb(), rgba(), linear-gradient() or transparent.
type Color string

// Document is a v2 theme document. The top-level token fields mirror
// Variants.Dark for consumers that do not understand variants; they are
// copied once at assembly time and never re-derived.
type Document struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"displayName"`
	Version          string   `json:"version"`
	Description      string   `json:"description"`
	Author           string   `json:"author"`
	LoadingAnimation string   `json:"loadingAnimation"`
	Variants         Variants `json:"variants"`

	Colors       Colors       `json:"colors"`
	Typography   Typography   `json:"typography"`
	Spacing      Spacing      `json:"spacing"`
	Shadows      Shadows      `json:"shadows"`
	Animations   Animations   `json:"animations"`
	BorderRadius BorderRadius `json:"borderRadius"`
	Effects      *Effects     `json:"effects,omitempty"`
}

// Variants holds the light and dark token sets.
type Variants struct {
	Light Variant `json:"light"`
	Dark  Variant `json:"dark"`
}

// Variant is the complete token set for one mode.
type Variant struct {
	Colors       Colors       `json:"colors"`
	Shadows      Shadows      `json:"shadows"`
	Typography   Typography   `json:"typography"`
	Spacing      Spacing      `json:"spacing"`
	BorderRadius BorderRadius `json:"borderRadius"`
	Animations   Animations   `json:"animations"`
	Effects      *Effects     `json:"effects,omitempty"`
}

type Colors struct {
	Brand      Brand      `json:"brand"`
	Semantic   Semantic   `json:"semantic"`
	Background Background `json:"background"`
	Text       Text       `json:"text"`
	Border     Border     `json:"border"`
	Button     Button     `json:"button"`
	Input      Input      `json:"input"`
	Card       Card       `json:"card"`
}

type Brand struct {
	Primary   Color `json:"primary"`
	Secondary Color `json:"secondary"`
	Tertiary  Color `json:"tertiary"`
	Accent    Color `json:"accent"`
	Dark      Color `json:"dark"`
	Light     Color `json:"light"`
}

type Semantic struct {
	Success Color `json:"success"`
	Warning Color `json:"warning"`
	Error   Color `json:"error"`
	Info    Color `json:"info"`
}

type Background struct {
	Primary   Color `json:"primary"`
	Secondary Color `json:"secondary"`
	Tertiary  Color `json:"tertiary"`
	Elevated  Color `json:"elevated"`
	Overlay   Color `json:"overlay"`
	Blur      Color `json:"blur"`
	Muted     Color `json:"muted"`
}

type Text struct {
	Primary   Color `json:"primary"`
	Secondary Color `json:"secondary"`
	Tertiary  Color `json:"tertiary"`
	Disabled  Color `json:"disabled"`
	Inverse   Color `json:"inverse"`
	Accent    Color `json:"accent"`
	Muted     Color `json:"muted"`
	Link      Color `json:"link"`
	LinkHover Color `json:"linkHover"`
}

type Border struct {
	Default Color `json:"default"`
	Hover   Color `json:"hover"`
	Focus   Color `json:"focus"`
	Subtle  Color `json:"subtle"`
	Muted   Color `json:"muted"`
}

type Button struct {
	Primary   ButtonState `json:"primary"`
	Secondary ButtonState `json:"secondary"`
	Ghost     ButtonState `json:"ghost"`
}

// ButtonState describes one button kind; Border is only set for outlined buttons.
type ButtonState struct {
	Background Color `json:"background"`
	Text       Color `json:"text"`
	Border     Color `json:"border,omitempty"`
	Hover      Color `json:"hover"`
	Active     Color `json:"active"`
}

type Input struct {
	Background  Color `json:"background"`
	Border      Color `json:"border"`
	BorderHover Color `json:"borderHover"`
	BorderFocus Color `json:"borderFocus"`
	Text        Color `json:"text"`
	Placeholder Color `json:"placeholder"`
}

type Card struct {
	Background Color     `json:"background"`
	Border     Color     `json:"border"`
	Hover      CardHover `json:"hover"`
}

type CardHover struct {
	Background Color `json:"background"`
	Border     Color `json:"border"`
}

// Shadows maps elevation levels to CSS box-shadow values.
type Shadows struct {
	XS    string `json:"xs"`
	SM    string `json:"sm"`
	MD    string `json:"md"`
	LG    string `json:"lg"`
	XL    string `json:"xl"`
	X2L   string `json:"2xl"`
	Inner string `json:"inner"`
	Glow  string `json:"glow"`
	None  string `json:"none"`
}

type Typography struct {
	FontFamily FontFamily `json:"fontFamily"`
	FontSize   FontSize   `json:"fontSize"`
	FontWeight FontWeight `json:"fontWeight"`
	LineHeight LineHeight `json:"lineHeight"`
}

type FontFamily struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
	Display string `json:"display"`
}

type FontSize struct {
	XS   string `json:"xs"`
	SM   string `json:"sm"`
	Base string `json:"base"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	X2L  string `json:"2xl"`
	X3L  string `json:"3xl"`
	X4L  string `json:"4xl"`
	X5L  string `json:"5xl"`
}

type FontWeight struct {
	Light     int `json:"light"`
	Normal    int `json:"normal"`
	Medium    int `json:"medium"`
	Semibold  int `json:"semibold"`
	Bold      int `json:"bold"`
	Extrabold int `json:"extrabold"`
}

type LineHeight struct {
	Tight   float64 `json:"tight"`
	Normal  float64 `json:"normal"`
	Relaxed float64 `json:"relaxed"`
	Loose   float64 `json:"loose"`
}

type Spacing struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	X2L string `json:"2xl"`
	X3L string `json:"3xl"`
}

type BorderRadius struct {
	None string `json:"none"`
	SM   string `json:"sm"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	X2L  string `json:"2xl"`
	Full string `json:"full"`
}

type Animations struct {
	Duration Duration `json:"duration"`
	Easing   Easing   `json:"easing"`
}

type Duration struct {
	Instant string `json:"instant"`
	Fast    string `json:"fast"`
	Normal  string `json:"normal"`
	Slow    string `json:"slow"`
	Slower  string `json:"slower"`
}

type Easing struct {
	Linear    string `json:"linear"`
	Ease      string `json:"ease"`
	EaseIn    string `json:"easeIn"`
	EaseOut   string `json:"easeOut"`
	EaseInOut string `json:"easeInOut"`
	Spring    string `json:"spring"`
}

// Effects is the style-specific supplement; only the blocks of the active style are set.
type Effects struct {
	Glass    *GlassEffect    `json:"glass,omitempty"`
	Glow     *GlowEffect     `json:"glow,omitempty"`
	Neon     *NeonEffect     `json:"neon,omitempty"`
	Gradient *GradientEffect `json:"gradient,omitempty"`
}

type GlassEffect struct {
	Background Color  `json:"background"`
	Backdrop   string `json:"backdrop"`
	Border     string `json:"border"`
}

type GlowEffect struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Error     string `json:"error"`
	Success   string `json:"success"`
}

type NeonEffect struct {
	Text string `json:"text"`
	Box  string `json:"box"`
}

type GradientEffect struct {
	Brand   Color `json:"brand"`
	Accent  Color `json:"accent"`
	Vibrant Color `json:"vibrant"`
}
