package theme

import "github.com/themekit/themekit/constant"

// Request is everything the assembler needs to build a document.
type Request struct {
	DisplayName      string
	Description      string
	Author           string
	Seeds            Seeds
	Style            Style
	LoadingAnimation string
}

// Assemble builds both variants and mirrors the dark one onto the top level.
func Assemble(req Request) *Document {
	animation := req.LoadingAnimation
	if animation == "" {
		animation = DefaultLoadingAnimation
	}

	doc := &Document{
		Name:             Slugify(req.DisplayName),
		DisplayName:      req.DisplayName,
		Version:          constant.DocumentVersion,
		Description:      req.Description,
		Author:           req.Author,
		LoadingAnimation: animation,
		Variants: Variants{
			Light: BuildVariant(req.Seeds, req.Style, Light),
			Dark:  BuildVariant(req.Seeds, req.Style, Dark),
		},
	}

	doc.mirror(doc.Variants.Dark)
	return doc
}

// mirror copies v onto the top-level token fields.
func (d *Document) mirror(v Variant) {
	d.Colors = v.Colors
	d.Typography = v.Typography
	d.Spacing = v.Spacing
	d.Shadows = v.Shadows
	d.Animations = v.Animations
	d.BorderRadius = v.BorderRadius

	if v.Effects != nil {
		effects := *v.Effects
		d.Effects = &effects
	}
}
