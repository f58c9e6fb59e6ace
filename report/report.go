// Package report renders validation results and generator summaries for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/themekit/themekit/color"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/icon"
	"github.com/themekit/themekit/schema"
	"github.com/themekit/themekit/style"
	"github.com/themekit/themekit/util"
)

const notSpecified = "Not specified"

// Printer writes reports to a single destination.
type Printer struct {
	out   io.Writer
	width int
}

// New returns a printer that wraps text to the terminal width.
func New(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		width: util.Min(util.TerminalWidth(80), 100),
	}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// block wraps text and indents every line by level spaces.
func (p *Printer) block(text string, level uint) {
	wrapped := wordwrap.String(text, util.Max(p.width-int(level), 20))
	p.printf("%s\n", indent.String(wrapped, level))
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}

	return s
}

func success(s string) string {
	return style.Fg(color.Green)(s)
}

func failure(s string) string {
	return style.Fg(color.Red)(s)
}

// Header introduces a validation run.
func (p *Printer) Header() {
	p.printf("%s\n", style.Title("themekit validator"))
	p.printf("%s\n", style.Faint("Strict v2.0 format validation (no v1.0 support)"))
}

// Result prints the outcome of one document with every diagnostic.
func (p *Printer) Result(r schema.Result) {
	p.printf("\n%s %s\n", style.Faint("Validating:"), style.Bold(r.Path))

	var (
		parseErr   *schema.ParseError
		versionErr *schema.VersionError
	)

	switch {
	case errors.As(r.Err, &versionErr):
		p.printf("%s %s\n", icon.Get(icon.Fail), failure(fmt.Sprintf("Theme must be version %s or higher", constant.DocumentVersion)))
		p.printf("  Current version: %s\n", versionErr.Found)
		p.block(icon.Get(icon.Warn)+" "+versionErr.Hint(), 2)
	case errors.As(r.Err, &parseErr):
		p.printf("%s %s\n", icon.Get(icon.Fail), failure("Error reading/parsing theme"))
		p.block(parseErr.Err.Error(), 2)
	case r.Valid:
		p.valid(r)
	default:
		p.invalid(r)
	}
}

func (p *Printer) valid(r schema.Result) {
	p.printf("%s %s\n", icon.Get(icon.Success), success("Theme is valid (v2.0 format)"))

	if info := r.Info; info != nil {
		p.printf("  Name: %s\n", info.Name)
		p.printf("  Display Name: %s\n", or(info.DisplayName, info.Name))
		p.printf("  Version: %s\n", info.Version)
		p.printf("  Author: %s\n", or(info.Author, notSpecified))
		p.printf("  Description: %s\n", or(info.Description, notSpecified))
	}

	p.printf("  Variants:\n")
	p.printf("    %s Light mode configured\n", icon.Get(icon.Success))
	p.printf("    %s Dark mode configured\n", icon.Get(icon.Success))

	if len(r.Features) > 0 {
		p.printf("  Features: %s\n", strings.Join(r.Features, ", "))
	}

	for _, note := range r.Notes {
		p.block(icon.Get(icon.Info)+" "+note, 2)
	}
}

func (p *Printer) invalid(r schema.Result) {
	p.printf("%s %s\n", icon.Get(icon.Fail), failure("Theme validation failed:"))

	for _, v := range r.Violations {
		p.block("- "+v.String(), 2)

		switch {
		case v.Field == "":
		case v.Keyword == schema.KeywordRequired:
			p.printf("    Missing required property: %s\n", v.Field)
		case v.Keyword == schema.KeywordAdditional:
			p.printf("    Unknown property: %s\n", v.Field)
		}
	}

	if r.Tip != "" {
		p.printf("\n")
		p.block(icon.Get(icon.Tip)+" Migration tip: "+r.Tip, 2)
	}
}

// Summary prints the aggregate outcome of a batch.
func (p *Printer) Summary(s schema.Summary) {
	p.printf("\n%s\n", style.Faint(strings.Repeat("=", 27)))

	if s.OK() {
		p.printf("%s %s\n", icon.Get(icon.Success), success(fmt.Sprintf("All %s valid v2.0 format!", util.Quantify(s.Total, "theme is", "themes are"))))
		return
	}

	verb := "have"
	if s.Failed == 1 {
		verb = "has"
	}

	p.printf("%s %s\n", icon.Get(icon.Fail), failure(fmt.Sprintf(
		"%s of %d %s validation errors",
		util.Quantify(s.Failed, "theme", "themes"),
		s.Total,
		verb,
	)))
	p.printf("%s %s\n", icon.Get(icon.Warn), style.Faint("Please update to v2.0 format with variants"))
}

// Usage explains how the validator finds documents.
func (p *Printer) Usage(defaultPath, themesDir string) {
	p.printf("No theme files found to validate\n\n")
	p.printf("Usage:\n")
	p.printf("  themekit validate           # Validate %s and every %s/<name>/theme.json\n", defaultPath, themesDir)
	p.printf("  themekit validate <file>    # Validate specific theme files\n")
}

// JSON writes the results and their summary as one JSON object.
func (p *Printer) JSON(results []schema.Result) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Results []schema.Result `json:"results"`
		Summary schema.Summary  `json:"summary"`
	}{
		Results: results,
		Summary: schema.Summarize(results),
	})
}
