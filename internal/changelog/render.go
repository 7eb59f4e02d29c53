package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format selects the document format a changelog is rendered in.
type Format int

// Supported output formats.
const (
	FormatMarkdown Format = iota
	FormatJSON
)

var formatNames = map[Format]string{
	FormatMarkdown: "markdown",
	FormatJSON:     "json",
}

// ParseFormat resolves a configuration token to a Format. Matching is
// case-insensitive; unknown tokens are a configuration error.
func ParseFormat(token string) (Format, error) {
	lowered := strings.ToLower(token)
	for format, name := range formatNames {
		if name == lowered {
			return format, nil
		}
	}
	return FormatMarkdown, fmt.Errorf("unrecognized output-format %q (valid: markdown, json)", token)
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "markdown"
}

// Release carries the header metadata of one rendered changelog.
type Release struct {
	// Version is the release label, typically a tag name or the short
	// hash of the newest commit in the range.
	Version string
	// Subtitle is free text appended after the version in the heading.
	Subtitle string
	// Patch renders the version heading one level deeper, for
	// patch-level releases nested under their minor release.
	Patch bool
	// Date stamps the document; the zero value means "now".
	Date time.Time
}

// day returns the date the document is stamped with, in UTC.
func (r Release) day() string {
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}
	return date.UTC().Format("2006-01-02")
}

// Renderer writes one rendition of a release grouping. Sections render
// in table order, with sections absent from the grouping skipped
// entirely; components within a section render in lexicographic order
// with the unlabeled bucket first; entries keep aggregation order.
type Renderer interface {
	Render(w io.Writer, rel Release, sections *SectionTable, g *Grouping) error
}

// NewRenderer returns the renderer for a format, resolving hyperlinks
// through the given links.
func NewRenderer(format Format, links Links) Renderer {
	if format == FormatJSON {
		return NewJSONRenderer(links)
	}
	return NewMarkdownRenderer(links)
}

// RenderString is a convenience that renders the grouping to a string.
func RenderString(r Renderer, rel Release, sections *SectionTable, g *Grouping) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, rel, sections, g); err != nil {
		return "", err
	}
	return b.String(), nil
}
