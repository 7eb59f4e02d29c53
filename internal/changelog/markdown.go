package changelog

import (
	"fmt"
	"io"
	"strings"
)

// bareBreaksRef is what a bare breaking marker renders to when no
// repository is configured. A breaks list reducing to exactly this is
// suppressed rather than rendered as an empty link.
const bareBreaksRef = "[#]()"

// MarkdownRenderer renders a grouping as nested Markdown bullet lists
// with an anchor header.
type MarkdownRenderer struct {
	links Links
}

// NewMarkdownRenderer creates a MarkdownRenderer resolving hyperlinks
// through the given links.
func NewMarkdownRenderer(links Links) *MarkdownRenderer {
	return &MarkdownRenderer{links: links}
}

// Render writes the header followed by every non-empty section in table
// order.
func (r *MarkdownRenderer) Render(w io.Writer, rel Release, sections *SectionTable, g *Grouping) error {
	if err := r.renderHeader(w, rel); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for _, name := range sections.Names() {
		if !g.HasSection(name) {
			continue
		}
		if err := r.renderSection(w, name, g); err != nil {
			return fmt.Errorf("rendering section %s: %w", name, err)
		}
	}

	return nil
}

// renderHeader writes the anchor and version heading. Patch releases get
// a third-level heading so they nest under their minor release in the
// merged document.
func (r *MarkdownRenderer) renderHeader(w io.Writer, rel Release) error {
	heading := "##"
	if rel.Patch {
		heading = "###"
	}
	_, err := fmt.Fprintf(w, "<a name=%q></a>\n%s %s %s (%s)\n\n",
		rel.Version, heading, rel.Version, rel.Subtitle, rel.day())
	return err
}

// renderSection writes one section title and its component buckets.
// Buckets with more than one entry and a non-empty component nest the
// entries under a bold component line.
func (r *MarkdownRenderer) renderSection(w io.Writer, name string, g *Grouping) error {
	if _, err := fmt.Fprintf(w, "\n#### %s\n\n", name); err != nil {
		return err
	}

	for _, component := range g.ComponentNames(name) {
		entries := g.Entries(name, component)

		prefix := "* "
		switch {
		case len(entries) > 1 && component != "":
			if _, err := fmt.Fprintf(w, "* **%s:**\n", component); err != nil {
				return err
			}
			prefix = "  *"
		case component != "":
			prefix = fmt.Sprintf("* **%s:**", component)
		}

		for _, entry := range entries {
			if err := r.renderEntry(w, prefix, entry); err != nil {
				return err
			}
		}
	}

	return nil
}

// renderEntry writes one bullet: subject, linked short hash and any
// closes/breaks references.
func (r *MarkdownRenderer) renderEntry(w io.Writer, prefix string, entry Entry) error {
	_, err := fmt.Fprintf(w, "%s %s ([%s](%s)",
		prefix, entry.Subject, ShortHash(entry.Hash), r.links.CommitLink(entry.Hash))
	if err != nil {
		return err
	}

	if len(entry.Closes) > 0 {
		if _, err := fmt.Fprintf(w, ", closes %s", r.refList(entry.Closes)); err != nil {
			return err
		}
	}
	if len(entry.Breaks) > 0 {
		if refs := r.refList(entry.Breaks); refs != bareBreaksRef {
			if _, err := fmt.Fprintf(w, ", breaks %s", refs); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintln(w, ")")
	return err
}

// refList renders issue references as a comma-joined list of links.
func (r *MarkdownRenderer) refList(issues []string) string {
	refs := make([]string, len(issues))
	for i, issue := range issues {
		refs[i] = fmt.Sprintf("[#%s](%s)", issue, r.links.IssueLink(issue))
	}
	return strings.Join(refs, ", ")
}
