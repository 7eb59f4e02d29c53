package changelog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// JSONRenderer renders a grouping as a single compact JSON document.
// Empty collections and absent metadata encode as null rather than being
// omitted, so consumers see a stable set of keys.
type JSONRenderer struct {
	links Links
}

// NewJSONRenderer creates a JSONRenderer resolving hyperlinks through
// the given links.
func NewJSONRenderer(links Links) *JSONRenderer {
	return &JSONRenderer{links: links}
}

type jsonDocument struct {
	Header   jsonHeader    `json:"header"`
	Sections []jsonSection `json:"sections"`
}

type jsonHeader struct {
	Version      string  `json:"version"`
	PatchVersion bool    `json:"patch_version"`
	Subtitle     *string `json:"subtitle"`
	Date         string  `json:"date"`
}

type jsonSection struct {
	Title   string       `json:"title"`
	Commits []jsonCommit `json:"commits"`
}

type jsonCommit struct {
	Component  *string     `json:"component"`
	Subject    string      `json:"subject"`
	CommitLink string      `json:"commit_link"`
	Closes     []jsonIssue `json:"closes"`
	Breaks     []jsonIssue `json:"breaks"`
}

type jsonIssue struct {
	Issue     int    `json:"issue"`
	IssueLink string `json:"issue_link"`
}

// Render writes the document for every non-empty section in table order.
func (r *JSONRenderer) Render(w io.Writer, rel Release, sections *SectionTable, g *Grouping) error {
	doc := jsonDocument{
		Header: jsonHeader{
			Version:      rel.Version,
			PatchVersion: rel.Patch,
			Subtitle:     nullableString(rel.Subtitle),
			Date:         rel.day(),
		},
	}

	for _, name := range sections.Names() {
		if !g.HasSection(name) {
			continue
		}
		doc.Sections = append(doc.Sections, r.section(name, g))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding changelog: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}

// section flattens one section's component buckets, lexicographic by
// component with the unlabeled bucket first, entries in aggregation
// order.
func (r *JSONRenderer) section(name string, g *Grouping) jsonSection {
	sec := jsonSection{Title: name}
	for _, component := range g.ComponentNames(name) {
		for _, entry := range g.Entries(name, component) {
			sec.Commits = append(sec.Commits, jsonCommit{
				Component:  nullableString(component),
				Subject:    entry.Subject,
				CommitLink: r.links.CommitLink(entry.Hash),
				Closes:     r.issues(entry.Closes),
				Breaks:     r.issues(entry.Breaks),
			})
		}
	}
	return sec
}

// issues converts issue references to link records. Bare breaking-marker
// sentinels carry no issue number and are dropped; a list reducing to
// nothing encodes as null.
func (r *JSONRenderer) issues(refs []string) []jsonIssue {
	var out []jsonIssue
	for _, ref := range refs {
		number, err := strconv.Atoi(ref)
		if err != nil {
			continue
		}
		out = append(out, jsonIssue{
			Issue:     number,
			IssueLink: r.links.IssueLink(ref),
		})
	}
	return out
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
