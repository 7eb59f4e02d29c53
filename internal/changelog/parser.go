package changelog

import (
	"regexp"
	"strings"
)

// RawDelimiter is the sentinel line separating raw commit blocks in the
// text handed over by the commit source.
const RawDelimiter = "==END=="

// unknownToken is the type token assigned to subjects that do not match
// the structured pattern. It resolves through the section table like any
// other token, which by default maps it to SectionUnknown.
const unknownToken = "unk"

var (
	// subjectPattern splits a subject line into type, optional
	// parenthesized component and free-text subject.
	subjectPattern = regexp.MustCompile(`^([^:\(]+?)(?:\(([^\)]*?)?\))?:(.*)`)

	// closesPattern and breaksPattern match issue directives in body
	// lines. Group 1 captures the whole "#12, #34" list; the individual
	// digit groups are pulled out with issueRefPattern afterwards, since
	// a repeated capture group only retains its last match.
	closesPattern = regexp.MustCompile(`(?:Closes|Fixes|Resolves)\s((?:#(\d+)(?:,\s)?)+)`)
	breaksPattern = regexp.MustCompile(`(?:Breaks|Broke)\s((?:#(\d+)(?:,\s)?)+)`)

	// breakingPattern flags a bare breaking-change marker. It is only
	// consulted for lines breaksPattern did not match, so an explicit
	// "Breaks #1" line containing the word is not counted twice.
	breakingPattern = regexp.MustCompile(`(?i)breaking`)

	issueRefPattern = regexp.MustCompile(`#(\d+)`)
)

// Parser turns raw commit blocks into classified entries using a pair of
// alias tables. Parsing is total: malformed input degrades to an
// Unknown-classified entry instead of failing, so a broken commit message
// never aborts changelog generation.
type Parser struct {
	sections   *SectionTable
	components *ComponentTable
}

// NewParser creates a Parser over the given alias tables. Nil tables fall
// back to the built-in defaults.
func NewParser(sections *SectionTable, components *ComponentTable) *Parser {
	if sections == nil {
		sections = DefaultSections()
	}
	if components == nil {
		components = DefaultComponents()
	}
	return &Parser{sections: sections, components: components}
}

// Parse classifies one raw commit block. The first line is the hash
// (empty when the block is empty), the second line is the subject, and
// the remaining lines form the body scanned for issue directives.
func (p *Parser) Parse(block string) Entry {
	lines := strings.Split(block, "\n")

	entry := Entry{
		Hash:    lines[0],
		Section: p.sections.Resolve(unknownToken),
	}

	if len(lines) > 1 {
		if caps := subjectPattern.FindStringSubmatch(lines[1]); caps != nil {
			entry.Section = p.sections.Resolve(caps[1])
			if caps[2] != "" {
				entry.Component = p.components.Resolve(caps[2])
			}
			entry.Subject = caps[3]
		}
	}

	if len(lines) < 3 {
		return entry
	}
	for _, line := range lines[2:] {
		for _, caps := range closesPattern.FindAllStringSubmatch(line, -1) {
			entry.Closes = append(entry.Closes, issueRefs(caps[1])...)
		}
		if caps := breaksPattern.FindAllStringSubmatch(line, -1); caps != nil {
			for _, m := range caps {
				entry.Breaks = append(entry.Breaks, issueRefs(m[1])...)
			}
		} else if breakingPattern.MatchString(line) {
			entry.Breaks = append(entry.Breaks, "")
		}
	}

	return entry
}

// SplitBlocks splits raw commit-log text into per-commit blocks on the
// sentinel delimiter line. Empty trailing blocks parse to Unknown entries
// and are filtered with the rest, so callers need not trim the input.
func SplitBlocks(raw string) []string {
	return strings.Split(raw, "\n"+RawDelimiter+"\n")
}

// issueRefs extracts every digit group from a "#12, #34" reference list
// in order of appearance.
func issueRefs(list string) []string {
	matches := issueRefPattern.FindAllStringSubmatch(list, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}
