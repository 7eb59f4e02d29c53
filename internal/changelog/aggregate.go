package changelog

import "sort"

// Grouping is the aggregated two-level view of a release: section name to
// component name to entries in input order. Entries carrying breaking
// references appear both under their own section and under
// SectionBreaking.
//
// Sections and components absent from the grouping were simply never
// touched by an entry; renderers skip them rather than treating absence
// as an error.
type Grouping struct {
	sections map[string]map[string][]Entry
}

// Aggregate folds classified entries into a Grouping in a single pass.
// Buckets are created lazily on first insert and no entry is ever
// dropped; an empty input yields an empty Grouping.
func Aggregate(entries []Entry) *Grouping {
	g := &Grouping{sections: make(map[string]map[string][]Entry)}
	for _, e := range entries {
		if e.Breaking() {
			g.insert(SectionBreaking, e)
		}
		g.insert(e.Section, e)
	}
	return g
}

func (g *Grouping) insert(section string, e Entry) {
	components, ok := g.sections[section]
	if !ok {
		components = make(map[string][]Entry)
		g.sections[section] = components
	}
	components[e.Component] = append(components[e.Component], e)
}

// HasSection reports whether any entry landed under the named section.
func (g *Grouping) HasSection(name string) bool {
	_, ok := g.sections[name]
	return ok
}

// ComponentNames returns the component names under a section in
// lexicographic order. The unlabeled bucket (empty name) sorts first.
// A section with no entries yields nil.
func (g *Grouping) ComponentNames(section string) []string {
	components, ok := g.sections[section]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the entries of one component bucket in aggregation
// order, which is the commit input order.
func (g *Grouping) Entries(section, component string) []Entry {
	return g.sections[section][component]
}

// Len returns the total number of entry placements across every bucket.
// An entry duplicated into SectionBreaking counts twice.
func (g *Grouping) Len() int {
	n := 0
	for _, components := range g.sections {
		for _, entries := range components {
			n += len(entries)
		}
	}
	return n
}

// Empty reports whether no entry was aggregated at all.
func (g *Grouping) Empty() bool {
	return len(g.sections) == 0
}
