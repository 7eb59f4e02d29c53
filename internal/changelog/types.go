package changelog

import "sort"

// Reserved section names. SectionUnknown is the fallback bucket for
// commits whose type token matches no configured alias; entries landing
// there are dropped before aggregation. SectionBreaking is populated by
// the aggregator from entries carrying breaking-change references, in
// addition to their normal section.
const (
	SectionUnknown  = "Unknown"
	SectionBreaking = "Breaking Changes"
)

// Entry is one classified commit record.
// It is constructed once by Parser.Parse and never mutated afterwards.
type Entry struct {
	// Hash is the full revision identifier. Length is not validated;
	// an empty hash means the raw block had no hash line.
	Hash string
	// Subject is the free text after the type/component prefix,
	// exactly as captured (a leading space is preserved).
	Subject string
	// Component is the canonical component name, or the raw tag when no
	// alias matched, or empty when the subject carried no component.
	Component string
	// Section is the canonical section name; SectionUnknown when no
	// alias matched the type token.
	Section string
	// Closes holds issue identifiers from Closes/Fixes/Resolves
	// directives, in order of appearance.
	Closes []string
	// Breaks holds issue identifiers from Breaks/Broke directives. A
	// bare "breaking" marker with no explicit references contributes a
	// single empty-string entry.
	Breaks []string
}

// Breaking reports whether the entry carries any breaking-change
// reference, explicit or bare-marker.
func (e Entry) Breaking() bool {
	return len(e.Breaks) > 0
}

// SectionSpec is one row of the ordered section table: a canonical
// section title and the alias tokens that resolve to it.
type SectionSpec struct {
	Name    string
	Aliases []string
}

// SectionTable is the ordered mapping from canonical section names to
// their trigger aliases. Row order is load-bearing: it defines both the
// render order of sections and the first-match-wins resolution order.
type SectionTable struct {
	specs []SectionSpec
}

// DefaultSections returns a fresh table with the built-in sections in
// their conventional order. Callers layering configuration overrides
// merge into the returned copy via Set.
func DefaultSections() *SectionTable {
	t := &SectionTable{}
	t.Set("Features", []string{"ft", "feat"})
	t.Set("Bug Fixes", []string{"fx", "fix"})
	t.Set("Performance", []string{"perf"})
	t.Set(SectionUnknown, []string{"unk"})
	t.Set(SectionBreaking, []string{"breaks"})
	return t
}

// Set installs aliases for a canonical section. An existing canonical
// keeps its position and gets its aliases replaced; a new canonical is
// appended at the end of the table.
func (t *SectionTable) Set(name string, aliases []string) {
	for i := range t.specs {
		if t.specs[i].Name == name {
			t.specs[i].Aliases = aliases
			return
		}
	}
	t.specs = append(t.specs, SectionSpec{Name: name, Aliases: aliases})
}

// Resolve maps a raw type token to its canonical section name. The scan
// is top-to-bottom so an alias claimed by two sections resolves to the
// earlier-declared one. Tokens matching no alias resolve to
// SectionUnknown.
func (t *SectionTable) Resolve(token string) string {
	for _, spec := range t.specs {
		for _, alias := range spec.Aliases {
			if alias == token {
				return spec.Name
			}
		}
	}
	return SectionUnknown
}

// Names returns the canonical section names in table order.
func (t *SectionTable) Names() []string {
	names := make([]string, len(t.specs))
	for i, spec := range t.specs {
		names[i] = spec.Name
	}
	return names
}

// Aliases returns every alias in table order. The commit source derives
// its history prefilter from this list.
func (t *SectionTable) Aliases() []string {
	var aliases []string
	for _, spec := range t.specs {
		aliases = append(aliases, spec.Aliases...)
	}
	return aliases
}

// Specs returns a copy of the table rows in order.
func (t *SectionTable) Specs() []SectionSpec {
	specs := make([]SectionSpec, len(t.specs))
	copy(specs, t.specs)
	return specs
}

// Len returns the number of canonical sections in the table.
func (t *SectionTable) Len() int {
	return len(t.specs)
}

// ComponentTable is the unordered mapping from canonical component names
// to their trigger aliases. Unlike sections, an unmatched component tag
// passes through verbatim rather than degrading to a sentinel.
type ComponentTable struct {
	aliases map[string][]string
}

// DefaultComponents returns a fresh, empty component table. Components
// are free-form, so there are no built-in canonical names.
func DefaultComponents() *ComponentTable {
	return &ComponentTable{aliases: make(map[string][]string)}
}

// Set installs aliases for a canonical component, replacing any previous
// alias list for that canonical.
func (t *ComponentTable) Set(name string, aliases []string) {
	if t.aliases == nil {
		t.aliases = make(map[string][]string)
	}
	t.aliases[name] = aliases
}

// Resolve maps a raw component tag to its canonical name. Tags matching
// no alias are returned verbatim. Canonical names are scanned in sorted
// order so a tag claimed by two canonicals resolves deterministically
// (configuration validation rejects that situation up front).
func (t *ComponentTable) Resolve(tag string) string {
	for _, name := range t.Names() {
		for _, alias := range t.aliases[name] {
			if alias == tag {
				return name
			}
		}
	}
	return tag
}

// Names returns the canonical component names in sorted order.
func (t *ComponentTable) Names() []string {
	names := make([]string, 0, len(t.aliases))
	for name := range t.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns the alias list for a canonical component name.
func (t *ComponentTable) Aliases(name string) []string {
	return t.aliases[name]
}

// Len returns the number of canonical components in the table.
func (t *ComponentTable) Len() int {
	return len(t.aliases)
}
