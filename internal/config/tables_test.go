package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOMLTables(t *testing.T) {
	t.Parallel()

	tables, err := parseTOMLTables([]byte(`
[relog]
repository = "ignored here"

[sections]
"Zebra" = ["z"]
"Alpha" = ["a", "aa"]
"Middle" = ["m"]

[components]
"Parser" = ["parser"]
"CLI" = ["cli"]
`))
	require.NoError(t, err)

	require.Len(t, tables.Sections, 3)
	assert.Equal(t, "Zebra", tables.Sections[0].Name, "declaration order, not lexicographic")
	assert.Equal(t, "Alpha", tables.Sections[1].Name)
	assert.Equal(t, []string{"a", "aa"}, tables.Sections[1].Aliases)
	assert.Equal(t, "Middle", tables.Sections[2].Name)

	require.Len(t, tables.Components, 2)
	assert.Equal(t, "Parser", tables.Components[0].Name)
	assert.Equal(t, "CLI", tables.Components[1].Name)
}

func TestParseTOMLTables_AbsentTables(t *testing.T) {
	t.Parallel()

	tables, err := parseTOMLTables([]byte("[relog]\nsubtitle = \"x\"\n"))
	require.NoError(t, err)
	assert.Empty(t, tables.Sections)
	assert.Empty(t, tables.Components)
}

func TestParseYAMLTables(t *testing.T) {
	t.Parallel()

	tables, err := parseYAMLTables([]byte(`
relog:
  subtitle: ignored here
sections:
  Zebra: [z]
  Alpha:
    - a
    - aa
components:
  Parser: [parser]
`))
	require.NoError(t, err)

	require.Len(t, tables.Sections, 2)
	assert.Equal(t, "Zebra", tables.Sections[0].Name)
	assert.Equal(t, []string{"a", "aa"}, tables.Sections[1].Aliases)
	require.Len(t, tables.Components, 1)
	assert.Equal(t, "Parser", tables.Components[0].Name)
}

func TestParseYAMLTables_RejectsNonMapping(t *testing.T) {
	t.Parallel()

	_, err := parseYAMLTables([]byte("sections:\n  - Zebra\n  - Alpha\n"))
	assert.ErrorContains(t, err, "expected a mapping")
}

func TestParseJSONTables(t *testing.T) {
	t.Parallel()

	tables, err := parseJSONTables([]byte(`{
  "relog": {"subtitle": "ignored here"},
  "sections": {"Zebra": ["z"], "Alpha": ["a", "aa"]},
  "components": {"Parser": ["parser"]}
}`))
	require.NoError(t, err)

	require.Len(t, tables.Sections, 2)
	assert.Equal(t, "Zebra", tables.Sections[0].Name, "JSON object order is preserved")
	assert.Equal(t, "Alpha", tables.Sections[1].Name)
	require.Len(t, tables.Components, 1)
	assert.Equal(t, []string{"parser"}, tables.Components[0].Aliases)
}

func TestParseJSONTables_RejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := parseJSONTables([]byte(`{"sections": ["Zebra"]}`))
	assert.Error(t, err)
}
