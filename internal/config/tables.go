package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tableEntry is one row of a [sections] or [components] table in file
// order: a canonical name and its alias tokens.
type tableEntry struct {
	Name    string
	Aliases []string
}

// aliasTables holds the ordered rows of both tables as declared in a
// config file. Declaration order is load-bearing for sections: it decides
// render order and first-match-wins alias resolution, which is why these
// are extracted from the raw file instead of koanf's merged map.
type aliasTables struct {
	Sections   []tableEntry
	Components []tableEntry
}

// parseTOMLTables extracts the alias tables from TOML, using the decoder
// metadata for key order since Go maps do not preserve it.
func parseTOMLTables(data []byte) (aliasTables, error) {
	var doc struct {
		Sections   map[string][]string `toml:"sections"`
		Components map[string][]string `toml:"components"`
	}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return aliasTables{}, err
	}

	var tables aliasTables
	for _, key := range md.Keys() {
		if len(key) != 2 {
			continue
		}
		switch key[0] {
		case "sections":
			tables.Sections = append(tables.Sections, tableEntry{Name: key[1], Aliases: doc.Sections[key[1]]})
		case "components":
			tables.Components = append(tables.Components, tableEntry{Name: key[1], Aliases: doc.Components[key[1]]})
		}
	}
	return tables, nil
}

// parseYAMLTables extracts the alias tables from YAML via the node API,
// which preserves mapping key order.
func parseYAMLTables(data []byte) (aliasTables, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return aliasTables{}, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return aliasTables{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return aliasTables{}, nil
	}

	var tables aliasTables
	for i := 0; i+1 < len(doc.Content); i += 2 {
		var err error
		switch doc.Content[i].Value {
		case "sections":
			tables.Sections, err = yamlTableEntries(doc.Content[i+1])
		case "components":
			tables.Components, err = yamlTableEntries(doc.Content[i+1])
		}
		if err != nil {
			return aliasTables{}, err
		}
	}
	return tables, nil
}

// yamlTableEntries decodes one name-to-aliases mapping node in order.
func yamlTableEntries(node *yaml.Node) ([]tableEntry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of name to alias list", node.Line)
	}

	entries := make([]tableEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var aliases []string
		if err := node.Content[i+1].Decode(&aliases); err != nil {
			return nil, fmt.Errorf("aliases for %q: %w", node.Content[i].Value, err)
		}
		entries = append(entries, tableEntry{Name: node.Content[i].Value, Aliases: aliases})
	}
	return entries, nil
}

// parseJSONTables extracts the alias tables from legacy JSON by walking
// the token stream, since decoding into a map would scramble key order.
func parseJSONTables(data []byte) (aliasTables, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return aliasTables{}, err
	}

	var tables aliasTables
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return aliasTables{}, err
		}
		key, _ := keyTok.(string)

		switch key {
		case "sections":
			tables.Sections, err = jsonTableEntries(dec)
		case "components":
			tables.Components, err = jsonTableEntries(dec)
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return aliasTables{}, err
		}
	}
	return tables, nil
}

// jsonTableEntries decodes one name-to-aliases object in key order.
func jsonTableEntries(dec *json.Decoder) ([]tableEntry, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("expected an object of name to alias list: %w", err)
	}

	var entries []tableEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := keyTok.(string)

		var aliases []string
		if err := dec.Decode(&aliases); err != nil {
			return nil, fmt.Errorf("aliases for %q: %w", name, err)
		}
		entries = append(entries, tableEntry{Name: name, Aliases: aliases})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// expectDelim consumes one token and checks it is the given delimiter.
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, found %v", want, tok)
	}
	return nil
}
