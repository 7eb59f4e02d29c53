// Package config loads relog configuration using koanf. Values are
// layered with priority: environment variables (RELOG_*) > config file
// (.relog.toml preferred, .relog.yml supported, legacy .relog.json
// deprecated) > defaults. The ordered section and component alias tables
// are extracted straight from the file, since their declaration order
// drives section rendering and alias resolution.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/relog-dev/relog/internal/changelog"
)

// envPrefix namespaces the environment variables relog reads, e.g.
// RELOG_LINK_STYLE or RELOG_FROM_LATEST_TAG.
const envPrefix = "RELOG_"

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath pins the config file instead of probing the search
	// directory. The file must exist; its format follows its extension.
	ConfigPath string
	// Dir is the directory probed for config files (default: current
	// working directory).
	Dir string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from the given config file, or discovers one
// when path is empty. Priority: environment variables > config file >
// defaults.
func Load(path string) (*Settings, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: path})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	source, data, err := loadFileConfig(k, opts, warningWriter)
	if err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k, source, data)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadFileConfig loads the pinned or discovered config file into k and
// returns its path and raw bytes for ordered-table extraction. A missing
// file (when not pinned) is not an error; relog runs on defaults.
func loadFileConfig(k *koanf.Koanf, opts LoadOptions, warningWriter io.Writer) (string, []byte, error) {
	path := opts.ConfigPath
	if path == "" {
		path = DiscoverConfigFile(opts.Dir)
		if path == "" {
			return "", nil, nil
		}
	} else if !fileExists(path) {
		return "", nil, fmt.Errorf("config file %s does not exist", path)
	}

	if err := loadConfigFile(k, path); err != nil {
		return "", nil, err
	}

	if isLegacyJSON(path) && !opts.SkipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", path)
		fmt.Fprintf(warningWriter, "  Run 'relog init' and port your settings to %s format.\n\n", TOMLConfigName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return path, data, nil
}

// DiscoverConfigFile returns the first existing config candidate in dir,
// or empty when none exists.
func DiscoverConfigFile(dir string) string {
	if dir == "" {
		dir = "."
	}
	for _, candidate := range ConfigCandidates(dir) {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// loadConfigFile loads one config file into k with the parser matching
// its extension.
func loadConfigFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := k.Load(file.Provider(path), tomlParser{}); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := ValidateYAMLSyntax(path); err != nil {
			return fmt.Errorf("validating YAML syntax: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case ".json":
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config file %s has an unsupported extension (use .toml, .yml or .json)", path)
	}
	return nil
}

// isLegacyJSON reports whether the path is a deprecated JSON config.
func isLegacyJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: RELOG_LINK_STYLE -> relog.link-style
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return "relog." + strings.ReplaceAll(key, "_", "-")
}

// finalizeConfig unmarshals the scalar layer, merges the ordered alias
// tables into the defaults, validates, and resolves the typed settings.
func finalizeConfig(k *koanf.Koanf, source string, data []byte) (*Settings, error) {
	var raw fileSettings
	if err := k.Unmarshal("relog", &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	errPath := source
	if errPath == "" {
		errPath = "config"
	}

	raw.LinkStyle = strings.ToLower(raw.LinkStyle)
	raw.OutputFormat = strings.ToLower(raw.OutputFormat)
	if raw.LinkStyle == "" {
		raw.LinkStyle = "github"
	}
	if raw.OutputFormat == "" {
		raw.OutputFormat = "markdown"
	}

	if err := validateScalars(&raw, errPath); err != nil {
		return nil, err
	}

	sections, components, err := loadAliasTables(source, data, errPath)
	if err != nil {
		return nil, err
	}

	return resolveSettings(&raw, sections, components, source)
}

// loadAliasTables extracts the ordered table rows from the raw config
// bytes, merges them into the built-in defaults and validates the result.
func loadAliasTables(source string, data []byte, errPath string) (*changelog.SectionTable, *changelog.ComponentTable, error) {
	sections := changelog.DefaultSections()
	components := changelog.DefaultComponents()

	if source != "" {
		tables, err := parseAliasTables(source, data)
		if err != nil {
			return nil, nil, &ValidationError{FilePath: errPath, Message: err.Error()}
		}
		for _, entry := range tables.Sections {
			sections.Set(entry.Name, entry.Aliases)
		}
		for _, entry := range tables.Components {
			components.Set(entry.Name, entry.Aliases)
		}
	}

	if err := validateAliasTables(sections, components, errPath); err != nil {
		return nil, nil, err
	}
	return sections, components, nil
}

// parseAliasTables dispatches ordered-table extraction on file format.
func parseAliasTables(path string, data []byte) (aliasTables, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOMLTables(data)
	case ".yml", ".yaml":
		return parseYAMLTables(data)
	default:
		return parseJSONTables(data)
	}
}

// resolveSettings turns validated scalars into typed settings, applying
// the changelog shorthand and normalizing the repository URL.
func resolveSettings(raw *fileSettings, sections *changelog.SectionTable, components *changelog.ComponentTable, source string) (*Settings, error) {
	// Already validated; parse errors here would be programming errors.
	style, err := changelog.ParseLinkStyle(raw.LinkStyle)
	if err != nil {
		return nil, err
	}
	format, err := changelog.ParseFormat(raw.OutputFormat)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Repository:    NormalizeRepository(raw.Repository),
		Subtitle:      raw.Subtitle,
		LinkStyle:     style,
		Format:        format,
		Outfile:       raw.Outfile,
		Infile:        raw.Infile,
		GitDir:        raw.GitDir,
		GitWorkTree:   raw.GitWorkTree,
		FromLatestTag: raw.FromLatestTag,
		Sections:      sections,
		Components:    components,
		Source:        source,
	}

	if raw.Changelog != "" {
		settings.Outfile = raw.Changelog
		settings.Infile = raw.Changelog
	}

	return settings, nil
}

// NormalizeRepository strips the decorations that would corrupt generated
// links: trailing slashes and a trailing .git suffix. Repository values
// from flags route through it too.
func NormalizeRepository(repo string) string {
	repo = strings.TrimRight(repo, "/")
	return strings.TrimSuffix(repo, ".git")
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
