package config

import "path/filepath"

// Config file basenames, in discovery order. TOML is the preferred
// format; the YAML spellings are equivalent; bare JSON is legacy and
// triggers a deprecation warning when used.
const (
	TOMLConfigName       = ".relog.toml"
	YAMLConfigName       = ".relog.yml"
	YAMLConfigNameLong   = ".relog.yaml"
	LegacyJSONConfigName = ".relog.json"
)

// ConfigCandidates returns the config file paths probed in the given
// directory, in priority order.
func ConfigCandidates(dir string) []string {
	return []string{
		filepath.Join(dir, TOMLConfigName),
		filepath.Join(dir, YAMLConfigName),
		filepath.Join(dir, YAMLConfigNameLong),
		filepath.Join(dir, LegacyJSONConfigName),
	}
}

// DefaultConfigPath returns the path 'relog init' writes in the given
// directory.
func DefaultConfigPath(dir string) string {
	return filepath.Join(dir, TOMLConfigName)
}
