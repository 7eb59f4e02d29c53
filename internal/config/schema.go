package config

import (
	"github.com/relog-dev/relog/internal/changelog"
)

// Settings is the fully resolved configuration the generator runs with:
// defaults, then config file, then RELOG_* environment variables, with
// CLI flags layered on top by the caller.
type Settings struct {
	// Repository is the base URL commit and issue links point at, without
	// a trailing slash or .git suffix. Empty disables hyperlinks.
	Repository string
	// Subtitle is appended to the version heading.
	Subtitle string
	// LinkStyle selects the hosting service's hyperlink layout.
	LinkStyle changelog.LinkStyle
	// Format selects the output renderer.
	Format changelog.Format
	// Outfile is the write target; empty means stdout.
	Outfile string
	// Infile is the previous changelog prepended onto. When empty and
	// Outfile is set, the outfile's existing contents take its place.
	Infile string
	// GitDir and GitWorkTree locate the repository when the generator
	// does not run from inside it.
	GitDir      string
	GitWorkTree string
	// FromLatestTag starts the commit range at the most recent tag.
	FromLatestTag bool
	// Sections and Components are the alias tables after merging the
	// config file's entries into the built-in defaults.
	Sections   *changelog.SectionTable
	Components *changelog.ComponentTable
	// Source is the path of the config file the settings came from, empty
	// when running on pure defaults.
	Source string
}

// fileSettings is the scalar half of a config file, the shape koanf
// unmarshals from the "relog" table. The ordered alias tables are
// extracted separately because map-based parsing would lose their
// declaration order.
type fileSettings struct {
	Repository    string `koanf:"repository"`
	Subtitle      string `koanf:"subtitle"`
	LinkStyle     string `koanf:"link-style" validate:"omitempty,oneof=github gitlab stash cgit"`
	OutputFormat  string `koanf:"output-format" validate:"omitempty,oneof=markdown json"`
	Outfile       string `koanf:"outfile"`
	Infile        string `koanf:"infile"`
	Changelog     string `koanf:"changelog"`
	GitDir        string `koanf:"git-dir"`
	GitWorkTree   string `koanf:"git-work-tree"`
	FromLatestTag bool   `koanf:"from-latest-tag"`
}
