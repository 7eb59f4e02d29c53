package config

// GetDefaults returns the default values for every scalar key, under the
// "relog" namespace the file and environment layers share.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"relog.repository":      "",
		"relog.subtitle":        "",
		"relog.link-style":      "github",
		"relog.output-format":   "markdown",
		"relog.outfile":         "",
		"relog.infile":          "",
		"relog.changelog":       "",
		"relog.git-dir":         "",
		"relog.git-work-tree":   "",
		"relog.from-latest-tag": false,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relog configuration
# Scalar options live in the [relog] table. The optional [sections] and
# [components] tables merge into the built-in defaults; declaration order
# decides both render order and which section claims a contested alias.

[relog]
repository = ""              # Base URL for commit/issue links, e.g. "https://github.com/you/proj"
subtitle = ""                # Free text appended to the version heading
link-style = "github"        # github | gitlab | stash | cgit
output-format = "markdown"   # markdown | json
from-latest-tag = false      # Start the commit range at the most recent tag
changelog = ""               # Read and write the same file (shorthand for infile + outfile)
# outfile = "CHANGELOG.md"   # Write target (stdout when empty)
# infile = ""                # Previous changelog to prepend onto
# git-dir = ""               # Repository .git directory (default: discovered upward from cwd)
# git-work-tree = ""         # Repository work tree (default: discovered upward from cwd)

# Extra changelog sections and the commit types that land in them.
# Built-ins: Features (ft, feat), Bug Fixes (fx, fix), Performance (perf).
# [sections]
# "Documentation" = ["docs", "doc"]

# Canonical component names for the tags in commit subjects.
# Unlisted tags pass through verbatim.
# [components]
# "Parser" = ["parser", "parse"]
`
}
