package changelog

import (
	"fmt"
	"strings"
)

// LinkStyle selects the hyperlink layout of the hosting service that
// commit and issue references point at.
type LinkStyle int

// Supported link styles. GitHub is the default.
const (
	LinkStyleGitHub LinkStyle = iota
	LinkStyleGitLab
	LinkStyleStash
	LinkStyleCgit
)

var linkStyleNames = map[LinkStyle]string{
	LinkStyleGitHub: "github",
	LinkStyleGitLab: "gitlab",
	LinkStyleStash:  "stash",
	LinkStyleCgit:   "cgit",
}

// ParseLinkStyle resolves a configuration token to a LinkStyle. Matching
// is case-insensitive; unknown tokens are a configuration error.
func ParseLinkStyle(token string) (LinkStyle, error) {
	lowered := strings.ToLower(token)
	for style, name := range linkStyleNames {
		if name == lowered {
			return style, nil
		}
	}
	return LinkStyleGitHub, fmt.Errorf("unrecognized link-style %q (valid: github, gitlab, stash, cgit)", token)
}

func (s LinkStyle) String() string {
	if name, ok := linkStyleNames[s]; ok {
		return name
	}
	return "github"
}

// Links resolves hyperlinks against one repository base URL. An empty
// Repo degrades gracefully: issue links collapse to the bare issue
// number and commit links to the short hash.
type Links struct {
	Style LinkStyle
	Repo  string
}

// IssueLink returns the hyperlink target for an issue reference. Stash
// and cgit have no issue tracker, so the bare reference is returned for
// those styles regardless of Repo.
func (l Links) IssueLink(issue string) string {
	if l.Repo == "" {
		return issue
	}
	switch l.Style {
	case LinkStyleGitHub, LinkStyleGitLab:
		return fmt.Sprintf("%s/issues/%s", l.Repo, issue)
	default:
		return issue
	}
}

// CommitLink returns the hyperlink target for a full revision hash, or
// the short hash when no repository is configured.
func (l Links) CommitLink(hash string) string {
	if l.Repo == "" {
		return ShortHash(hash)
	}
	switch l.Style {
	case LinkStyleGitLab:
		return fmt.Sprintf("%s/commit/%s", l.Repo, hash)
	case LinkStyleStash:
		return fmt.Sprintf("%s/commits/%s", l.Repo, hash)
	case LinkStyleCgit:
		return fmt.Sprintf("%s/commit/?id=%s", l.Repo, hash)
	default:
		return fmt.Sprintf("%s/commit/%s", l.Repo, hash)
	}
}

// ShortHash returns the first eight characters of a revision hash, or the
// whole hash when it is shorter than that.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
