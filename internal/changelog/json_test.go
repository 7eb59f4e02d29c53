package changelog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{
			Hash:      "aaa1111111111111111111111111111111111111",
			Subject:   " add retry",
			Component: "core",
			Section:   "Features",
			Closes:    []string{"5"},
		},
		{
			Hash:    "bbb2222222222222222222222222222222222222",
			Subject: " crash on empty input",
			Section: "Bug Fixes",
			Breaks:  []string{""},
		},
	}
	g := Aggregate(entries)

	renderer := NewJSONRenderer(Links{
		Style: LinkStyleGitHub,
		Repo:  "https://example.com/org/proj",
	})
	rel := Release{Version: "0.2.0", Subtitle: "Iron Blob", Date: renderDate}

	out, err := RenderString(renderer, rel, DefaultSections(), g)
	require.NoError(t, err)

	want := `{"header":{"version":"0.2.0","patch_version":false,"subtitle":"Iron Blob","date":"2026-01-15"},` +
		`"sections":[` +
		`{"title":"Features","commits":[{"component":"core","subject":" add retry",` +
		`"commit_link":"https://example.com/org/proj/commit/aaa1111111111111111111111111111111111111",` +
		`"closes":[{"issue":5,"issue_link":"https://example.com/org/proj/issues/5"}],"breaks":null}]},` +
		`{"title":"Bug Fixes","commits":[{"component":null,"subject":" crash on empty input",` +
		`"commit_link":"https://example.com/org/proj/commit/bbb2222222222222222222222222222222222222",` +
		`"closes":null,"breaks":null}]},` +
		`{"title":"Breaking Changes","commits":[{"component":null,"subject":" crash on empty input",` +
		`"commit_link":"https://example.com/org/proj/commit/bbb2222222222222222222222222222222222222",` +
		`"closes":null,"breaks":null}]}]}`
	assert.Equal(t, want, out)
}

func TestJSONRenderer_EmptyGrouping(t *testing.T) {
	t.Parallel()

	renderer := NewJSONRenderer(Links{})
	rel := Release{Version: "abcd1234", Date: renderDate}

	out, err := RenderString(renderer, rel, DefaultSections(), Aggregate(nil))
	require.NoError(t, err)

	want := `{"header":{"version":"abcd1234","patch_version":false,"subtitle":null,"date":"2026-01-15"},"sections":null}`
	assert.Equal(t, want, out)
}

func TestJSONRenderer_ExplicitBreaksRefs(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{
			Hash:    "ccc3333333333333333333333333333333333333",
			Subject: " drop old API",
			Section: "Features",
			Breaks:  []string{"12", "34"},
		},
	}
	g := Aggregate(entries)

	renderer := NewJSONRenderer(Links{Style: LinkStyleGitHub, Repo: "https://example.com/org/proj"})
	out, err := RenderString(renderer, Release{Version: "2.0.0", Date: renderDate}, DefaultSections(), g)
	require.NoError(t, err)

	var doc struct {
		Sections []struct {
			Title   string `json:"title"`
			Commits []struct {
				Breaks []struct {
					Issue     int    `json:"issue"`
					IssueLink string `json:"issue_link"`
				} `json:"breaks"`
			} `json:"commits"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Sections, 2, "Features plus Breaking Changes")
	breaks := doc.Sections[0].Commits[0].Breaks
	require.Len(t, breaks, 2)
	assert.Equal(t, 12, breaks[0].Issue)
	assert.Equal(t, "https://example.com/org/proj/issues/12", breaks[0].IssueLink)
	assert.Equal(t, 34, breaks[1].Issue)
}

func TestJSONRenderer_PatchVersion(t *testing.T) {
	t.Parallel()

	renderer := NewJSONRenderer(Links{})
	rel := Release{Version: "0.1.1", Patch: true, Date: renderDate}

	out, err := RenderString(renderer, rel, DefaultSections(), Aggregate(nil))
	require.NoError(t, err)

	assert.Contains(t, out, `"patch_version":true`)
}
