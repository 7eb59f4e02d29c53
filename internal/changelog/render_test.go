package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		token   string
		want    Format
		wantErr bool
	}{
		"markdown":         {token: "markdown", want: FormatMarkdown},
		"json":             {token: "json", want: FormatJSON},
		"case insensitive": {token: "JSON", want: FormatJSON},
		"unknown token":    {token: "html", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			format, err := ParseFormat(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "output-format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &MarkdownRenderer{}, NewRenderer(FormatMarkdown, Links{}))
	assert.IsType(t, &JSONRenderer{}, NewRenderer(FormatJSON, Links{}))
}

func TestRelease_EmptySubtitleHeading(t *testing.T) {
	t.Parallel()

	renderer := NewMarkdownRenderer(Links{})
	out, err := RenderString(renderer, Release{Version: "0.1.0", Date: renderDate}, DefaultSections(), Aggregate(nil))
	require.NoError(t, err)

	// The heading keeps its subtitle slot even when empty.
	assert.Equal(t, "<a name=\"0.1.0\"></a>\n## 0.1.0  (2026-01-15)\n\n", out)
}
