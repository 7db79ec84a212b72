package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTMLEmbedsSVGAndData(t *testing.T) {
	rl := buildSample()
	layout := Arrange(rl)
	svgContent := GenerateSVGString(rl, layout)
	data := GenerateCommitData(layout, "")

	var buf strings.Builder
	require.NoError(t, WriteHTML(&buf, svgContent, data, "revtree"))

	out := buf.String()
	assert.Contains(t, out, "revtree")
	assert.Contains(t, out, `id="railway_svg"`)
	assert.Contains(t, out, "commitData")
	assert.NotContains(t, out, "((%")
	assert.NotContains(t, out, "{{")
}

func TestParseCommitMessageConventional(t *testing.T) {
	typ, scope, title := parseCommitMessage("fix(parser): handle empty input")
	assert.Equal(t, "fix", typ)
	assert.Equal(t, "parser", scope)
	assert.Equal(t, "handle empty input", title)
}

func TestParseCommitMessagePlain(t *testing.T) {
	typ, scope, title := parseCommitMessage("just a plain log line")
	assert.Empty(t, typ)
	assert.Empty(t, scope)
	assert.Equal(t, "just a plain log line", title)
}
