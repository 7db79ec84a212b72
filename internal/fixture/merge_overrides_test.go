package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton-dovnar/revtree/revtree"
)

func TestLoadWithOverridesAppendsCommitsAndRetargetsHead(t *testing.T) {
	in := revtree.NewInterner()
	rl, err := LoadWithOverrides(
		readTestdata(t, "trunk.yaml"),
		[][]byte{readTestdata(t, "override.yaml")},
		in,
	)
	require.NoError(t, err)

	require.Len(t, rl.Heads, 1)
	trunk := rl.Heads[0]
	require.NotNil(t, trunk.Commit)
	assert.Equal(t, "second release", *trunk.Commit.Log, "override's head declaration replaces the base's target")

	require.NotNil(t, trunk.Commit.Parent)
	assert.Equal(t, "fix bug", *trunk.Commit.Parent.Log, "base chain survives under the override's new tip")

	require.Len(t, rl.Tags, 1, "base's tag is untouched by an override that never mentions it")
	assert.Equal(t, "v1", rl.Tags[0].String())
}
