package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton-dovnar/revtree/revtree"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestLoadBuildsChainAndTag(t *testing.T) {
	in := revtree.NewInterner()
	rl, err := Load(readTestdata(t, "trunk.yaml"), in)
	require.NoError(t, err)

	require.Len(t, rl.Heads, 1)
	trunk := rl.Heads[0]
	assert.Equal(t, "trunk", trunk.String())
	assert.Equal(t, 1, trunk.Degree)

	require.NotNil(t, trunk.Commit)
	assert.Equal(t, "fix bug", *trunk.Commit.Log)
	require.NotNil(t, trunk.Commit.Parent)
	assert.Equal(t, "initial import", *trunk.Commit.Parent.Log)
	assert.Nil(t, trunk.Commit.Parent.Parent)

	require.Len(t, rl.Tags, 1)
	assert.Equal(t, "v1", rl.Tags[0].String())
	assert.Same(t, trunk.Commit.Parent, rl.Tags[0].Commit)
}

func TestLoadUnknownParentErrors(t *testing.T) {
	in := revtree.NewInterner()
	_, err := Load([]byte(`
commits:
  - id: c1
    parent: missing
    date: 2024-01-01T00:00:00Z
    log: x
heads:
  - name: trunk
    degree: 1
    commit: c1
`), in)
	assert.Error(t, err)
}

func TestLoadUnknownHeadCommitErrors(t *testing.T) {
	in := revtree.NewInterner()
	_, err := Load([]byte(`
heads:
  - name: trunk
    degree: 1
    commit: nope
`), in)
	assert.Error(t, err)
}
