package revtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLostTagDiagnostic(t *testing.T) {
	in := NewInterner()
	trunkName := in.Intern("trunk")
	tagName := in.Intern("ghost")

	c1 := &Commit{Date: at(100), Log: in.Intern("l"), Files: []*FileRev{NewFileRev(in.Intern("A"), []int{1, 1}, at(100))}}

	input := &RevList{
		Heads: []*Ref{{Name: trunkName, Head: true, Degree: 1, Commit: c1}},
		// A tag whose own declaration has no commit at all: tagSearch
		// has nothing to locate from and buildCommit on an empty slice
		// never runs, so the tag is left unresolved.
		Tags: []*Ref{{Name: tagName, Head: false, Degree: 1, Commit: nil}},
	}

	diag := &CollectingDiagnostics{}
	merged, err := Merge([]*RevList{input}, Options{Diagnostics: diag})
	require.NoError(t, err)

	require.Len(t, merged.Tags, 1)
	assert.Nil(t, merged.Tags[0].Commit)
	assert.Contains(t, diag.Messages, "lost tag ghost")
}

func TestDegreeUsesMaxRule(t *testing.T) {
	in := NewInterner()
	trunkName := in.Intern("trunk")
	tagName := in.Intern("v1")
	c1 := &Commit{Date: at(100), Log: in.Intern("l"), Files: []*FileRev{NewFileRev(in.Intern("A"), []int{1, 1}, at(100))}}

	inputLow := &RevList{
		Heads: []*Ref{{Name: trunkName, Head: true, Degree: 1, Commit: c1}},
		Tags:  []*Ref{{Name: tagName, Head: false, Degree: 1, Commit: c1}},
	}
	inputHigh := &RevList{
		Heads: []*Ref{{Name: trunkName, Head: true, Degree: 1, Commit: c1}},
		Tags:  []*Ref{{Name: tagName, Head: false, Degree: 5, Commit: c1}},
	}

	merged, err := Merge([]*RevList{inputLow, inputHigh}, Options{})
	require.NoError(t, err)
	require.Len(t, merged.Tags, 1)
	assert.Equal(t, 5, merged.Tags[0].Degree, "tag degree follows the max-degree rule, matching heads (spec §9)")
}
