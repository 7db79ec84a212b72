package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton-dovnar/revtree/revtree"
)

func TestResolveBranchParentAgreement(t *testing.T) {
	in := revtree.NewInterner()
	trunk := in.Intern("trunk")
	br := in.Intern("br")

	refA := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: trunk}}
	refB := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: trunk}}

	merged := &revtree.RevList{Heads: []*revtree.Ref{{Name: trunk}}}
	diag := &revtree.CollectingDiagnostics{}

	got := ResolveBranchParent([]*revtree.Ref{refA, refB}, merged, diag)
	require.NotNil(t, got)
	assert.Same(t, merged.Heads[0], got)
	assert.Empty(t, diag.Messages)
}

func TestResolveBranchParentPrefersDescendant(t *testing.T) {
	in := revtree.NewInterner()
	trunk := in.Intern("trunk")
	stable := in.Intern("stable")
	br := in.Intern("br")

	// stable's own parent is trunk, so stable is a descendant of trunk:
	// a declaration naming stable should win over one naming trunk.
	stableRef := &revtree.Ref{Name: stable, Parent: &revtree.Ref{Name: trunk}}
	refTrunk := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: trunk}}
	refStable := &revtree.Ref{Name: br, Parent: stableRef}

	merged := &revtree.RevList{Heads: []*revtree.Ref{{Name: trunk}, {Name: stable}}}
	diag := &revtree.CollectingDiagnostics{}

	got := ResolveBranchParent([]*revtree.Ref{refTrunk, refStable}, merged, diag)
	require.NotNil(t, got)
	assert.Equal(t, "stable", got.String())
	assert.Empty(t, diag.Messages)
}

func TestResolveBranchParentCollision(t *testing.T) {
	in := revtree.NewInterner()
	a := in.Intern("release-a")
	b := in.Intern("release-b")
	br := in.Intern("br")

	refA := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: a}}
	refB := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: b}}

	merged := &revtree.RevList{Heads: []*revtree.Ref{{Name: a}, {Name: b}}}
	diag := &revtree.CollectingDiagnostics{}

	got := ResolveBranchParent([]*revtree.Ref{refA, refB}, merged, diag)
	require.NotNil(t, got, "first-seen parent is kept despite the collision")
	assert.Equal(t, "release-a", got.String())
	require.Len(t, diag.Messages, 3)
	assert.Equal(t, "Branch name collision:", diag.Messages[0])
}

func TestResolveBranchParentMissingFromMerge(t *testing.T) {
	in := revtree.NewInterner()
	ghost := in.Intern("ghost")
	br := in.Intern("br")

	ref := &revtree.Ref{Name: br, Parent: &revtree.Ref{Name: ghost}}
	merged := &revtree.RevList{}
	diag := &revtree.CollectingDiagnostics{}

	got := ResolveBranchParent([]*revtree.Ref{ref}, merged, diag)
	assert.Nil(t, got)
	assert.Contains(t, diag.Messages, "Reference missing in merge: ghost")
}

func TestResolveBranchParentNoDeclarations(t *testing.T) {
	in := revtree.NewInterner()
	br := in.Intern("br")
	ref := &revtree.Ref{Name: br}

	got := ResolveBranchParent([]*revtree.Ref{ref}, &revtree.RevList{}, nil)
	assert.Nil(t, got)
}
