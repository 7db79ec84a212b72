package render

import (
	"strings"
	"testing"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton-dovnar/revtree/revtree"
)

func at(seconds int64) time.Time { return time.Unix(seconds, 0) }

func buildSample() *revtree.RevList {
	in := revtree.NewInterner()
	trunkName := in.Intern("trunk")
	brName := in.Intern("br")

	tc1 := &revtree.Commit{Date: at(100), Log: in.Intern("root"),
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("A"), []int{1, 1}, at(100))}}
	tc2 := &revtree.Commit{Date: at(200), Log: in.Intern("second"), Parent: tc1,
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("A"), []int{1, 2}, at(200))}}

	bc1 := &revtree.Commit{Date: at(250), Log: in.Intern("branch work"), Parent: tc2,
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("B"), []int{1, 1}, at(250))}}

	rl := &revtree.RevList{
		Heads: []*revtree.Ref{
			{Name: trunkName, Head: true, Degree: 1, Commit: tc2},
			{Name: brName, Head: true, Degree: 2, Commit: bc1, Parent: &revtree.Ref{Name: trunkName}},
		},
		Tags: []*revtree.Ref{
			{Name: in.Intern("v1"), Commit: tc1},
		},
	}
	return rl
}

func TestArrangeOrdersEqualTimestampCommitsBySeq(t *testing.T) {
	in := revtree.NewInterner()
	root := &revtree.Commit{Date: at(100), Log: in.Intern("root"),
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("A"), []int{1, 1}, at(100))}}

	// Two descendants sharing root's timestamp exactly, created in a known
	// order: Arrange must place them in that same relative order on
	// every run, not whatever order mapset.Set.ToSlice() happens to
	// iterate them in.
	first := &revtree.Commit{Date: at(100), Parent: root, Log: in.Intern("first"),
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("B"), []int{1, 1}, at(100))}}
	second := &revtree.Commit{Date: at(100), Parent: first, Log: in.Intern("second"),
		Files: []*revtree.FileRev{revtree.NewFileRev(in.Intern("C"), []int{1, 1}, at(100))}}

	rl := &revtree.RevList{
		Heads: []*revtree.Ref{
			{Name: in.Intern("trunk"), Head: true, Degree: 1, Commit: second},
		},
	}

	var prev int
	for i := 0; i < 20; i++ {
		layout := Arrange(rl)
		require.Less(t, layout.Positions[root].Y, layout.Positions[first].Y)
		require.Less(t, layout.Positions[first].Y, layout.Positions[second].Y)
		if i > 0 {
			assert.Equal(t, prev, layout.Positions[first].Y, "tie-break order must be stable across runs")
		}
		prev = layout.Positions[first].Y
	}
}

func TestArrangeAssignsDistinctColumns(t *testing.T) {
	rl := buildSample()
	layout := Arrange(rl)

	trunkTip := rl.Heads[0].Commit
	branchTip := rl.Heads[1].Commit
	root := trunkTip.Parent

	require.Contains(t, layout.Positions, trunkTip)
	require.Contains(t, layout.Positions, branchTip)
	require.Contains(t, layout.Positions, root)

	assert.NotEqual(t, layout.Positions[trunkTip].X, layout.Positions[branchTip].X,
		"trunk and br occupy different columns")
	assert.Equal(t, layout.Positions[trunkTip].X, layout.Positions[root].X,
		"trunk's own chain, including its shared tail, stays in trunk's column")

	assert.True(t, layout.Positions[root].Y < layout.Positions[trunkTip].Y, "root sorts before its descendant")
	assert.True(t, layout.Positions[trunkTip].Y < layout.Positions[branchTip].Y)
}

func TestDrawRailwayProducesSVGWithStops(t *testing.T) {
	rl := buildSample()
	layout := Arrange(rl)

	var buf strings.Builder
	canvas := svg.New(&buf)
	DrawRailway(canvas, rl, layout)

	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"))
	assert.Equal(t, len(layout.Positions), strings.Count(out, `class="stop"`))
}

func TestGenerateCommitDataKeyedByLabel(t *testing.T) {
	rl := buildSample()
	layout := Arrange(rl)

	data := GenerateCommitData(layout, "")
	assert.Len(t, data, len(layout.Positions))

	for c := range layout.Positions {
		label := commitLabel(c)
		entry, ok := data[label]
		require.True(t, ok)
		assert.Equal(t, c.NFiles(), entry.FileCount)
	}
}
