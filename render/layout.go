package render

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/anton-dovnar/revtree/revtree"
)

// Position is a commit's column (branch lane) and row (chronological
// rank, oldest first).
type Position struct {
	X, Y int
}

// Layout is the result of Arrange: every commit's lattice position
// plus the reverse lookup from column to owning branch, used to color
// rails in DrawRailway.
type Layout struct {
	Positions map[*revtree.Commit]Position
	Columns   map[int]*revtree.Ref
	MaxX      int
	MaxY      int
}

// Arrange assigns each commit in rl a lattice position, adapted from
// the teacher's arrangeCommits. The teacher lays out an arbitrary
// multi-parent commit DAG read back from go-git, so its version tracks
// per-ref "levels" with set-intersection heuristics to decide when
// branches share a column. revtree's merged output is a tree (each
// Commit has at most one Parent), so that machinery collapses: a
// commit's column is simply the column of the first branch, walked in
// degree order, that reaches it — the same column a shared tail commit
// already has by the time a child branch's walk arrives at it.
func Arrange(rl *revtree.RevList) *Layout {
	layout := &Layout{
		Positions: make(map[*revtree.Commit]Position),
		Columns:   make(map[int]*revtree.Ref),
	}

	all := collectCommits(rl)
	chrono := chronoSort(all)
	for y, c := range chrono {
		layout.Positions[c] = Position{X: -1, Y: y}
		if y > layout.MaxY {
			layout.MaxY = y
		}
	}

	heads := append([]*revtree.Ref(nil), rl.Heads...)
	sort.SliceStable(heads, func(i, j int) bool { return heads[i].Degree < heads[j].Degree })

	col := 0
	for _, head := range heads {
		claimed := false
		for c := head.Commit; c != nil; c = c.Parent {
			pos, ok := layout.Positions[c]
			if !ok {
				break
			}
			if pos.X != -1 {
				// Reached a commit another (earlier, lower-degree)
				// branch already claimed; this branch attaches here.
				break
			}
			pos.X = col
			layout.Positions[c] = pos
			claimed = true
		}
		if claimed {
			layout.Columns[col] = head
			if col > layout.MaxX {
				layout.MaxX = col
			}
			col++
		}
	}

	// Any commit a walk never reached (isolated tag-only input, or a
	// branch-point commit between two already-claimed chains) still
	// needs a column; give it its own rather than leave X at -1.
	for c, pos := range layout.Positions {
		if pos.X == -1 {
			pos.X = col
			layout.Positions[c] = pos
			col++
			if pos.X > layout.MaxX {
				layout.MaxX = pos.X
			}
		}
	}

	return layout
}

func collectCommits(rl *revtree.RevList) mapset.Set[*revtree.Commit] {
	seen := mapset.NewSet[*revtree.Commit]()
	walk := func(c *revtree.Commit) {
		for ; c != nil; c = c.Parent {
			if seen.Contains(c) {
				return
			}
			seen.Add(c)
		}
	}
	for _, h := range rl.Heads {
		walk(h.Commit)
	}
	for _, t := range rl.Tags {
		walk(t.Commit)
	}
	return seen
}

// chronoSort orders set oldest-first using revtree.CompareCommits,
// not bare Date comparison: set.ToSlice() iterates in random map
// order, and two commits sharing a Date (sibling per-file commits
// recorded at the same instant, or a tail commit two branches both
// reach) need revtree's own seq tie-break to land in the same relative
// order the merge itself walked, on every run of the same RevList.
func chronoSort(set mapset.Set[*revtree.Commit]) []*revtree.Commit {
	out := set.ToSlice()
	sort.SliceStable(out, func(i, j int) bool { return revtree.CompareCommits(out[i], out[j]) < 0 })
	return out
}
