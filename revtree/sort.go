package revtree

import "sort"

// sortByDegree orders refs ascending by Degree with a stable sort, so
// ties preserve discovery order (spec §4.1). Used on both heads and
// tags after ref aggregation.
func sortByDegree(refs []*Ref) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Degree < refs[j].Degree
	})
}

// commitDateSort orders commits newest-first, matching
// rev_commit_date_compare: nil entries sort last, tailed entries sort
// after live ones, ties within equal dates break on the creation-order
// seq of the first file (descending, standing in for the source's
// address comparison), and trailing nils are trimmed. It returns the
// live prefix.
func commitDateSort(commits []*Commit) []*Commit {
	sort.SliceStable(commits, func(i, j int) bool {
		return commitLess(commits[i], commits[j])
	})
	n := len(commits)
	for n > 0 && commits[n-1] == nil {
		n--
	}
	return commits[:n]
}

// CompareCommits gives commits a total, deterministic order: oldest
// first by Date, breaking ties the same way commitLess does (the
// creation-order seq of each commit's first file). render's track
// layout is the intended caller: sorting a merged tree chronologically
// this way agrees with the order the merge itself walked, instead of
// falling back to whatever order a map or set happens to iterate
// commits in. Returns -1 if a sorts before b, 1 if after, 0 if they
// tie. A nil commit sorts last.
func CompareCommits(a, b *Commit) int {
	if a == b {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}
	if !a.Date.Equal(b.Date) {
		if a.Date.Before(b.Date) {
			return -1
		}
		return 1
	}
	if as, aok := a.firstFileSeq(); aok {
		if bs, bok := b.firstFileSeq(); bok && as != bs {
			if as < bs {
				return -1
			}
			return 1
		}
	}
	if a.CommitID != b.CommitID {
		if a.CommitID < b.CommitID {
			return -1
		}
		return 1
	}
	return 0
}

func (c *Commit) firstFileSeq() (uint64, bool) {
	if c == nil || len(c.Files) == 0 {
		return 0, false
	}
	return c.Files[0].seq, true
}

// commitLess reports whether a should sort before b under
// commitDateSort's ordering.
func commitLess(a, b *Commit) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil {
		return false // nil sorts last
	}
	if b == nil {
		return true
	}
	if a.tailed != b.tailed {
		return !a.tailed && b.tailed // live (false) before tailed (true)
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date) // newest first
	}
	if len(a.Files) > 0 && len(b.Files) > 0 {
		return a.Files[0].seq > b.Files[0].seq
	}
	return false
}
