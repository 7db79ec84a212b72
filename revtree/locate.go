package revtree

import "time"

// locateOne scans branch's merged chain for any commit matching
// target by commitsMatch (spec §4.4/§4.5, rev_commit_locate_one).
func locateOne(branch *Ref, target *Commit, window time.Duration) *Commit {
	if branch == nil {
		return nil
	}
	for c := branch.Commit; c != nil; c = c.Parent {
		if commitsMatch(c, target, window) {
			return c
		}
	}
	return nil
}

// locateByDate returns the newest commit on branch whose date is no
// later than date (rev_commit_locate_date).
func locateByDate(branch *Ref, date time.Time) *Commit {
	if branch == nil {
		return nil
	}
	for c := branch.Commit; c != nil; c = c.Parent {
		if !c.Date.After(date) {
			return c
		}
	}
	return nil
}

// locateAny scans heads[from:] (inclusive) for any branch holding a
// commit matching target, in tail-to-head order. The source recurses
// across the sibling-branch linked list (rev_commit_locate_any); spec
// §9 prefers the iterative form to avoid stack risk, and since the
// recursion there unwinds tail-first, scanning backward from the end
// of the slice reproduces the same match-precedence.
func locateAny(heads []*Ref, from int, target *Commit, window time.Duration) *Commit {
	for i := len(heads) - 1; i >= from; i-- {
		if c := locateOne(heads[i], target, window); c != nil {
			return c
		}
	}
	return nil
}

// locate finds target's corresponding commit on branch, trying
// branch's own chain first, then the root's (and the root's
// later-in-list siblings') chains (spec §4.5, rev_commit_locate).
func locate(rl *RevList, branch *Ref, target *Commit, window time.Duration) *Commit {
	if c := locateOne(branch, target, window); c != nil {
		return c
	}
	root := branch
	for root.Parent != nil {
		root = root.Parent
	}
	idx := headIndex(rl, root)
	if idx < 0 {
		return nil
	}
	return locateAny(rl.Heads, idx, target, window)
}

// headIndex returns ref's position within rl.Heads, or -1.
func headIndex(rl *RevList, ref *Ref) int {
	for i, h := range rl.Heads {
		if h == ref {
			return i
		}
	}
	return -1
}

// branchOfCommit finds the non-degenerate head whose chain contains a
// commit matching c, stopping each chain's walk at its tail commit
// (spec §4.5, rev_branch_of_commit).
func branchOfCommit(rl *RevList, c *Commit, window time.Duration) *Ref {
	for _, h := range rl.Heads {
		if h.Tail {
			continue
		}
		for cc := h.Commit; cc != nil; cc = cc.Parent {
			if commitsMatch(cc, c, window) {
				return h
			}
			if cc.Tail {
				break
			}
		}
	}
	return nil
}
