package revtree

// Validate walks every non-degenerate head's chain up to its first
// tail commit, asserting structural invariants (spec §4.7,
// rev_list_validate). Date-monotonicity is intentionally not checked
// here: real inputs routinely carry clock skew at branch points, so
// the source keeps that assertion disabled and this port follows
// suit (spec §4.7).
func Validate(rl *RevList) error {
	for _, h := range rl.Heads {
		if h.Tail {
			continue
		}
		for c := h.Commit; c != nil && c.Parent != nil; c = c.Parent {
			if err := checkDistinctFiles(c); err != nil {
				return err
			}
			if c.Tail {
				break
			}
		}
	}
	return nil
}

// checkDistinctFiles enforces that a commit's files are pairwise
// distinct by identity (spec §3, §8 invariant 6).
func checkDistinctFiles(c *Commit) error {
	seen := make(map[*FileRev]bool, len(c.Files))
	for _, f := range c.Files {
		if seen[f] {
			return ErrDuplicateFileInCommit
		}
		seen[f] = true
	}
	return nil
}
