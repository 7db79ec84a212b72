package revtree

// FreeHead mirrors the source's rev_head_free/rev_commit_free: it
// walks head's chain, decrementing each commit's Seen and reporting
// once a commit becomes unreachable from any other head (Seen==0).
// Go's garbage collector reclaims the memory regardless; this exists
// for API fidelity with spec §6 and so callers can assert the seen
// invariant (spec §8 invariant 4) without re-walking the chain
// themselves.
func FreeHead(head *Ref) []*Commit {
	var freed []*Commit
	for c := head.Commit; c != nil; {
		next := c.Parent
		c.Seen--
		if c.Seen == 0 {
			freed = append(freed, c)
		}
		c = next
	}
	return freed
}

// FreeList mirrors rev_list_free: frees every head's chain in turn.
func FreeList(rl *RevList) []*Commit {
	var freed []*Commit
	for _, h := range rl.Heads {
		freed = append(freed, FreeHead(h)...)
	}
	return freed
}
