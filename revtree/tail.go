package revtree

// setTail walks every head's chain, stamping Seen reference counts
// and Commit.Tail bits marking where chains merge into shared history
// (spec §4.6, rev_list_set_tail). Heads are processed in list order,
// so a head whose own head commit was already reached by an earlier
// head is degenerate: its Ref.Tail is set and it contributes no new
// Commit.Tail marks of its own.
func setTail(rl *RevList) {
	for _, head := range rl.Heads {
		tail := true
		if head.Commit != nil && head.Commit.Seen > 0 {
			head.Tail = true
			tail = false
		}
		for c := head.Commit; c != nil; c = c.Parent {
			if tail && c.Parent != nil && c.Seen < c.Parent.Seen {
				c.Tail = true
				tail = false
			}
			c.Seen++
		}
		if head.Commit != nil {
			head.Commit.Tagged = true
		}
	}
	for _, tag := range rl.Tags {
		if tag.Commit != nil {
			tag.Commit.Tagged = true
		}
	}
}
