package revtree

import "time"

// matchWindow is the span within which two commits recorded by the
// same user with the same log message are assumed to be the same
// logical commit (spec §4.3). Configurable via Options for callers
// whose source system used a different clock resolution; the source
// hard-codes 60 minutes.
const matchWindow = 60 * time.Minute

// commitTimeClose reports whether a and b fall within window of each
// other, matching commit_time_close.
func commitTimeClose(a, b time.Time, window time.Duration) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff < window
}

// commitsMatch is the algorithmic heart of the merge: it decides
// whether two per-file commits belong to the same logical whole-tree
// commit (spec §4.3).
//
//  1. If both carry a commitid, equality of commitid decides it.
//  2. If exactly one carries a commitid, they never match.
//  3. Otherwise they match when their dates are within window and
//     their log handles are identical (pointer equality).
func commitsMatch(a, b *Commit, window time.Duration) bool {
	if a.HasCommitID && b.HasCommitID {
		return a.CommitID == b.CommitID
	}
	if a.HasCommitID || b.HasCommitID {
		return false
	}
	if !commitTimeClose(a.Date, b.Date, window) {
		return false
	}
	return a.Log == b.Log
}
