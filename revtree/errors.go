package revtree

import "errors"

// Structural mismatches abort the merge: the input violates an
// invariant ref aggregation and validation depend on (spec §7).
var (
	// ErrParentMissingFromOutput means an input named a parent branch
	// that never made it into the aggregated output heads — ref
	// aggregation missed a name, which is a bug in the caller's
	// inputs, not a recoverable condition.
	ErrParentMissingFromOutput = errors.New("revtree: parent referenced by input is missing from merged heads")

	// ErrDuplicateFileInCommit means a single merged commit ended up
	// referencing the same FileRev twice, violating the file
	// uniqueness invariant (spec §3).
	ErrDuplicateFileInCommit = errors.New("revtree: duplicate file within a single commit")
)
