// Package revtree reconstructs a branch-and-tag revision graph from
// multiple per-file revision histories into a single unified history
// that groups co-committed file revisions into whole-tree commits,
// links branches to their parents, and places tags.
//
// The package consumes already-parsed per-file RevLists (the on-disk
// format parser is an external collaborator) and produces one merged
// RevList via Merge.
package revtree
