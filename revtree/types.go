package revtree

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

var fileRevSeq uint64

// FileRev is one revision of one file: an interned name, an ordered
// version number, and a timestamp. Two FileRevs never compare equal
// by identity even when their fields match; the merge relies on that.
type FileRev struct {
	Name   *string
	Number []int
	Date   time.Time

	// seq is a creation-order tie-break standing in for the source's
	// comparison of rev_file object addresses: Go values move under
	// the garbage collector, so address order isn't stable, but the
	// source only needs *some* total order to make sorts deterministic.
	seq uint64
}

// NewFileRev constructs a FileRev from an already-interned name.
// It is the external constructor upstream parsing collaborators use
// (spec §6's file_rev).
func NewFileRev(name *string, number []int, date time.Time) *FileRev {
	return &FileRev{
		Name:   name,
		Number: append([]int(nil), number...),
		Date:   date,
		seq:    atomic.AddUint64(&fileRevSeq, 1),
	}
}

// String renders "name@x.y.z", used by diagnostic formatters.
func (f *FileRev) String() string {
	if f == nil {
		return "<nil>"
	}
	parts := make([]string, len(f.Number))
	for i, n := range f.Number {
		parts[i] = fmt.Sprintf("%d", n)
	}
	name := "<unnamed>"
	if f.Name != nil {
		name = *f.Name
	}
	return name + "@" + strings.Join(parts, ".")
}

// Commit is one node in a branch chain, either a whole-tree commit
// produced by the merge or, pre-merge, a single per-file commit as
// supplied by an input RevList.
type Commit struct {
	Date     time.Time
	CommitID string
	HasCommitID bool
	Log      *string
	Files    []*FileRev
	Parent   *Commit

	// Tail marks this commit as a branch's attachment point into its
	// parent branch: Parent lies on a different branch's chain.
	Tail bool

	// tailed is transient merge-time scratch: this per-input chain is
	// paused at a branch-point boundary and should not advance.
	tailed bool

	// Seen counts how many heads reach this commit, populated by
	// setTail.
	Seen int

	// Tagged marks that a head or tag points directly at this commit.
	Tagged bool
}

// NFiles mirrors the source's nfiles field.
func (c *Commit) NFiles() int {
	if c == nil {
		return 0
	}
	return len(c.Files)
}

// HasFile reports whether f is one of c's files, by identity.
func (c *Commit) HasFile(f *FileRev) bool {
	for _, cf := range c.Files {
		if cf == f {
			return true
		}
	}
	return false
}

// FindFile returns the file named name on c, comparing interned
// pointers by identity.
func (c *Commit) FindFile(name *string) *FileRev {
	for _, cf := range c.Files {
		if cf.Name == name {
			return cf
		}
	}
	return nil
}

// IsAncestor reports whether old lies on young's parent chain
// (old == young counts as true).
func IsAncestor(old, young *Commit) bool {
	for young != nil {
		if young == old {
			return true
		}
		young = young.Parent
	}
	return false
}

// Ref is a named entry point into the graph: a branch (Head=true) or
// a tag (Head=false).
type Ref struct {
	Name   *string
	Commit *Commit
	Degree int
	Head   bool

	// Parent is the branch this branch attaches to, or nil (trunk).
	// Only meaningful when Head is true.
	Parent *Ref

	// Depth is the longest path through the parent chain, root = 1.
	Depth int

	// Tail marks a degenerate branch whose head commit is already
	// owned by another branch (no residual files to attach).
	Tail bool
}

// String renders the ref's name, the diagnostic formatter used in
// place of the source's dump_ref_name.
func (r *Ref) String() string {
	if r == nil || r.Name == nil {
		return "<nil>"
	}
	return *r.Name
}

// RevList is an ordered list of branch Refs (Heads) and tag Refs
// (Tags). Head names are unique within a RevList, as are tag names.
type RevList struct {
	Heads []*Ref
	Tags  []*Ref
}

// FindHead returns the head named name, comparing interned pointers
// by identity.
func (rl *RevList) FindHead(name *string) *Ref {
	for _, h := range rl.Heads {
		if h.Name == name {
			return h
		}
	}
	return nil
}

// FindTag returns the tag named name, comparing interned pointers by
// identity.
func (rl *RevList) FindTag(name *string) *Ref {
	for _, t := range rl.Tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// AddHead appends a new branch ref, preserving insertion order.
func (rl *RevList) AddHead(commit *Commit, name *string, degree int) *Ref {
	r := &Ref{Commit: commit, Name: name, Degree: degree, Head: true}
	rl.Heads = append(rl.Heads, r)
	return r
}

// AddTag appends a new tag ref, preserving insertion order.
func (rl *RevList) AddTag(commit *Commit, name *string, degree int) *Ref {
	r := &Ref{Commit: commit, Name: name, Degree: degree, Head: false}
	rl.Tags = append(rl.Tags, r)
	return r
}
