package revtree

// Diagnostics receives the merge's soft-inconsistency and
// attachment-failure reports (spec §6-7). The core depends only on
// this interface; package zapdiag supplies a zap-backed
// implementation, and NopDiagnostics discards everything.
type Diagnostics interface {
	// BranchPointLater warns that a branch's attachment point in its
	// parent lies later in time than the branch's oldest merged
	// commit (the one that links to it), usually a clock-skew
	// symptom: "Warning: branch point <child> -> <parent>
	// later than branch".
	BranchPointLater(child, parent *Ref)

	// BranchPointMatchedByDate warns that a branch's attachment point
	// was found by date rather than content match: "Warning: branch
	// point <child> -> <parent> matched by date".
	BranchPointMatchedByDate(child, parent *Ref)

	// BranchPointNotFound reports a failed attachment, optionally
	// naming another branch that holds a matching commit: "Error:
	// branch point <child> -> <parent> not found. Possible match on
	// <other>." (the second sentence is omitted when other is nil).
	BranchPointNotFound(child, parent *Ref, other *Ref)

	// BranchNameCollision reports that two per-input branch
	// declarations for the same merged branch disagree about which
	// parent they attach to, and neither is an ancestor of the other.
	BranchNameCollision(first, second *Ref)

	// ReferenceMissingInMerge reports that a resolved parent name does
	// not appear among the merged heads.
	ReferenceMissingInMerge(name string)

	// LostTag reports a tag that never resolved to any commit.
	LostTag(name string)
}

// NopDiagnostics discards every diagnostic. It is the default when no
// Diagnostics is configured.
type NopDiagnostics struct{}

func (NopDiagnostics) BranchPointLater(*Ref, *Ref)          {}
func (NopDiagnostics) BranchPointMatchedByDate(*Ref, *Ref)  {}
func (NopDiagnostics) BranchPointNotFound(*Ref, *Ref, *Ref) {}
func (NopDiagnostics) BranchNameCollision(*Ref, *Ref)       {}
func (NopDiagnostics) ReferenceMissingInMerge(string)       {}
func (NopDiagnostics) LostTag(string)                       {}

// CollectingDiagnostics accumulates every diagnostic as plain text in
// the exact wording spec §6 specifies, for tests and for callers that
// just want the message list rather than structured logging.
type CollectingDiagnostics struct {
	Messages []string
}

func (c *CollectingDiagnostics) BranchPointLater(child, parent *Ref) {
	c.Messages = append(c.Messages, "Warning: branch point "+child.String()+" -> "+parent.String()+" later than branch")
}

func (c *CollectingDiagnostics) BranchPointMatchedByDate(child, parent *Ref) {
	c.Messages = append(c.Messages, "Warning: branch point "+child.String()+" -> "+parent.String()+" matched by date")
}

func (c *CollectingDiagnostics) BranchPointNotFound(child, parent *Ref, other *Ref) {
	msg := "Error: branch point " + child.String() + " -> " + parent.String() + " not found."
	if other != nil {
		msg += " Possible match on " + other.String() + "."
	}
	c.Messages = append(c.Messages, msg)
}

func (c *CollectingDiagnostics) BranchNameCollision(first, second *Ref) {
	c.Messages = append(c.Messages,
		"Branch name collision:",
		"\tfirst branch: "+first.String(),
		"\tsecond branch: "+second.String(),
	)
}

func (c *CollectingDiagnostics) ReferenceMissingInMerge(name string) {
	c.Messages = append(c.Messages, "Reference missing in merge: "+name)
}

func (c *CollectingDiagnostics) LostTag(name string) {
	c.Messages = append(c.Messages, "lost tag "+name)
}
