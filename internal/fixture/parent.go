package fixture

import "github.com/anton-dovnar/revtree/revtree"

// ResolveBranchParent computes the consensus parent for a branch that
// several per-file inputs declare inconsistently (spec.md §9's
// rev_ref_parent / rev_head_find_parent, dead in rev_list_merge's own
// call graph; the source reaches it from the construction step that
// builds each per-file RevList, the step this package stands in for).
// Load and LoadWithOverrides do not call it: a caller holding several
// declarations of one branch invokes it directly.
//
// refs holds one Ref per input that declares this branch name. When
// two declarations disagree about their parent branch and neither
// name is an ancestor of the other, it reports a branch name collision
// and keeps the first parent seen. The winning parent name is then
// looked up among merged's heads; a name absent there is reported and
// the branch is left parentless.
func ResolveBranchParent(refs []*revtree.Ref, merged *revtree.RevList, diag revtree.Diagnostics) *revtree.Ref {
	if diag == nil {
		diag = revtree.NopDiagnostics{}
	}

	var parent *revtree.Ref
	var branch *revtree.Ref
	for _, r := range refs {
		if r.Parent == nil {
			continue
		}
		if parent == nil {
			parent = r.Parent
			branch = r
			continue
		}
		if parent.Name == r.Parent.Name {
			continue
		}
		if branchNameIsAncestor(r.Parent, parent) {
			// parent already covers r's declared parent; keep it.
		} else if branchNameIsAncestor(parent, r.Parent) {
			parent = r.Parent
			branch = r
		} else {
			diag.BranchNameCollision(branch, r)
		}
	}
	if parent == nil {
		return nil
	}
	if h := merged.FindHead(parent.Name); h != nil {
		return h
	}
	diag.ReferenceMissingInMerge(*parent.Name)
	return nil
}

// branchNameIsAncestor reports whether old's name appears somewhere on
// young's parent chain, old included. Grounded on
// rev_branch_name_is_ancestor.
func branchNameIsAncestor(old, young *revtree.Ref) bool {
	for young != nil {
		if young.Name == old.Name {
			return true
		}
		young = young.Parent
	}
	return false
}
