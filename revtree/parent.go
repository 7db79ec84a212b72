package revtree

// resolveParent computes dest.Parent and dest.Depth by examining
// every input RevList for a head named dest.Name, following each
// one's own parent declaration back into the merged output (spec
// §4.2, rev_ref_set_parent). It recurses to resolve candidate parents
// first and keeps the one yielding the greatest depth.
//
// resolveParent panics via a returned error, not a runtime panic, when
// an input names a parent absent from the merged heads: that signals
// ref aggregation missed a name, a structural bug in the caller's
// inputs (spec §4.2, §7).
func resolveParent(rl *RevList, dest *Ref, inputs []*RevList) error {
	if dest.Depth != 0 {
		return nil
	}

	var max *Ref
	for _, s := range inputs {
		sh := s.FindHead(dest.Name)
		if sh == nil || sh.Parent == nil {
			continue
		}
		p := rl.FindHead(sh.Parent.Name)
		if p == nil {
			return ErrParentMissingFromOutput
		}
		if err := resolveParent(rl, p, inputs); err != nil {
			return err
		}
		if max == nil || p.Depth > max.Depth {
			max = p
		}
	}
	dest.Parent = max
	if max != nil {
		dest.Depth = max.Depth + 1
	} else {
		dest.Depth = 1
	}
	return nil
}
