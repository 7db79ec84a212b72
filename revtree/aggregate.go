package revtree

// mergeHeadNames unions head names across every input RevList into a
// fresh output RevList, keeping the larger observed degree per name
// (spec §4.1). Commits are left nil; mergeBranch fills them in later.
func mergeHeadNames(inputs []*RevList) *RevList {
	rl := &RevList{}
	for _, in := range inputs {
		for _, lh := range in.Heads {
			if h := rl.FindHead(lh.Name); h == nil {
				rl.AddHead(nil, lh.Name, lh.Degree)
			} else if lh.Degree > h.Degree {
				h.Degree = lh.Degree
			}
		}
	}
	return rl
}

// mergeTagNames unions tag names across every input RevList into rl,
// keeping the larger observed degree per name. spec §9 resolves the
// source's tag-degree typo (`==` instead of `>`), adopting the
// max-degree rule used for heads.
func mergeTagNames(rl *RevList, inputs []*RevList) {
	for _, in := range inputs {
		for _, lt := range in.Tags {
			if t := rl.FindTag(lt.Name); t == nil {
				rl.AddTag(nil, lt.Name, lt.Degree)
			} else if lt.Degree > t.Degree {
				t.Degree = lt.Degree
			}
		}
	}
}
