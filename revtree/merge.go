package revtree

// Merge synthesizes a single RevList from several per-input RevLists,
// running the full pipeline described in spec §2: ref aggregation and
// degree sort, parent resolution, branch merge, tail marking, tag
// placement, and validation.
//
// inputs are already-parsed per-file RevLists; parsing the on-disk
// history format is left to the caller. Head names, tag names and log
// messages are compared by pointer identity, so every input must take
// its strings from one shared Interner.
//
// Merge returns an error only for structural mismatches (spec §7); a
// soft inconsistency or attachment failure is reported through
// opts.Diagnostics (or discarded, if none is configured) and the
// merge proceeds.
func Merge(inputs []*RevList, opts Options) (*RevList, error) {
	rl := mergeHeadNames(inputs)
	sortByDegree(rl.Heads)

	for _, h := range rl.Heads {
		if err := resolveParent(rl, h, inputs); err != nil {
			return nil, err
		}
	}

	for _, h := range rl.Heads {
		var refs []*Ref
		for _, in := range inputs {
			if lh := in.FindHead(h.Name); lh != nil {
				refs = append(refs, lh)
			}
		}
		if len(refs) > 0 {
			mergeBranch(rl, refs, h, opts)
		}
	}

	setTail(rl)

	mergeTagNames(rl, inputs)
	sortByDegree(rl.Tags)

	for _, t := range rl.Tags {
		var refs []*Ref
		for _, in := range inputs {
			if lt := in.FindTag(t.Name); lt != nil {
				refs = append(refs, lt)
			}
		}
		if len(refs) > 0 {
			tagSearch(rl, refs, t, opts)
		}
		if t.Commit == nil {
			opts.diag().LostTag(t.String())
		} else {
			t.Commit.Tagged = true
		}
	}

	return rl, Validate(rl)
}

// buildCommit allocates a whole-tree commit from the newest of
// commits (commits[0], assumed newest-first) and the first file of
// every entry that has one, concatenated in order (spec §4.4,
// rev_commit_build).
func buildCommit(commits []*Commit) *Commit {
	c := &Commit{
		Date:        commits[0].Date,
		CommitID:    commits[0].CommitID,
		HasCommitID: commits[0].HasCommitID,
		Log:         commits[0].Log,
	}
	for _, cm := range commits {
		if len(cm.Files) > 0 {
			c.Files = append(c.Files, cm.Files[0])
		}
	}
	return c
}

// mergeBranch performs the lockstep date-ordered merge of branches
// (the per-input Refs sharing branch's name) into a single chain of
// whole-tree commits, installed as branch.Commit (spec §4.4, the hot
// path, rev_branch_merge).
func mergeBranch(rl *RevList, branches []*Ref, branch *Ref, opts Options) {
	window := opts.matchWindow()
	diag := opts.diag()

	commits := make([]*Commit, len(branches))
	nlive := 0
	for n, b := range branches {
		commits[n] = b.Commit
		if b.Tail {
			if commits[n] != nil {
				commits[n].tailed = true
			}
		} else {
			nlive++
		}
	}

	var head, prev *Commit

	for nlive > 0 && len(commits) > 0 {
		commits = commitDateSort(commits)
		if len(commits) == 0 {
			break
		}

		c := buildCommit(commits)

		nlive = 0
		for n := len(commits) - 1; n >= 0; n-- {
			switch {
			case commits[n].tailed:
				// leave in place
			case n == 0 || commitsMatch(commits[0], commits[n], window):
				if commits[n].Tail {
					commits[n].Parent.tailed = true
				} else if commits[n].Parent != nil {
					nlive++
				}
				commits[n] = commits[n].Parent
			case commits[n].Parent != nil || len(commits[n].Files) > 0:
				nlive++
			}
		}

		if head == nil {
			head = c
		} else {
			prev.Parent = c
		}
		prev = c
	}

	// Connect to parent branch.
	commits = commitDateSort(commits)
	if len(commits) > 0 && branch.Parent != nil {
		present := 0
		for present < len(commits) && len(commits[present].Files) == 0 {
			present++
		}

		var attach *Commit
		switch {
		case present == len(commits):
			// Pure branch: no residual files anywhere, so no
			// attachment point exists and none is synthesized
			// (spec §4.4's "output chain terminates with no parent
			// link"). The source's literal fallthrough would
			// synthesize a commit here regardless; this
			// reimplementation follows the prose instead.
			attach = nil
		default:
			if c := locateOne(branch.Parent, commits[present], window); c != nil {
				attach = c
				if prev != nil && attach.Date.After(prev.Date) {
					diag.BranchPointLater(branch, branch.Parent)
				}
			} else if c := locateByDate(branch.Parent, commits[present].Date); c != nil {
				attach = c
				diag.BranchPointMatchedByDate(branch, branch.Parent)
			} else {
				lost := branchOfCommit(rl, commits[present], window)
				diag.BranchPointNotFound(branch, branch.Parent, lost)
			}

			if attach != nil {
				if prev != nil {
					prev.Tail = true
				}
			} else {
				attach = buildCommit(commits)
			}
		}

		if prev != nil {
			prev.Parent = attach
		} else {
			head = attach
		}
	}

	for _, c := range commits {
		if c != nil {
			c.tailed = false
		}
	}

	branch.Commit = head
}

// tagSearch locates a tag's position on the merged graph from its
// per-input declarations (spec §4.5, rev_tag_search).
func tagSearch(rl *RevList, tags []*Ref, tag *Ref, opts Options) {
	window := opts.matchWindow()

	commits := make([]*Commit, len(tags))
	for n, t := range tags {
		commits[n] = t.Commit
	}
	commits = commitDateSort(commits)
	if len(commits) == 0 {
		return
	}

	tag.Parent = branchOfCommit(rl, commits[0], window)
	if tag.Parent != nil {
		tag.Commit = locate(rl, tag.Parent, commits[0], window)
	}
	if tag.Commit == nil {
		tag.Commit = buildCommit(commits)
	}
}
