// Package fixture builds revtree.RevList values from YAML documents,
// standing in for the per-file CVS-parsing step that spec.md keeps out
// of the merge core's scope (see revtree.Merge's doc comment).
package fixture

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/anton-dovnar/revtree/revtree"
)

// Document is the YAML shape of one input RevList: a flat pool of
// commits linked by id, plus the heads and tags that point into it.
type Document struct {
	Commits []CommitSpec `yaml:"commits"`
	Heads   []RefSpec    `yaml:"heads"`
	Tags    []RefSpec    `yaml:"tags"`
}

// CommitSpec is one commit, named by ID so heads, tags, and other
// commits can reference it as a parent.
type CommitSpec struct {
	ID       string     `yaml:"id"`
	Parent   string     `yaml:"parent"`
	Date     time.Time  `yaml:"date"`
	Log      string     `yaml:"log"`
	CommitID string     `yaml:"commit_id"`
	Tail     bool       `yaml:"tail"`
	Files    []FileSpec `yaml:"files"`
}

// FileSpec is one FileRev attached to a commit.
type FileSpec struct {
	Name   string    `yaml:"name"`
	Number []int     `yaml:"number"`
	Date   time.Time `yaml:"date"`
}

// RefSpec is one head or tag declaration.
type RefSpec struct {
	Name   string `yaml:"name"`
	Degree int    `yaml:"degree"`
	Commit string `yaml:"commit"`
	// Parent names the branch this head attaches to. Heads only.
	Parent string `yaml:"parent"`
}

// Load parses a YAML document into a revtree.RevList. Every interned
// name (branch, tag, file) is looked up through in, so callers that
// build several inputs destined for the same revtree.Merge call must
// share one Interner across every Load invocation.
func Load(data []byte, in *revtree.Interner) (*revtree.RevList, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse: %w", err)
	}
	return build(&doc, in)
}

func build(doc *Document, in *revtree.Interner) (*revtree.RevList, error) {
	commits := make(map[string]*revtree.Commit, len(doc.Commits))
	for _, cs := range doc.Commits {
		if cs.ID == "" {
			return nil, fmt.Errorf("fixture: commit with no id")
		}
		if _, dup := commits[cs.ID]; dup {
			return nil, fmt.Errorf("fixture: duplicate commit id %q", cs.ID)
		}
		files := make([]*revtree.FileRev, len(cs.Files))
		for i, fs := range cs.Files {
			files[i] = revtree.NewFileRev(in.Intern(fs.Name), fs.Number, fs.Date)
		}
		commits[cs.ID] = &revtree.Commit{
			Date:        cs.Date,
			CommitID:    cs.CommitID,
			HasCommitID: cs.CommitID != "",
			Log:         in.Intern(cs.Log),
			Files:       files,
			Tail:        cs.Tail,
		}
	}
	for _, cs := range doc.Commits {
		if cs.Parent == "" {
			continue
		}
		parent, ok := commits[cs.Parent]
		if !ok {
			return nil, fmt.Errorf("fixture: commit %q references unknown parent %q", cs.ID, cs.Parent)
		}
		commits[cs.ID].Parent = parent
	}

	rl := &revtree.RevList{}
	for _, hs := range doc.Heads {
		commit, err := lookupCommit(commits, hs.Commit)
		if err != nil {
			return nil, err
		}
		name := in.Intern(hs.Name)
		head := rl.FindHead(name)
		if head == nil {
			head = rl.AddHead(commit, name, hs.Degree)
		} else {
			// A later document redeclaring an existing head (as
			// LoadWithOverrides produces when a scenario overrides a
			// base fixture's branch) replaces its target in place
			// rather than appending a second Ref with the same name.
			head.Commit = commit
			head.Degree = hs.Degree
		}
		if hs.Parent != "" {
			head.Parent = &revtree.Ref{Name: in.Intern(hs.Parent)}
		}
	}
	for _, ts := range doc.Tags {
		commit, err := lookupCommit(commits, ts.Commit)
		if err != nil {
			return nil, err
		}
		name := in.Intern(ts.Name)
		tag := rl.FindTag(name)
		if tag == nil {
			rl.AddTag(commit, name, ts.Degree)
		} else {
			tag.Commit = commit
			tag.Degree = ts.Degree
		}
	}
	return rl, nil
}

func lookupCommit(commits map[string]*revtree.Commit, id string) (*revtree.Commit, error) {
	if id == "" {
		return nil, nil
	}
	c, ok := commits[id]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown commit id %q", id)
	}
	return c, nil
}
