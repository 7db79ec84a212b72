// Package export replays a merged revtree.RevList into a real go-git
// repository, so the reconstructed history can be inspected with
// ordinary git tooling instead of only through revtree's own types.
package export

import (
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/anton-dovnar/revtree/revtree"
)

// Exporter replays one commit per revtree.Commit, one branch per head,
// and one tag per tag ref, using the Worktree.Commit/CommitOptions
// flow go-git idioms favor for building up history (see
// kmrtdsii-playwithantigravity's commands/commit.go) rather than the
// lower-level Storer.SetEncodedObject object-copy flow that repo uses
// for moving objects between existing repositories: a merge core
// commit has no real file content to copy, only FileRev metadata to
// render, so staging synthesized content and committing is the
// natural fit here.
type Exporter struct {
	repo      *gogit.Repository
	wt        *gogit.Worktree
	signature object.Signature
	hashes    map[*revtree.Commit]plumbing.Hash
}

// New wraps repo. signature supplies the author/committer identity;
// only its Name and Email are used, since every commit's own When
// comes from its revtree.Commit.Date.
func New(repo *gogit.Repository, signature object.Signature) (*Exporter, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("export: worktree: %w", err)
	}
	return &Exporter{repo: repo, wt: wt, signature: signature, hashes: make(map[*revtree.Commit]plumbing.Hash)}, nil
}

// NewInMemory builds an Exporter backed entirely by memory.NewStorage
// and memfs.New, for a preview/dry-run export (e.g. the CLI's
// --dry-run export flag) that never touches the caller's filesystem.
// Its VerifyExportReflog has nothing to check: go-git's in-memory
// storer keeps no logs/<ref> files, only the current ref value.
func NewInMemory(signature object.Signature) (*Exporter, *gogit.Repository, error) {
	repo, err := gogit.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		return nil, nil, fmt.Errorf("export: init in-memory repo: %w", err)
	}
	ex, err := New(repo, signature)
	if err != nil {
		return nil, nil, err
	}
	return ex, repo, nil
}

// Export replays every head's chain (lowest degree, i.e. trunk-like
// branches, first) then places every tag, finally pointing a real
// branch/tag ref at each head/tag's commit.
func (e *Exporter) Export(rl *revtree.RevList) error {
	heads := append([]*revtree.Ref(nil), rl.Heads...)
	sort.SliceStable(heads, func(i, j int) bool { return heads[i].Degree < heads[j].Degree })

	for _, h := range heads {
		hash, err := e.replay(h.Commit)
		if err != nil {
			return fmt.Errorf("export head %s: %w", h.String(), err)
		}
		if err := e.setRef(plumbing.NewBranchReferenceName(h.String()), hash); err != nil {
			return fmt.Errorf("export head %s: %w", h.String(), err)
		}
	}
	for _, t := range rl.Tags {
		if t.Commit == nil {
			continue
		}
		hash, err := e.replay(t.Commit)
		if err != nil {
			return fmt.Errorf("export tag %s: %w", t.String(), err)
		}
		if err := e.setRef(plumbing.NewTagReferenceName(t.String()), hash); err != nil {
			return fmt.Errorf("export tag %s: %w", t.String(), err)
		}
	}
	return nil
}

// Hash returns the git commit hash a revtree.Commit was replayed to,
// or the zero hash if it hasn't been reached by Export yet.
func (e *Exporter) Hash(c *revtree.Commit) plumbing.Hash {
	return e.hashes[c]
}

func (e *Exporter) replay(c *revtree.Commit) (plumbing.Hash, error) {
	if c == nil {
		return plumbing.ZeroHash, nil
	}
	if h, ok := e.hashes[c]; ok {
		return h, nil
	}

	var pending []*revtree.Commit
	cur := c
	for cur != nil {
		if h, ok := e.hashes[cur]; ok {
			if err := e.checkout(h); err != nil {
				return plumbing.ZeroHash, err
			}
			break
		}
		pending = append(pending, cur)
		cur = cur.Parent
	}

	for i := len(pending) - 1; i >= 0; i-- {
		commit := pending[i]
		if err := e.writeFiles(commit); err != nil {
			return plumbing.ZeroHash, err
		}
		sig := e.signature
		sig.When = commit.Date
		hash, err := e.wt.Commit(commitMessage(commit), &gogit.CommitOptions{
			Author:            &sig,
			Committer:         &sig,
			All:               true,
			AllowEmptyCommits: true,
		})
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("commit %q: %w", commitMessage(commit), err)
		}
		e.hashes[commit] = hash
	}
	return e.hashes[c], nil
}

func (e *Exporter) checkout(hash plumbing.Hash) error {
	return e.wt.Checkout(&gogit.CheckoutOptions{Hash: hash})
}

// writeFiles materializes every FileRev on commit into the worktree.
// Content is synthesized from the file's interned name and revision
// number ("name@x.y.z\n"): the merge core never carries real file
// bytes (spec.md's cryptographic-identity Non-goal), so export gives
// each revision a deterministic, distinct body instead of inventing
// meaningless content.
func (e *Exporter) writeFiles(commit *revtree.Commit) error {
	for _, f := range commit.Files {
		if f.Name == nil {
			continue
		}
		name := *f.Name
		file, err := e.wt.Filesystem.Create(name)
		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		_, werr := file.Write([]byte(f.String() + "\n"))
		cerr := file.Close()
		if werr != nil {
			return fmt.Errorf("write %s: %w", name, werr)
		}
		if cerr != nil {
			return fmt.Errorf("write %s: %w", name, cerr)
		}
		if _, err := e.wt.Add(name); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
	}
	return nil
}

func (e *Exporter) setRef(name plumbing.ReferenceName, hash plumbing.Hash) error {
	return e.repo.Storer.SetReference(plumbing.NewHashReference(name, hash))
}

func commitMessage(c *revtree.Commit) string {
	if c.Log != nil && *c.Log != "" {
		return *c.Log
	}
	return "(no log message)"
}
