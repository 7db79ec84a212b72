package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// ResolveGitDir resolves the .git directory for a repository rooted
// at startPath, supporting both a plain ".git" directory and a
// worktree/submodule ".git" file containing "gitdir: <path>".
// Adapted from the teacher's structs.ResolveGitDir.
func ResolveGitDir(startPath string) (string, error) {
	if startPath == "" {
		return "", errors.New("empty path")
	}
	p := filepath.Clean(startPath)
	for {
		dotgit := filepath.Join(p, ".git")
		fi, err := os.Stat(dotgit)
		if err == nil {
			if fi.IsDir() {
				return dotgit, nil
			}
			b, rerr := os.ReadFile(dotgit)
			if rerr != nil {
				return "", fmt.Errorf("read %s: %w", dotgit, rerr)
			}
			s := strings.TrimSpace(string(b))
			if strings.HasPrefix(s, "gitdir:") {
				gd := strings.TrimSpace(strings.TrimPrefix(s, "gitdir:"))
				if gd == "" {
					return "", fmt.Errorf("invalid gitdir in %s", dotgit)
				}
				if !filepath.IsAbs(gd) {
					gd = filepath.Join(p, gd)
				}
				return filepath.Clean(gd), nil
			}
			return "", fmt.Errorf("unrecognized .git file format: %s", dotgit)
		}
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	return "", fmt.Errorf("could not find .git starting at %s", startPath)
}

// ReadReflogNewHashes reads a ref's reflog and returns the "new hash"
// column of every entry, in file (chronological) order. A ref with no
// reflog file returns (nil, nil). Adapted from the teacher's
// structs.ReadReflogNewHashes, unchanged in purpose: there it labels
// commits read back from an arbitrary existing repository, here it
// verifies one this package just wrote (see VerifyExportReflog).
func ReadReflogNewHashes(gitDir, refName string) ([]plumbing.Hash, error) {
	if gitDir == "" || refName == "" {
		return nil, errors.New("empty gitDir or refName")
	}
	path := filepath.Join(gitDir, "logs", filepath.FromSlash(refName))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open reflog %s: %w", path, err)
	}
	defer f.Close()

	var out []plumbing.Hash
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		newHex := fields[1]
		if len(newHex) != 40 {
			continue
		}
		h := plumbing.NewHash(newHex)
		if h.IsZero() {
			continue
		}
		out = append(out, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan reflog %s: %w", path, err)
	}
	return out, nil
}

// VerifyExportReflog checks that repoPath's on-disk reflog for each
// branch Export wrote ends at the hash Export actually recorded for
// that head, catching a worktree checkout that silently landed
// somewhere other than the intended tip.
func VerifyExportReflog(repoPath string, heads map[string]plumbing.Hash) error {
	gitDir, err := ResolveGitDir(repoPath)
	if err != nil {
		return fmt.Errorf("verify reflog: %w", err)
	}
	for name, want := range heads {
		refName := "refs/heads/" + name
		hashes, err := ReadReflogNewHashes(gitDir, refName)
		if err != nil {
			return fmt.Errorf("verify reflog %s: %w", refName, err)
		}
		if len(hashes) == 0 {
			return fmt.Errorf("verify reflog %s: no reflog entries", refName)
		}
		got := hashes[len(hashes)-1]
		if got != want {
			return fmt.Errorf("verify reflog %s: last entry %s, want %s", refName, got, want)
		}
	}
	return nil
}
