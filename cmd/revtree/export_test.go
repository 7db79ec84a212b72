package main

import (
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDryRunSucceeds(t *testing.T) {
	_, err := runCommand(t, "export", "--dry-run", trunkFixture)
	require.NoError(t, err)
}

func TestExportWritesRepository(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	_, err := runCommand(t, "export", "--repo", repoPath, trunkFixture)
	require.NoError(t, err)

	repo, err := gogit.PlainOpen(repoPath)
	require.NoError(t, err)
	ref, err := repo.Reference("refs/heads/trunk", true)
	require.NoError(t, err)
	assert.False(t, ref.Hash().IsZero())
}

func TestExportRequiresRepoUnlessDryRun(t *testing.T) {
	_, err := runCommand(t, "export", trunkFixture)
	assert.Error(t, err)
}
