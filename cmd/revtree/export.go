package main

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"

	"github.com/anton-dovnar/revtree/internal/export"
	"github.com/anton-dovnar/revtree/revtree"
)

func newExportCommand() *cobra.Command {
	var (
		repoPath     string
		dryRun       bool
		authorName   string
		authorEmail  string
		verifyReflog bool
	)

	cmd := &cobra.Command{
		Use:   "export <fixture.yaml> [fixture.yaml...]",
		Short: "Merge and replay the result into a real git repository",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			inputs, err := loadInputs(args)
			if err != nil {
				return err
			}

			rl, err := revtree.Merge(inputs, mergeOptions(log))
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}

			sig := object.Signature{Name: authorName, Email: authorEmail}

			if dryRun {
				ex, _, err := export.NewInMemory(sig)
				if err != nil {
					return err
				}
				return ex.Export(rl)
			}

			if repoPath == "" {
				return fmt.Errorf("export: --repo is required unless --dry-run is set")
			}
			repo, err := gogit.PlainInit(repoPath, false)
			if err != nil {
				return fmt.Errorf("init %s: %w", repoPath, err)
			}
			ex, err := export.New(repo, sig)
			if err != nil {
				return err
			}
			if err := ex.Export(rl); err != nil {
				return err
			}

			if !verifyReflog {
				return nil
			}
			heads := make(map[string]plumbing.Hash)
			for _, h := range rl.Heads {
				heads[h.String()] = ex.Hash(h.Commit)
			}
			return export.VerifyExportReflog(repoPath, heads)
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", "", "directory to initialize and write the replayed repository into")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "replay into an in-memory repository instead of disk")
	cmd.Flags().StringVar(&authorName, "author-name", "revtree", "commit author/committer name")
	cmd.Flags().StringVar(&authorEmail, "author-email", "revtree@example.com", "commit author/committer email")
	cmd.Flags().BoolVar(&verifyReflog, "verify-reflog", false, "after export, confirm each branch's on-disk reflog ends at its recorded tip")
	return cmd
}
