package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anton-dovnar/revtree/revtree"
)

func newMergeCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "merge <fixture.yaml> [fixture.yaml...]",
		Short: "Merge per-file revision graphs into a single branch/tag tree",
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

			if out != "" {
				return writeMergeSummary(out, rl)
			}
			return printMergeSummary(cmd, rl)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the merged tree as JSON to this path instead of stdout")
	return cmd
}

type mergeSummary struct {
	Heads []refSummary `json:"heads"`
	Tags  []refSummary `json:"tags"`
}

type refSummary struct {
	Name   string `json:"name"`
	Degree int    `json:"degree"`
	Tail   bool   `json:"tail"`
}

func summarize(rl *revtree.RevList) mergeSummary {
	s := mergeSummary{}
	for _, h := range rl.Heads {
		s.Heads = append(s.Heads, refSummary{Name: h.String(), Degree: h.Degree, Tail: h.Tail})
	}
	for _, t := range rl.Tags {
		s.Tags = append(s.Tags, refSummary{Name: t.String(), Degree: t.Degree})
	}
	return s
}

func printMergeSummary(cmd *cobra.Command, rl *revtree.RevList) error {
	for _, h := range rl.Heads {
		fmt.Fprintf(cmd.OutOrStdout(), "branch %s (degree %d)\n", h.String(), h.Degree)
	}
	for _, t := range rl.Tags {
		fmt.Fprintf(cmd.OutOrStdout(), "tag %s\n", t.String())
	}
	return nil
}

func writeMergeSummary(path string, rl *revtree.RevList) error {
	data, err := json.MarshalIndent(summarize(rl), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
