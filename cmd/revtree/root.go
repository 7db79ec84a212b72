package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anton-dovnar/revtree/internal/fixture"
	"github.com/anton-dovnar/revtree/revtree"
	"github.com/anton-dovnar/revtree/zapdiag"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "revtree",
		Short: "Reconstruct and inspect a merged branch/tag history",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .revtree.yaml)")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().Duration("match-window", 0, "commit match window (default 60m)")

	root.AddCommand(newMergeCommand())
	root.AddCommand(newRenderCommand())
	root.AddCommand(newExportCommand())

	return root
}

func newLogger() (*zap.Logger, error) {
	if configVerbose() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadInputs parses every YAML fixture path into a shared-Interner set
// of per-file RevLists, the unit revtree.Merge expects.
func loadInputs(paths []string) ([]*revtree.RevList, error) {
	in := revtree.NewInterner()
	inputs := make([]*revtree.RevList, 0, len(paths))
	for _, p := range paths {
		data, err := readFile(p)
		if err != nil {
			return nil, err
		}
		rl, err := fixture.Load(data, in)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, rl)
	}
	return inputs, nil
}

func mergeOptions(log *zap.Logger) revtree.Options {
	return revtree.Options{
		MatchWindow: configMatchWindow(),
		Diagnostics: zapdiag.New(log),
	}
}
