package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anton-dovnar/revtree/render"
	"github.com/anton-dovnar/revtree/revtree"
)

func newRenderCommand() *cobra.Command {
	var (
		out    string
		title  string
		ghSlug string
	)

	cmd := &cobra.Command{
		Use:   "render <fixture.yaml> [fixture.yaml...]",
		Short: "Merge and draw an SVG/HTML railway diagram",
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

			layout := render.Arrange(rl)
			svgContent := render.GenerateSVGString(rl, layout)

			if out == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), svgContent)
				return err
			}

			data := render.GenerateCommitData(layout, ghSlug)
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			return render.WriteHTML(f, svgContent, data, title)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write a self-contained HTML page here instead of raw SVG to stdout")
	cmd.Flags().StringVar(&title, "title", "revtree", "HTML page title")
	cmd.Flags().StringVar(&ghSlug, "github-slug", "", "owner/repo used to linkify issue references in commit messages")
	return cmd
}
