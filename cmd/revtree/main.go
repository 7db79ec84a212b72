// Command revtree merges per-file revision graphs, loaded from YAML
// fixtures that stand in for parsed CVS-style ,v histories, into a
// single branch/tag tree, renders it as
// an SVG/HTML railway diagram, and optionally replays it into a real
// git repository.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
