package fixture

import (
	"fmt"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/anton-dovnar/revtree/revtree"
)

// LoadWithOverrides parses base, then deep-merges each of overrides
// over it in order (a later override's set fields win, slices are
// appended rather than replaced), before building the RevList. This
// lets a table of scenario tests share one base fixture and vary only
// the handful of fields that make each scenario distinct, instead of
// repeating the whole document per case.
func LoadWithOverrides(base []byte, overrides [][]byte, in *revtree.Interner) (*revtree.RevList, error) {
	var doc Document
	if err := yaml.Unmarshal(base, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse base: %w", err)
	}

	for i, raw := range overrides {
		var patch Document
		if err := yaml.Unmarshal(raw, &patch); err != nil {
			return nil, fmt.Errorf("fixture: parse override %d: %w", i, err)
		}
		if err := mergo.Merge(&doc, patch, mergo.WithOverride(), mergo.WithAppendSlice()); err != nil {
			return nil, fmt.Errorf("fixture: merge override %d: %w", i, err)
		}
	}

	return build(&doc, in)
}
