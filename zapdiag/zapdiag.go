// Package zapdiag implements revtree.Diagnostics on top of a
// *zap.Logger, so a merge's warnings and errors flow into whatever
// sink the host program already logs to instead of stderr.
package zapdiag

import (
	"go.uber.org/zap"

	"github.com/anton-dovnar/revtree/revtree"
)

// Diagnostics logs every revtree.Diagnostics callback through a
// *zap.Logger at Warn (soft inconsistencies) or Error (attachment
// failures, name collisions) level.
type Diagnostics struct {
	log *zap.Logger
}

// New wraps log. A nil log is replaced with zap.NewNop(), matching
// the package's use as a drop-in default for callers that don't care
// to wire a real logger yet.
func New(log *zap.Logger) *Diagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return &Diagnostics{log: log}
}

func (d *Diagnostics) BranchPointLater(child, parent *revtree.Ref) {
	d.log.Warn("branch point later than branch",
		zap.String("child", child.String()),
		zap.String("parent", parent.String()),
	)
}

func (d *Diagnostics) BranchPointMatchedByDate(child, parent *revtree.Ref) {
	d.log.Warn("branch point matched by date",
		zap.String("child", child.String()),
		zap.String("parent", parent.String()),
	)
}

func (d *Diagnostics) BranchPointNotFound(child, parent *revtree.Ref, other *revtree.Ref) {
	fields := []zap.Field{
		zap.String("child", child.String()),
		zap.String("parent", parent.String()),
	}
	if other != nil {
		fields = append(fields, zap.String("possible_match", other.String()))
	}
	d.log.Error("branch point not found", fields...)
}

func (d *Diagnostics) BranchNameCollision(first, second *revtree.Ref) {
	d.log.Error("branch name collision",
		zap.String("first", first.String()),
		zap.String("second", second.String()),
	)
}

func (d *Diagnostics) ReferenceMissingInMerge(name string) {
	d.log.Error("reference missing in merge", zap.String("name", name))
}

func (d *Diagnostics) LostTag(name string) {
	d.log.Warn("lost tag", zap.String("name", name))
}
