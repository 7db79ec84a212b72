package zapdiag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/anton-dovnar/revtree/revtree"
)

func TestLostTagLogsWarn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := New(zap.New(core))

	d.LostTag("v1")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "lost tag", entry.Message)
}

func TestBranchPointNotFoundLogsError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	d := New(zap.New(core))

	in := revtree.NewInterner()
	child := &revtree.Ref{Name: in.Intern("br")}
	parent := &revtree.Ref{Name: in.Intern("trunk")}
	other := &revtree.Ref{Name: in.Intern("stable")}

	d.BranchPointNotFound(child, parent, other)
	d.BranchPointNotFound(child, parent, nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, "stable", logs.All()[0].ContextMap()["possible_match"])
	_, hasMatch := logs.All()[1].ContextMap()["possible_match"]
	assert.False(t, hasMatch, "no possible_match field when other is nil")
}

func TestNewNilLoggerIsNop(t *testing.T) {
	d := New(nil)
	assert.NotPanics(t, func() {
		d.LostTag("x")
	})
}
