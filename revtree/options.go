package revtree

import "time"

// Options tunes the merge's configurable constants. A zero Options
// behaves like the source: a 60 minute commit-matching window and a
// no-op Diagnostics sink.
type Options struct {
	// MatchWindow is the span used by commitsMatch; zero means the
	// source default of 60 minutes.
	MatchWindow time.Duration

	// Diagnostics receives every warning/error the merge emits. Nil
	// means diagnostics are discarded.
	Diagnostics Diagnostics
}

func (o Options) matchWindow() time.Duration {
	if o.MatchWindow <= 0 {
		return matchWindow
	}
	return o.MatchWindow
}

func (o Options) diag() Diagnostics {
	if o.Diagnostics == nil {
		return NopDiagnostics{}
	}
	return o.Diagnostics
}
