package revtree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitsMatchCommitID(t *testing.T) {
	in := NewInterner()
	log := in.Intern("l")
	base := time.Unix(1000, 0)

	a := &Commit{Date: base, HasCommitID: true, CommitID: "cs1", Log: log}
	b := &Commit{Date: base.Add(5 * time.Hour), HasCommitID: true, CommitID: "cs1", Log: in.Intern("different")}
	assert.True(t, commitsMatch(a, b, matchWindow), "commitid same, log different: commitid alone decides it")

	c := &Commit{Date: base, HasCommitID: true, CommitID: "cs2", Log: log}
	assert.False(t, commitsMatch(a, c, matchWindow))
}

func TestCommitsMatchOneSidedCommitID(t *testing.T) {
	in := NewInterner()
	log := in.Intern("l")
	base := time.Unix(1000, 0)

	a := &Commit{Date: base, HasCommitID: true, CommitID: "cs1", Log: log}
	b := &Commit{Date: base, Log: log}
	assert.False(t, commitsMatch(a, b, matchWindow))
}

func TestCommitsMatchByTimeAndLog(t *testing.T) {
	in := NewInterner()
	log := in.Intern("l")
	base := time.Unix(10000, 0)

	a := &Commit{Date: base, Log: log}
	within := &Commit{Date: base.Add(59 * time.Minute), Log: log}
	outside := &Commit{Date: base.Add(61 * time.Minute), Log: log}
	differentLog := &Commit{Date: base, Log: in.Intern("other")}

	assert.True(t, commitsMatch(a, within, matchWindow))
	assert.False(t, commitsMatch(a, outside, matchWindow))
	assert.False(t, commitsMatch(a, differentLog, matchWindow))
}
