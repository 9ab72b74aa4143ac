package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilestone_Progress(t *testing.T) {
	tests := []struct {
		name   string
		closed int
		open   int
		want   int
	}{
		{name: "empty", closed: 0, open: 0, want: 0},
		{name: "three of four", closed: 3, open: 1, want: 75},
		{name: "one of three rounds down", closed: 1, open: 2, want: 33},
		{name: "two of three rounds up", closed: 2, open: 1, want: 67},
		{name: "all closed", closed: 5, open: 0, want: 100},
		{name: "none closed", closed: 0, open: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Milestone{ClosedIssues: tt.closed, OpenIssues: tt.open}
			assert.Equal(t, tt.want, m.Progress())
		})
	}
}

func TestPullRequest_Status(t *testing.T) {
	tests := []struct {
		name   string
		state  string
		merged bool
		want   string
	}{
		{name: "open", state: StateOpen, merged: false, want: StateOpen},
		{name: "open ignores merge flag", state: StateOpen, merged: true, want: StateOpen},
		{name: "merged", state: StateClosed, merged: true, want: StateMerged},
		{name: "closed unmerged", state: StateClosed, merged: false, want: StateClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := PullRequest{State: tt.state, Merged: tt.merged}
			assert.Equal(t, tt.want, pr.Status())
		})
	}
}
