package format

import (
	"strings"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/hnimtadd/promptline/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHead(t *testing.T) {
	tests := []struct {
		name     string
		head     env.Head
		expected string
	}{
		{
			name:     "unborn branch",
			head:     env.Head{Kind: env.HeadUnborn, Target: "refs/heads/main"},
			expected: "○main",
		},
		{
			name:     "branch without upstream",
			head:     env.Head{Kind: env.HeadBranch, Name: "main"},
			expected: "\ue0a0main",
		},
		{
			name: "branch in sync with upstream",
			head: env.Head{
				Kind:     env.HeadBranch,
				Name:     "main",
				Upstream: &env.AheadBehind{},
			},
			expected: "\ue0a0main ≡",
		},
		{
			name: "branch ahead and behind",
			head: env.Head{
				Kind:     env.HeadBranch,
				Name:     "feature",
				Upstream: &env.AheadBehind{Ahead: 2, Behind: 1},
			},
			expected: "\ue0a0feature ↑2 ↓1",
		},
		{
			name: "detached head",
			head: env.Head{
				Kind:   env.HeadCommit,
				Commit: plumbing.NewHash("0123456789abcdef0123456789abcdef01234567"),
			},
			expected: "◉012345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteHead(&w, &tt.head))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriteAheadBehind(t *testing.T) {
	tests := []struct {
		name     string
		counts   env.AheadBehind
		expected string
	}{
		{name: "in sync", counts: env.AheadBehind{}, expected: "≡"},
		{name: "ahead only", counts: env.AheadBehind{Ahead: 3}, expected: "↑3"},
		{name: "behind only", counts: env.AheadBehind{Behind: 2}, expected: "↓2"},
		{name: "both", counts: env.AheadBehind{Ahead: 1, Behind: 4}, expected: "↑1 ↓4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteAheadBehind(&w, tt.counts))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriteChangeSummary(t *testing.T) {
	tests := []struct {
		name     string
		changes  env.ChangeSummary
		expected string
	}{
		{
			name:     "all counts",
			changes:  env.ChangeSummary{Added: 1, Modified: 2, Deleted: 3},
			expected: "+1 ~2 -3",
		},
		{
			name:     "zeroes omitted",
			changes:  env.ChangeSummary{Modified: 5},
			expected: "~5",
		},
		{
			name:     "added and deleted",
			changes:  env.ChangeSummary{Added: 2, Deleted: 1},
			expected: "+2 -1",
		},
		{
			name:     "empty writes nothing",
			changes:  env.ChangeSummary{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteChangeSummary(&w, tt.changes))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriteStatusSummary(t *testing.T) {
	tests := []struct {
		name     string
		status   env.StatusSummary
		expected string
	}{
		{
			name: "staging and working tree",
			status: env.StatusSummary{
				Staging:     env.ChangeSummary{Added: 1},
				WorkingTree: env.ChangeSummary{Modified: 2},
			},
			expected: "+1 | ~2",
		},
		{
			name:     "staging only",
			status:   env.StatusSummary{Staging: env.ChangeSummary{Deleted: 1}},
			expected: "-1",
		},
		{
			name:     "working tree only keeps its bar",
			status:   env.StatusSummary{WorkingTree: env.ChangeSummary{Added: 3}},
			expected: "| +3",
		},
		{
			name: "conflicts trail the summaries",
			status: env.StatusSummary{
				Staging:     env.ChangeSummary{Modified: 1},
				WorkingTree: env.ChangeSummary{Deleted: 2},
				Conflicted:  4,
			},
			expected: "~1 | -2 !4",
		},
		{
			name:     "conflicts only",
			status:   env.StatusSummary{Conflicted: 1},
			expected: "!1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteStatusSummary(&w, &tt.status))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}
