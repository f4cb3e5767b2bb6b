package promptline

import (
	"bytes"
	"testing"
	"time"

	"github.com/hnimtadd/promptline/env"
	"github.com/hnimtadd/promptline/writers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererBackendSelection(t *testing.T) {
	var buf bytes.Buffer

	// A plain buffer is not a terminal.
	r := NewRenderer(Options{Output: &buf})
	assert.IsType(t, &writers.PlainWriter{}, r.Writer())

	r = NewRenderer(Options{Output: &buf, ForceStyle: true})
	assert.IsType(t, &writers.ANSIWriter{}, r.Writer())
}

func TestRenderEmptyInfo(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf})

	require.NoError(t, r.Render(Info{}))
	assert.Equal(t, "\n", buf.String())
}

func TestRenderFullLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf})

	duration := time.Hour + 2*time.Minute
	exitCode := env.ExitCode(1)
	info := Info{
		Username: "alice",
		Hostname: "box",
		Venv:     "tooling",
		Dir:      "~/src",
		Head:     &env.Head{Kind: env.HeadBranch, Name: "main"},
		Status: &env.StatusSummary{
			Staging:     env.ChangeSummary{Added: 1},
			WorkingTree: env.ChangeSummary{Modified: 2},
		},
		StashCount:   2,
		LastExitCode: &exitCode,
		LastDuration: &duration,
	}

	require.NoError(t, r.Render(info))
	assert.Equal(t, "alice@box (tooling) ~/src \ue0a0main +1 | ~2 \u26912 1h 2m \u2718 1\n", buf.String())
}

func TestRenderSkipsEmptyPieces(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf})

	require.NoError(t, r.Render(Info{Username: "alice", Dir: "~"}))
	assert.Equal(t, "alice ~\n", buf.String())
}

func TestRenderCleanStatusOmitted(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf})

	info := Info{
		Dir:    "~/src",
		Head:   &env.Head{Kind: env.HeadBranch, Name: "main"},
		Status: &env.StatusSummary{},
	}
	require.NoError(t, r.Render(info))
	assert.Equal(t, "~/src \ue0a0main\n", buf.String())
}

func TestRenderSuccessfulExitCodeHidden(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf})

	exitCode := env.ExitCode(0)
	require.NoError(t, r.Render(Info{Username: "alice", LastExitCode: &exitCode}))
	assert.Equal(t, "alice \u2714\n", buf.String())
}

func TestRenderStyledLineResets(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Options{Output: &buf, ForceStyle: true})

	require.NoError(t, r.Render(Info{Username: "alice"}))
	output := buf.String()
	assert.Contains(t, output, "alice")
	// The line always ends with a full reset before the newline.
	assert.Contains(t, output, "\x1b[0m\n")
}
