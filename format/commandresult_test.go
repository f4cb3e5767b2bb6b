package format

import (
	"bytes"
	"testing"

	"github.com/hnimtadd/promptline/env"
	"github.com/hnimtadd/promptline/writers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExitCodeSymbolWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		code     env.ExitCode
		when     When
		expected string
	}{
		{
			name:     "success hides the code on error-only",
			code:     0,
			when:     OnError,
			expected: "\x1b[92m✔\x1b[39m",
		},
		{
			name:     "failure shows the code on error-only",
			code:     1,
			when:     OnError,
			expected: "\x1b[91m✘ 1\x1b[39m",
		},
		{
			name:     "success shows the code on always",
			code:     0,
			when:     Always,
			expected: "\x1b[92m✔ 0\x1b[39m",
		},
		{
			name:     "failure hides the code on never",
			code:     130,
			when:     Never,
			expected: "\x1b[91m✘\x1b[39m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := writers.NewANSIWriter(&buf)
			require.NoError(t, WriteExitCodeSymbolWithDefaults(w, tt.code, tt.when))
			assert.Equal(t, tt.expected, buf.String())
			// The style reverted once the symbol was written.
			assert.True(t, w.Style().IsDefault())
		})
	}
}

func TestWriteCommandResultWithDefaults(t *testing.T) {
	var buf bytes.Buffer
	w := writers.NewANSIWriter(&buf)

	require.NoError(t, WriteCommandResultWithDefaults(w, env.CommandSuccess))
	assert.Equal(t, "\x1b[92m✔\x1b[39m", buf.String())

	buf.Reset()
	require.NoError(t, WriteCommandResultWithDefaults(w, env.CommandFailure))
	assert.Equal(t, "\x1b[91m✘\x1b[39m", buf.String())
}

func TestWriteCommandResultPlainBackend(t *testing.T) {
	var buf bytes.Buffer
	w := writers.NewPlainWriter(&buf)

	require.NoError(t, WriteCommandResultWithDefaults(w, env.CommandFailure))
	assert.Equal(t, "✘", buf.String())
	assert.True(t, w.Style().IsDefault())
}
