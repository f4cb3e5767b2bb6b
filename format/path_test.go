package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFull(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		separator     string
		rootSeparator string
		rootOverride  string
		expected      string
	}{
		{
			name:      "absolute path",
			path:      "/home/user/src",
			separator: "/",
			expected:  "/home/user/src",
		},
		{
			name:      "relative path",
			path:      "a/b/c",
			separator: " > ",
			expected:  "a > b > c",
		},
		{
			name:          "fancy separators",
			path:          "/a/b",
			separator:     "  ",
			rootSeparator: " ",
			expected:      "/ a  b",
		},
		{
			name:         "root override",
			path:         "/a/b",
			separator:    "/",
			rootOverride: "root:",
			expected:     "root:a/b",
		},
		{
			name:      "bare root",
			path:      "/",
			separator: "/",
			expected:  "/",
		},
		{
			name:      "dot components dropped",
			path:      "./a/./b",
			separator: "/",
			expected:  "a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteFull(&w, tt.path, tt.separator, tt.rootSeparator, tt.rootOverride))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriteWithMiddleHidden(t *testing.T) {
	var w strings.Builder
	require.NoError(t, WriteWithMiddleHidden(&w, "/home/user/src/deep/project", "/", "", "", "…"))
	assert.Equal(t, "/…/…/…/…/project", w.String())

	w.Reset()
	require.NoError(t, WriteWithMiddleHidden(&w, "a/b/c/d", "/", "", "", "…"))
	assert.Equal(t, "a/…/…/d", w.String())
}

func TestWriteShort(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "deep absolute path collapses to one replacement",
			path:     "/home/user/src/deep/project",
			expected: "/…/project",
		},
		{
			name:     "relative path keeps its first component",
			path:     "a/b/c/d",
			expected: "a/…/d",
		},
		{
			name:     "rooted intermediate component is hidden",
			path:     "/a/b",
			expected: "/…/b",
		},
		{
			name:     "single rooted component",
			path:     "/a",
			expected: "/a",
		},
		{
			name:     "single relative component",
			path:     "a",
			expected: "a",
		},
		{
			name:     "bare root",
			path:     "/",
			expected: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w strings.Builder
			require.NoError(t, WriteShort(&w, tt.path, "/", "", "", "…"))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriteTruncated(t *testing.T) {
	var w strings.Builder
	require.NoError(t, WriteTruncated(&w, "hello world", 8, "…"))
	assert.Equal(t, "hello w…", w.String())

	w.Reset()
	require.NoError(t, WriteTruncated(&w, "short", 8, "…"))
	assert.Equal(t, "short", w.String())
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	// Wide runes take two cells.
	assert.Equal(t, 4, DisplayWidth("日本"))
}
