package format

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteFull writes path in its full form.
//
// separator joins the components. rootSeparator follows the root dir: when
// the root dir already displays the same as separator, pass "" — otherwise
// a path like /a/b would display as //a/b. rootOverride, when non-empty, is
// displayed instead of the root dir (useful on Windows, where the root
// displays as "\" by default).
func WriteFull(w io.Writer, path, separator, rootSeparator, rootOverride string) error {
	prefix, rooted, parts := splitDisplayPath(path)
	if err := writePathHead(w, prefix, rooted, rootOverride); err != nil {
		return err
	}
	for i, part := range parts {
		sep := separator
		if i == 0 {
			sep = ""
			if rooted {
				sep = rootSeparator
			}
		}
		if _, err := io.WriteString(w, sep+part); err != nil {
			return err
		}
	}
	return nil
}

// WriteWithMiddleHidden writes path with every intermediate folder replaced
// by replacement.
//
// separator, rootSeparator and rootOverride behave as in WriteFull.
func WriteWithMiddleHidden(w io.Writer, path, separator, rootSeparator, rootOverride, replacement string) error {
	return writeShortened(w, path, separator, rootSeparator, rootOverride, replacement, false)
}

// WriteShort writes path with all intermediate folders replaced by a single
// instance of replacement.
//
// separator, rootSeparator and rootOverride behave as in WriteFull.
func WriteShort(w io.Writer, path, separator, rootSeparator, rootOverride, replacement string) error {
	return writeShortened(w, path, separator, rootSeparator, rootOverride, replacement, true)
}

func writeShortened(w io.Writer, path, separator, rootSeparator, rootOverride, replacement string, collapse bool) error {
	prefix, rooted, parts := splitDisplayPath(path)
	if err := writePathHead(w, prefix, rooted, rootOverride); err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil
	}

	first := 0
	if !rooted {
		// The first named component stays visible when there is no root
		// dir to anchor the display.
		if _, err := io.WriteString(w, parts[0]); err != nil {
			return err
		}
		if len(parts) == 1 {
			return nil
		}
		if _, err := io.WriteString(w, separator); err != nil {
			return err
		}
		first = 1
	} else {
		if _, err := io.WriteString(w, rootSeparator); err != nil {
			return err
		}
	}

	middle := len(parts) - 1 - first
	if collapse && middle > 0 {
		middle = 1
	}
	for i := 0; i < middle; i++ {
		if _, err := io.WriteString(w, replacement+separator); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, parts[len(parts)-1])
	return err
}

// WriteTruncated writes s clipped to at most width display cells, ending
// with tail when clipping occurs. Widths are measured in terminal cells,
// not bytes.
func WriteTruncated(w io.Writer, s string, width int, tail string) error {
	_, err := io.WriteString(w, runewidth.Truncate(s, width, tail))
	return err
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func writePathHead(w io.Writer, prefix string, rooted bool, rootOverride string) error {
	if prefix != "" {
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
	}
	if !rooted {
		return nil
	}
	root := rootOverride
	if root == "" {
		root = string(filepath.Separator)
	}
	_, err := io.WriteString(w, root)
	return err
}

// splitDisplayPath splits path into its volume prefix, rootedness and named
// components, dropping "." components.
func splitDisplayPath(path string) (prefix string, rooted bool, parts []string) {
	prefix = filepath.VolumeName(path)
	rest := path[len(prefix):]
	rooted = strings.HasPrefix(rest, "/") ||
		strings.HasPrefix(rest, string(filepath.Separator))
	for _, part := range strings.FieldsFunc(rest, func(r rune) bool {
		return r == '/' || r == rune(filepath.Separator)
	}) {
		if part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return prefix, rooted, parts
}
