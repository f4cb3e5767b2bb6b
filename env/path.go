package env

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrBaseNotAncestor reports that the base passed to StripAncestor or
// AbbreviatePath does not match any ancestor of the path.
var ErrBaseNotAncestor = errors.New("base is not an ancestor of path")

// FindAncestor returns the ancestor of path matching base, if any.
//
// The comparison normalizes "." components away, requires both paths to be
// either relative or absolute, and requires matching volume prefixes when
// either path carries one.
func FindAncestor(base, path string) (string, bool) {
	head, _, prefix, rooted, ok := splitAncestor(base, path)
	if !ok {
		return "", false
	}
	return joinComponents(prefix, rooted, head), true
}

// StripAncestor strips the ancestor of path matching base, as defined by
// FindAncestor, returning path relative to base.
func StripAncestor(base, path string) (string, error) {
	_, tail, _, _, ok := splitAncestor(base, path)
	if !ok {
		return "", ErrBaseNotAncestor
	}
	return filepath.Join(tail...), nil
}

// AbbreviatePath abbreviates path by replacing its base ancestor with
// abbreviation.
func AbbreviatePath(base, abbreviation, path string) (string, error) {
	relative, err := StripAncestor(base, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(abbreviation, relative), nil
}

// HomeOutcome tells how AbbreviateHome handled a path.
type HomeOutcome int

const (
	// HomeAbbreviated: the home ancestor was replaced with "~".
	HomeAbbreviated HomeOutcome = iota
	// HomeNotAncestor: the home dir is not an ancestor of the path, which
	// is returned unchanged.
	HomeNotAncestor
	// NoHome: the home dir could not be determined, the path is returned
	// unchanged.
	NoHome
)

// AbbreviateHome abbreviates path by replacing its home-dir ancestor with
// "~". The outcome tells whether the replacement happened.
func AbbreviateHome(path string) (string, HomeOutcome) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path, NoHome
	}
	abbreviated, err := AbbreviatePath(home, "~", path)
	if err != nil {
		return path, HomeNotAncestor
	}
	return abbreviated, HomeAbbreviated
}

// CurrentDirAbbreviatedHome returns the current working directory with the
// home dir abbreviated.
func CurrentDirAbbreviatedHome() (string, HomeOutcome, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", NoHome, err
	}
	abbreviated, outcome := AbbreviateHome(dir)
	return abbreviated, outcome, nil
}

// splitAncestor matches base against the leading components of path. head
// holds path's components covered by base, tail the remainder.
func splitAncestor(base, path string) (head, tail []string, prefix string, rooted bool, ok bool) {
	basePrefix, baseRooted, baseParts := pathComponents(base)
	prefix, rooted, parts := pathComponents(path)
	if basePrefix != prefix || baseRooted != rooted || len(baseParts) > len(parts) {
		return nil, nil, "", false, false
	}
	for i, part := range baseParts {
		if parts[i] != part {
			return nil, nil, "", false, false
		}
	}
	return parts[:len(baseParts)], parts[len(baseParts):], prefix, rooted, true
}

// pathComponents splits path into its volume prefix (empty on unix),
// whether it is rooted, and its components. "." components are dropped,
// ".." kept.
func pathComponents(path string) (prefix string, rooted bool, parts []string) {
	prefix = filepath.VolumeName(path)
	rest := path[len(prefix):]
	rooted = strings.HasPrefix(rest, "/") ||
		strings.HasPrefix(rest, string(filepath.Separator))
	for _, part := range strings.FieldsFunc(rest, isPathSeparator) {
		if part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return prefix, rooted, parts
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == rune(filepath.Separator)
}

func joinComponents(prefix string, rooted bool, parts []string) string {
	joined := filepath.Join(parts...)
	switch {
	case rooted:
		return prefix + string(filepath.Separator) + joined
	case joined == "":
		return "."
	default:
		return prefix + joined
	}
}
