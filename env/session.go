// Package env provides the environment-query collaborators of a prompt
// line: session identity, language environments, access rights, working
// directory shaping and git repository summaries.
//
// Absence (no virtualenv active, no upstream configured) is reported as a
// zero value plus a false flag, never as an error; errors are reserved for
// genuine OS or repository failures.
package env

import (
	"os"
	"os/user"
	"strings"
)

// Username returns the name of the current user.
func Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	name := u.Username
	// Windows reports DOMAIN\name.
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}

// Hostname returns the name of the host.
func Hostname() (string, error) {
	return os.Hostname()
}
