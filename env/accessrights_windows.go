//go:build windows

package env

import "golang.org/x/sys/windows"

// IsRootOrElevated tells whether the current process token is elevated.
func IsRootOrElevated() (bool, error) {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false, err
	}
	defer token.Close()
	return token.IsElevated(), nil
}
