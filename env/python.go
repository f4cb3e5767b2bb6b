package env

import (
	"os"
	"path/filepath"
)

// Venv returns the name of the currently active virtualenv, if any, using
// getenv to look up environment variables. The name is the last path
// element of $VIRTUAL_ENV.
func Venv(getenv func(key string) (value string, ok bool)) (string, bool) {
	value, ok := getenv("VIRTUAL_ENV")
	if !ok || value == "" {
		return "", false
	}
	name := filepath.Base(value)
	if name == "." || name == string(filepath.Separator) {
		return "", false
	}
	return name, true
}

// VenvFromEnv is Venv over the current process environment.
func VenvFromEnv() (string, bool) {
	return Venv(os.LookupEnv)
}

// CondaEnv returns the name of the currently active conda environment, if
// any, using getenv to look up environment variables.
func CondaEnv(getenv func(key string) (value string, ok bool)) (string, bool) {
	value, ok := getenv("CONDA_DEFAULT_ENV")
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// CondaEnvFromEnv is CondaEnv over the current process environment.
func CondaEnvFromEnv() (string, bool) {
	return CondaEnv(os.LookupEnv)
}
