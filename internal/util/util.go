package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

var ErrBadIdentifier = errors.New("invalid sql identifier")

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// OpenInput opens path for reading; "-" means stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// QuoteIdent double-quotes a table or column name after checking it is a
// plain identifier. Names can't be bound as parameters, so this is the only
// way they enter a statement.
func QuoteIdent(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrBadIdentifier, name)
	}
	return `"` + name + `"`, nil
}
