// Package aliasfile parses alias definition files.
//
// An alias definition is a UTF-8 text file. Blank lines and lines whose
// first non-whitespace character is '#' are discarded; the remaining
// lines, trimmed, are joined with single spaces into the alias body.
// This lets a multi-line, commented shell one-liner live in a readable
// file while git config stores it as a single value.
package aliasfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/git-alias/internal/errors"
)

// Extension is the conventional suffix for alias definition files.
// DeriveName strips it when present.
const Extension = ".alias"

// namePattern restricts alias names to letters, digits, hyphens, and
// underscores, matching what git accepts as an alias key.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Parse reads an alias definition and returns the normalized single-line
// body. Interior whitespace within a line is preserved verbatim; only
// the joining of lines introduces spaces. An input with no content lines
// yields an empty body, which is not an error at this level; callers
// decide whether an empty alias is acceptable.
func Parse(r io.Reader) (string, error) {
	var parts []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts = append(parts, line)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "reading alias definition")
	}

	return strings.Join(parts, " "), nil
}

// ParseFile parses the alias definition at path.
func ParseFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithDetailf(errors.ErrNotFound, "alias file %s does not exist", path)
		}
		return "", errors.Wrapf(err, "opening alias file %s", path)
	}
	defer f.Close()

	body, err := Parse(f)
	if err != nil {
		return "", errors.Wrapf(err, "parsing alias file %s", path)
	}
	return body, nil
}

// DeriveName returns the alias name implied by a definition file path:
// the base name with the .alias extension stripped when present.
func DeriveName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Extension)
}

// ValidateName checks that name is usable as a git alias key.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.WithDetailf(errors.ErrInvalidName,
			"alias name %q may only contain letters, digits, hyphens, and underscores", name)
	}
	return nil
}
