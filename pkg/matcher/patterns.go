package matcher

import (
	"path"
	"strings"

	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Patterns splits a globs value into its patterns
func Patterns(globs string) []string {
	var out []string
	for _, p := range strings.Split(globs, ",") {
		p = strings.TrimPrefix(strings.TrimSpace(p), "./")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidatePattern returns a GLOB_INVALID error for patterns doublestar rejects
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return doctorerrors.Newf(doctorerrors.ErrGlobInvalid, "invalid glob pattern: %s", pattern).
			WithDetail("pattern", pattern)
	}
	return nil
}

// matchPattern matches rel, a slash separated project path
func matchPattern(pattern, rel string) bool {
	if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	ok, err := doublestar.Match(pattern, path.Base(rel))
	return err == nil && ok
}
