package walk

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"
)

// nameMatcher matches bare file names against a shell-style glob. Both
// sides are NFC-normalised so decomposed names (as written by macOS) match
// composed patterns.
type nameMatcher struct {
	pattern string
}

func newNameMatcher(pattern string) (nameMatcher, error) {
	pattern = norm.NFC.String(pattern)
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return nameMatcher{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	return nameMatcher{pattern: pattern}, nil
}

// Match reports whether name matches. doublestar only fails on malformed
// patterns, which newNameMatcher rejects.
func (m nameMatcher) Match(name string) bool {
	matched, err := doublestar.Match(m.pattern, norm.NFC.String(name))
	return err == nil && matched
}
