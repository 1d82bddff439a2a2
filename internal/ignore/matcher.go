// Package ignore decides which paths are in scope for compaction. It wraps
// gitignore-style pattern matching, merges the pattern sources into one
// ordered rule list, and filters candidate file sets.
package ignore

import (
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/ncsala/code2context/internal/types"
)

// Matcher evaluates an ordered gitignore-style pattern list against candidate
// paths. Later patterns override earlier ones for the same path, a leading "!"
// negates, patterns ending in "/" match directories only, and "**" matches
// recursive path segments. Candidate paths must already be relative and
// slash-normalized; the matcher performs no path normalization itself.
type Matcher struct {
	compiled *gitignore.GitIgnore
}

// NewMatcher compiles the provided pattern list once for repeated evaluation.
// An empty pattern list matches nothing.
func NewMatcher(patterns []string) *Matcher {
	if len(patterns) == 0 {
		return &Matcher{}
	}
	return &Matcher{compiled: gitignore.CompileIgnoreLines(patterns...)}
}

// Matches reports whether candidatePath is excluded by the compiled patterns.
func (matcher *Matcher) Matches(candidatePath string) bool {
	if matcher == nil || matcher.compiled == nil {
		return false
	}
	return matcher.compiled.MatchesPath(candidatePath)
}

// MatchesDirectory reports whether a directory path is excluded. Both the bare
// path and the trailing-slash form are evaluated so that directory-only
// patterns such as "node_modules/" apply.
func (matcher *Matcher) MatchesDirectory(directoryPath string) bool {
	if matcher == nil || matcher.compiled == nil {
		return false
	}
	return matcher.compiled.MatchesPath(directoryPath) || matcher.compiled.MatchesPath(directoryPath+"/")
}

// Matches is the one-shot form of Matcher evaluation: it compiles patterns and
// reports whether candidatePath is excluded. Deterministic for equal inputs.
func Matches(patterns []string, candidatePath string) bool {
	return NewMatcher(patterns).Matches(candidatePath)
}

// FilterFiles returns the entries whose path does not match patterns. The
// result preserves input order and the function never fails: an empty or
// unparsable pattern list simply excludes nothing.
func FilterFiles(entries []types.FileEntry, patterns []string) []types.FileEntry {
	matcher := NewMatcher(patterns)
	filtered := make([]types.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if matcher.Matches(entry.Path) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// FilterPaths returns the paths that do not match patterns, preserving order.
func FilterPaths(paths []string, patterns []string) []string {
	matcher := NewMatcher(patterns)
	filtered := make([]string, 0, len(paths))
	for _, candidatePath := range paths {
		if matcher.Matches(candidatePath) {
			continue
		}
		filtered = append(filtered, candidatePath)
	}
	return filtered
}
