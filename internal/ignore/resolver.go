package ignore

// Provider supplies source-control-derived ignore information for a root path.
// Implementations must be total: a provider that cannot read its sources
// returns an empty pattern list rather than failing.
type Provider interface {
	// GetIgnorePatterns returns the patterns found in recognized ignore files
	// under rootPath, with blank lines and comment lines already removed.
	GetIgnorePatterns(rootPath string) []string
	// IsGitRepository reports whether rootPath is inside a Git repository.
	IsGitRepository(rootPath string) bool
}

// Resolve merges the three pattern sources into one ordered list, in
// increasing priority: built-in defaults, provider patterns (only when
// includeGitIgnore is set), then custom patterns. Under gitignore semantics
// the later entries win on conflict, so user-supplied patterns can both add
// new exclusions and negate built-in ones. The order is load-bearing and must
// not change. Provider lookups that produce nothing contribute nothing; that
// is never an error.
func Resolve(rootPath string, includeGitIgnore bool, customPatterns []string, provider Provider) []string {
	resolved := make([]string, 0, len(DefaultIgnorePatterns)+len(customPatterns))
	resolved = append(resolved, DefaultIgnorePatterns...)
	if includeGitIgnore && provider != nil {
		resolved = append(resolved, provider.GetIgnorePatterns(rootPath)...)
	}
	for _, pattern := range customPatterns {
		if pattern == "" {
			continue
		}
		resolved = append(resolved, pattern)
	}
	return resolved
}
