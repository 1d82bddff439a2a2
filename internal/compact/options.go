package compact

import (
	"github.com/ncsala/code2context/internal/types"
	"github.com/ncsala/code2context/internal/utils"
)

// Options is the resolved configuration for one engine invocation. Defaults
// are applied once, at the boundary, before the pipeline runs; the engine
// itself never supplies ad-hoc fallbacks.
type Options struct {
	// RootPath is the directory the compaction operates on. Required.
	RootPath string
	// OutputPath, when non-empty, persists the document through the
	// file-system provider after assembly.
	OutputPath string
	// CustomIgnorePatterns are user-supplied gitignore-style rules appended
	// with the highest precedence; they can negate built-in exclusions.
	CustomIgnorePatterns []string
	// IncludeGitIgnore merges source-control ignore patterns from the
	// ignore provider.
	IncludeGitIgnore bool
	// IncludeTree emits the rendered directory tree section.
	IncludeTree bool
	// MinifyContent collapses each file's content to a single
	// whitespace-normalized line.
	MinifyContent bool
	// SpecificFiles lists relative paths to compact in file-selection mode.
	SpecificFiles []string
	// SelectionMode chooses between directory enumeration and explicit file
	// selection. Empty defaults to directory mode.
	SelectionMode string
}

// WithDefaults returns a copy of the options with defaults resolved: the
// selection mode falls back to directory enumeration and requested file paths
// are slash-normalized and deduplicated so they compare equal to enumerated
// ones and a path requested twice yields one record.
func (options Options) WithDefaults() Options {
	resolved := options
	if resolved.SelectionMode == "" {
		resolved.SelectionMode = types.SelectionModeDirectory
	}
	if len(resolved.SpecificFiles) > 0 {
		normalizedFiles := make([]string, 0, len(resolved.SpecificFiles))
		for _, requestedPath := range resolved.SpecificFiles {
			normalizedPath := utils.NormalizeRelativePath(requestedPath)
			if normalizedPath == "" || utils.ContainsString(normalizedFiles, normalizedPath) {
				continue
			}
			normalizedFiles = append(normalizedFiles, normalizedPath)
		}
		resolved.SpecificFiles = normalizedFiles
	}
	return resolved
}

// filesModeRequested reports whether the options select explicit-file mode.
// Files mode requires both the mode marker and a non-empty selection; an
// empty selection falls back to directory enumeration.
func (options Options) filesModeRequested() bool {
	return options.SelectionMode == types.SelectionModeFiles && len(options.SpecificFiles) > 0
}
