// Package compact implements the compaction engine: it resolves the in-scope
// file set for a root path, renders the filtered directory tree, and
// serializes index plus file records into one combined text document.
package compact

import "github.com/ncsala/code2context/internal/types"

// FileSystem abstracts every file-system operation the engine performs. The
// engine never touches the disk directly, which keeps the pipeline testable
// against in-memory providers.
type FileSystem interface {
	// ReadFile returns the text content of the file at path.
	ReadFile(path string) (string, error)
	// WriteFile persists content at path, creating parent directories as needed.
	WriteFile(path string, content string) error
	// Exists reports whether path exists.
	Exists(path string) bool
	// GetFiles recursively enumerates all files under rootPath, producing
	// slash-normalized relative paths together with their content.
	GetFiles(rootPath string) ([]types.FileEntry, error)
	// GetDirectoryTree materializes the directory hierarchy under rootPath as
	// a snapshot owned by the caller.
	GetDirectoryTree(rootPath string) (*types.Node, error)
}

// IgnoreProvider supplies source-control-derived ignore patterns and
// repository detection. Pattern lookups are total: providers return an empty
// list instead of failing.
type IgnoreProvider interface {
	GetIgnorePatterns(rootPath string) []string
	IsGitRepository(rootPath string) bool
}
