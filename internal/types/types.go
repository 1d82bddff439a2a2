// Package types defines the cross-package data structures used by the code2context pipeline.
package types

// Selection modes supported by the compaction engine.
const (
	SelectionModeDirectory = "directory"
	SelectionModeFiles     = "files"
)

// FileEntry is one in-scope file: a slash-normalized path relative to the
// compaction root plus its content. Immutable once constructed.
type FileEntry struct {
	Path    string
	Content string
}

// Node is one node of a materialized directory tree snapshot. Path is relative
// to the snapshot root with forward slashes only and empty for the root itself.
// Children of a directory are sorted directories first, then alphabetically by
// name within each group.
type Node struct {
	Path        string
	Name        string
	IsDirectory bool
	Children    []*Node
}
