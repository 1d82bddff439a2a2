// Package tree renders ASCII directory trees from materialized snapshots.
// Rendering is a pure function of the snapshot and the filter: no file-system
// access happens during traversal.
package tree

import (
	"sort"
	"strings"

	"github.com/ncsala/code2context/internal/ignore"
	"github.com/ncsala/code2context/internal/types"
)

// Box-drawing connectors. All children but the last use the middle branch;
// nested lines continue under a middle branch with a vertical bar and under
// the last branch with spaces.
const (
	middleBranchConnector = "├── "
	endBranchConnector    = "└── "
	middleBranchExtension = "│   "
	endBranchExtension    = "    "
)

// RenderWithPatterns renders the snapshot rooted at root, keeping only nodes
// that do not match the ignore patterns. Directories with zero relevant
// descendants are omitted entirely. The root itself is never printed; an empty
// string means there is no tree to show, not an error.
func RenderWithPatterns(root *types.Node, patterns []string) string {
	matcher := ignore.NewMatcher(patterns)
	fileRelevant := func(node *types.Node) bool {
		return !matcher.Matches(node.Path)
	}
	directoryCandidate := func(node *types.Node) bool {
		return !matcher.MatchesDirectory(node.Path)
	}
	return render(root, fileRelevant, directoryCandidate)
}

// RenderWithSelection renders the snapshot rooted at root, keeping only files
// whose path is a member of selectedPaths. A directory is a candidate when a
// selected path equals the directory's path or descends below it; both
// forward-slash and backslash selected paths are tolerated because callers may
// pass un-normalized host paths. Directories without relevant leaves are
// omitted entirely.
func RenderWithSelection(root *types.Node, selectedPaths []string) string {
	normalizedSelection := make(map[string]struct{}, len(selectedPaths))
	for _, selectedPath := range selectedPaths {
		normalizedSelection[strings.ReplaceAll(selectedPath, "\\", "/")] = struct{}{}
	}
	fileRelevant := func(node *types.Node) bool {
		_, selected := normalizedSelection[node.Path]
		return selected
	}
	directoryCandidate := func(node *types.Node) bool {
		if _, selected := normalizedSelection[node.Path]; selected {
			return true
		}
		directoryPrefix := node.Path + "/"
		for selectedPath := range normalizedSelection {
			if strings.HasPrefix(selectedPath, directoryPrefix) {
				return true
			}
		}
		return false
	}
	return render(root, fileRelevant, directoryCandidate)
}

func render(root *types.Node, fileRelevant func(*types.Node) bool, directoryCandidate func(*types.Node) bool) string {
	if root == nil || !root.IsDirectory {
		return ""
	}
	lines := renderLines(root, fileRelevant, directoryCandidate)
	return strings.Join(lines, "\n")
}

// renderLines produces the rendered lines for the relevant children of node,
// without any parent prefix; each recursion level prepends its own
// continuation prefix when embedding a child's lines.
func renderLines(node *types.Node, fileRelevant func(*types.Node) bool, directoryCandidate func(*types.Node) bool) []string {
	orderedChildren := sortChildren(node.Children)

	var relevantChildren []*types.Node
	var childSubtrees [][]string
	for _, child := range orderedChildren {
		if child.IsDirectory {
			if !directoryCandidate(child) {
				continue
			}
			subtreeLines := renderLines(child, fileRelevant, directoryCandidate)
			if len(subtreeLines) == 0 {
				continue
			}
			relevantChildren = append(relevantChildren, child)
			childSubtrees = append(childSubtrees, subtreeLines)
			continue
		}
		if !fileRelevant(child) {
			continue
		}
		relevantChildren = append(relevantChildren, child)
		childSubtrees = append(childSubtrees, nil)
	}

	var lines []string
	for childIndex, child := range relevantChildren {
		connector := middleBranchConnector
		extension := middleBranchExtension
		if childIndex == len(relevantChildren)-1 {
			connector = endBranchConnector
			extension = endBranchExtension
		}
		displayName := child.Name
		if child.IsDirectory {
			displayName += "/"
		}
		lines = append(lines, connector+displayName)
		for _, subtreeLine := range childSubtrees[childIndex] {
			lines = append(lines, extension+subtreeLine)
		}
	}
	return lines
}

// sortChildren returns the children sorted directories first, then
// alphabetically by name within each group. The input slice is not mutated.
func sortChildren(children []*types.Node) []*types.Node {
	ordered := make([]*types.Node, len(children))
	copy(ordered, children)
	sort.SliceStable(ordered, func(firstIndex, secondIndex int) bool {
		first, second := ordered[firstIndex], ordered[secondIndex]
		if first.IsDirectory != second.IsDirectory {
			return first.IsDirectory
		}
		firstName, secondName := strings.ToLower(first.Name), strings.ToLower(second.Name)
		if firstName != secondName {
			return firstName < secondName
		}
		return first.Name < second.Name
	})
	return ordered
}
