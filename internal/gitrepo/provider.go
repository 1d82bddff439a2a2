// Package gitrepo implements the ignore-rule provider: it loads
// source-control ignore patterns from recognized ignore files and detects
// whether a path belongs to a Git repository.
package gitrepo

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/ncsala/code2context/internal/utils"
)

// recognizedIgnoreFileNames lists the ignore files consulted under a root, in
// merge order. Project-specific patterns follow the Git ones so they win on
// conflict under gitignore semantics.
var recognizedIgnoreFileNames = []string{
	utils.GitIgnoreFileName,
	utils.ProjectIgnoreFileName,
}

// Provider reads ignore files from disk. It is stateless and safe for
// concurrent use.
type Provider struct{}

// NewProvider constructs a disk-backed ignore-rule Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// GetIgnorePatterns returns the patterns found in the recognized ignore files
// directly under rootPath. When rootPath sits inside a repository whose work
// tree starts higher up, the repository root's Git ignore file is merged
// first so the local files win on conflict. Blank lines and comment lines
// starting with "#" are skipped. Missing or unreadable files contribute
// nothing; the method never fails.
func (provider *Provider) GetIgnorePatterns(rootPath string) []string {
	var patterns []string
	if repositoryRoot := utils.FindGitDirectory(rootPath); repositoryRoot != "" && !sameDirectory(repositoryRoot, rootPath) {
		patterns = append(patterns, loadIgnoreFileLines(filepath.Join(repositoryRoot, utils.GitIgnoreFileName))...)
	}
	for _, ignoreFileName := range recognizedIgnoreFileNames {
		patterns = append(patterns, loadIgnoreFileLines(filepath.Join(rootPath, ignoreFileName))...)
	}
	return patterns
}

// sameDirectory reports whether two paths resolve to the same directory.
func sameDirectory(firstPath, secondPath string) bool {
	absoluteFirst, firstError := filepath.Abs(firstPath)
	absoluteSecond, secondError := filepath.Abs(secondPath)
	if firstError != nil || secondError != nil {
		return firstPath == secondPath
	}
	return filepath.Clean(absoluteFirst) == filepath.Clean(absoluteSecond)
}

// IsGitRepository reports whether rootPath is inside a Git repository,
// searching upward for the enclosing work tree.
func (provider *Provider) IsGitRepository(rootPath string) bool {
	_, openError := git.PlainOpenWithOptions(rootPath, &git.PlainOpenOptions{DetectDotGit: true})
	return openError == nil
}

// loadIgnoreFileLines reads one ignore file, skipping blank lines and
// comments. Any failure yields an empty result.
func loadIgnoreFileLines(ignoreFilePath string) []string {
	fileHandle, openError := os.Open(ignoreFilePath)
	if openError != nil {
		return nil
	}
	defer fileHandle.Close()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	if scanner.Err() != nil {
		return nil
	}
	return patterns
}
