// Package localfs implements the compaction file-system provider against the
// local disk.
package localfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ncsala/code2context/internal/types"
	"github.com/ncsala/code2context/internal/utils"
)

const outputFileMode = 0o644

// Provider is the disk-backed file-system provider. It is stateless and safe
// for concurrent use.
type Provider struct{}

// NewProvider constructs a disk-backed Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// ReadFile returns the text content of the file at path.
func (provider *Provider) ReadFile(path string) (string, error) {
	fileBytes, readError := os.ReadFile(path)
	if readError != nil {
		return "", readError
	}
	return string(fileBytes), nil
}

// WriteFile persists content at path, creating parent directories as needed.
func (provider *Provider) WriteFile(path string, content string) error {
	parentDirectory := filepath.Dir(path)
	if makeDirectoryError := os.MkdirAll(parentDirectory, 0o755); makeDirectoryError != nil {
		return fmt.Errorf("creating directory %s: %w", parentDirectory, makeDirectoryError)
	}
	return os.WriteFile(path, []byte(content), outputFileMode)
}

// Exists reports whether path exists.
func (provider *Provider) Exists(path string) bool {
	_, statError := os.Stat(path)
	return statError == nil
}

// GetFiles recursively enumerates all readable text files under rootPath in
// lexical walk order, producing slash-normalized relative paths together with
// their content. Unreadable files and files with binary content are skipped;
// the built-in ignore patterns already exclude binary formats by extension,
// content sniffing catches the rest.
func (provider *Provider) GetFiles(rootPath string) ([]types.FileEntry, error) {
	cleanedRootPath := filepath.Clean(rootPath)
	var entries []types.FileEntry

	walkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry os.DirEntry, accessError error) error {
		if accessError != nil {
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
		if relativePath == "." {
			return nil
		}
		fileBytes, readError := os.ReadFile(walkedPath)
		if readError != nil {
			return nil
		}
		if utils.IsBinary(fileBytes) {
			return nil
		}
		entries = append(entries, types.FileEntry{Path: relativePath, Content: string(fileBytes)})
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf("walking %s: %w", cleanedRootPath, walkError)
	}
	return entries, nil
}

// GetDirectoryTree materializes the directory hierarchy under rootPath as a
// snapshot owned by the caller. Children are sorted directories first, then
// alphabetically within each group; every node path is relative with forward
// slashes and empty for the root itself.
func (provider *Provider) GetDirectoryTree(rootPath string) (*types.Node, error) {
	cleanedRootPath := filepath.Clean(rootPath)
	rootInformation, statError := os.Stat(cleanedRootPath)
	if statError != nil {
		return nil, fmt.Errorf("stat %s: %w", cleanedRootPath, statError)
	}
	rootNode := &types.Node{
		Path:        "",
		Name:        filepath.Base(cleanedRootPath),
		IsDirectory: rootInformation.IsDir(),
	}
	if !rootNode.IsDirectory {
		return rootNode, nil
	}
	if buildError := provider.appendChildren(cleanedRootPath, rootNode); buildError != nil {
		return nil, buildError
	}
	return rootNode, nil
}

// appendChildren populates node with the sorted children of directoryPath,
// recursing into subdirectories. Directories that cannot be listed are
// skipped rather than failing the whole snapshot.
func (provider *Provider) appendChildren(directoryPath string, node *types.Node) error {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		if node.Path == "" {
			return fmt.Errorf("reading directory %s: %w", directoryPath, readDirectoryError)
		}
		return nil
	}

	sort.SliceStable(directoryEntries, func(firstIndex, secondIndex int) bool {
		first, second := directoryEntries[firstIndex], directoryEntries[secondIndex]
		if first.IsDir() != second.IsDir() {
			return first.IsDir()
		}
		firstName, secondName := strings.ToLower(first.Name()), strings.ToLower(second.Name())
		if firstName != secondName {
			return firstName < secondName
		}
		return first.Name() < second.Name()
	})

	for _, directoryEntry := range directoryEntries {
		childPath := directoryEntry.Name()
		if node.Path != "" {
			childPath = node.Path + "/" + directoryEntry.Name()
		}
		childNode := &types.Node{
			Path:        childPath,
			Name:        directoryEntry.Name(),
			IsDirectory: directoryEntry.IsDir(),
		}
		if directoryEntry.IsDir() {
			if buildError := provider.appendChildren(filepath.Join(directoryPath, directoryEntry.Name()), childNode); buildError != nil {
				return buildError
			}
		}
		node.Children = append(node.Children, childNode)
	}
	return nil
}
