package localfs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ncsala/code2context/internal/types"
)

func writeTestFile(testingHandle *testing.T, rootPath string, relativePath string, content []byte) {
	testingHandle.Helper()
	fullPath := filepath.Join(rootPath, filepath.FromSlash(relativePath))
	if makeDirectoryError := os.MkdirAll(filepath.Dir(fullPath), 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("creating parent directory: %v", makeDirectoryError)
	}
	if writeError := os.WriteFile(fullPath, content, 0o644); writeError != nil {
		testingHandle.Fatalf("writing %s: %v", relativePath, writeError)
	}
}

// TestGetFilesEnumeratesTextFilesWithSlashPaths verifies lexical enumeration
// order, slash-normalized relative paths, and content capture.
func TestGetFilesEnumeratesTextFilesWithSlashPaths(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	writeTestFile(testingHandle, rootPath, "b.txt", []byte("beta"))
	writeTestFile(testingHandle, rootPath, "a.txt", []byte("alpha"))
	writeTestFile(testingHandle, rootPath, "nested/deep/c.txt", []byte("gamma"))

	provider := NewProvider()
	entries, enumerationError := provider.GetFiles(rootPath)
	if enumerationError != nil {
		testingHandle.Fatalf("GetFiles returned error: %v", enumerationError)
	}

	expectedEntries := []types.FileEntry{
		{Path: "a.txt", Content: "alpha"},
		{Path: "b.txt", Content: "beta"},
		{Path: "nested/deep/c.txt", Content: "gamma"},
	}
	if !reflect.DeepEqual(entries, expectedEntries) {
		testingHandle.Fatalf("entries mismatch:\ngot  %#v\nwant %#v", entries, expectedEntries)
	}
}

// TestGetFilesSkipsBinaryContent verifies content sniffing drops files that
// carry NUL bytes even when the extension looks textual.
func TestGetFilesSkipsBinaryContent(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	writeTestFile(testingHandle, rootPath, "text.txt", []byte("readable"))
	writeTestFile(testingHandle, rootPath, "binary.txt", []byte{0x00, 0x01, 0x02, 'a'})

	provider := NewProvider()
	entries, enumerationError := provider.GetFiles(rootPath)
	if enumerationError != nil {
		testingHandle.Fatalf("GetFiles returned error: %v", enumerationError)
	}
	if len(entries) != 1 || entries[0].Path != "text.txt" {
		testingHandle.Fatalf("expected only text.txt, got %#v", entries)
	}
}

// TestGetDirectoryTreeSortsDirectoriesFirst verifies the snapshot shape:
// relative slash paths, directory-first alphabetical ordering, and an empty
// path on the root node.
func TestGetDirectoryTreeSortsDirectoriesFirst(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	writeTestFile(testingHandle, rootPath, "zeta.txt", []byte("z"))
	writeTestFile(testingHandle, rootPath, "alpha.txt", []byte("a"))
	writeTestFile(testingHandle, rootPath, "src/main.go", []byte("package main"))

	provider := NewProvider()
	rootNode, buildError := provider.GetDirectoryTree(rootPath)
	if buildError != nil {
		testingHandle.Fatalf("GetDirectoryTree returned error: %v", buildError)
	}
	if rootNode.Path != "" || !rootNode.IsDirectory {
		testingHandle.Fatalf("unexpected root node: %#v", rootNode)
	}

	childNames := make([]string, 0, len(rootNode.Children))
	for _, childNode := range rootNode.Children {
		childNames = append(childNames, childNode.Name)
	}
	expectedNames := []string{"src", "alpha.txt", "zeta.txt"}
	if !reflect.DeepEqual(childNames, expectedNames) {
		testingHandle.Fatalf("child order mismatch: got %v, want %v", childNames, expectedNames)
	}

	sourceDirectory := rootNode.Children[0]
	if len(sourceDirectory.Children) != 1 || sourceDirectory.Children[0].Path != "src/main.go" {
		testingHandle.Fatalf("unexpected src subtree: %#v", sourceDirectory.Children)
	}
}

// TestGetDirectoryTreeFailsForMissingRoot verifies the stat precondition.
func TestGetDirectoryTreeFailsForMissingRoot(testingHandle *testing.T) {
	provider := NewProvider()
	missingPath := filepath.Join(testingHandle.TempDir(), "absent")
	if _, buildError := provider.GetDirectoryTree(missingPath); buildError == nil {
		testingHandle.Fatalf("expected an error for a missing root")
	}
}

// TestWriteFileCreatesParentDirectories verifies persistence into a path
// whose parents do not exist yet, and a read round-trip through the provider.
func TestWriteFileCreatesParentDirectories(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	outputPath := filepath.Join(rootPath, "deep", "nested", "out.txt")

	provider := NewProvider()
	if writeError := provider.WriteFile(outputPath, "document body"); writeError != nil {
		testingHandle.Fatalf("WriteFile returned error: %v", writeError)
	}
	content, readError := provider.ReadFile(outputPath)
	if readError != nil {
		testingHandle.Fatalf("ReadFile returned error: %v", readError)
	}
	if content != "document body" {
		testingHandle.Fatalf("round-trip content mismatch: %q", content)
	}
}

// TestExistsReflectsFilesystemState covers present and absent paths.
func TestExistsReflectsFilesystemState(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	writeTestFile(testingHandle, rootPath, "present.txt", []byte("here"))

	provider := NewProvider()
	if !provider.Exists(filepath.Join(rootPath, "present.txt")) {
		testingHandle.Fatalf("expected present.txt to exist")
	}
	if provider.Exists(filepath.Join(rootPath, "absent.txt")) {
		testingHandle.Fatalf("expected absent.txt to be missing")
	}
}
