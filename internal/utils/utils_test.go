package utils

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestDeduplicatePatternsKeepsFirstOccurrence(testingHandle *testing.T) {
	input := []string{"*.log", "dist/", "*.log", "node_modules/**", "dist/"}
	expected := []string{"*.log", "dist/", "node_modules/**"}
	if result := DeduplicatePatterns(input); !reflect.DeepEqual(result, expected) {
		testingHandle.Fatalf("deduplication mismatch: got %v, want %v", result, expected)
	}
}

func TestNormalizeRelativePath(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain path", input: "src/main.go", expected: "src/main.go"},
		{name: "leading dot segment", input: "./src/main.go", expected: "src/main.go"},
		{name: "repeated dot segments", input: "././a.txt", expected: "a.txt"},
		{name: "backslash separators", input: "src\\main.go", expected: "src/main.go"},
		{name: "leading slash", input: "/a.txt", expected: "a.txt"},
		{name: "surrounding whitespace", input: "  a.txt  ", expected: "a.txt"},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if result := NormalizeRelativePath(testCase.input); result != testCase.expected {
				subTest.Fatalf("NormalizeRelativePath(%q) = %q, want %q", testCase.input, result, testCase.expected)
			}
		})
	}
}

func TestRelativePathOrSelf(testingHandle *testing.T) {
	rootPath := testingHandle.TempDir()
	nestedPath := filepath.Join(rootPath, "src", "main.go")
	if result := RelativePathOrSelf(nestedPath, rootPath); result != "src/main.go" {
		testingHandle.Fatalf("expected slash relative path, got %q", result)
	}
	if result := RelativePathOrSelf(rootPath, rootPath); result != "." {
		testingHandle.Fatalf("expected \".\" for the root itself, got %q", result)
	}
}

func TestIsBinary(testingHandle *testing.T) {
	if IsBinary([]byte("plain text with unicode: héllo")) {
		testingHandle.Fatalf("text content misdetected as binary")
	}
	if !IsBinary([]byte{'a', 0x00, 'b'}) {
		testingHandle.Fatalf("NUL byte not detected as binary")
	}
	if !IsBinary([]byte{0xff, 0xfe, 0xfd}) {
		testingHandle.Fatalf("invalid UTF-8 not detected as binary")
	}
	if IsBinary(nil) {
		testingHandle.Fatalf("empty content misdetected as binary")
	}
}

func TestContainsString(testingHandle *testing.T) {
	values := []string{"alpha", "beta"}
	if !ContainsString(values, "beta") {
		testingHandle.Fatalf("expected beta to be found")
	}
	if ContainsString(values, "gamma") {
		testingHandle.Fatalf("did not expect gamma to be found")
	}
}
