package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ncsala/code2context/internal/utils"
)

func writeConfigurationFile(testingHandle *testing.T, path string, content string) {
	testingHandle.Helper()
	if makeDirectoryError := os.MkdirAll(filepath.Dir(path), 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("creating configuration directory: %v", makeDirectoryError)
	}
	if writeError := os.WriteFile(path, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("writing configuration: %v", writeError)
	}
}

// TestLoadApplicationConfigurationOverlaysLocalOnGlobal verifies layering:
// values set only globally survive, values set in both places take the local
// value, and unset pointer fields stay nil.
func TestLoadApplicationConfigurationOverlaysLocalOnGlobal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
	writeConfigurationFile(testingHandle, globalPath, "compact:\n  output: global-out.txt\n  minify: true\n  tokens:\n    model: gpt-4o\n")

	workingDirectory := testingHandle.TempDir()
	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	writeConfigurationFile(testingHandle, localPath, "compact:\n  output: local-out.txt\n  exclude:\n    - \"*.log\"\n    - \"*.log\"\n    - dist/\n")

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration returned error: %v", loadError)
	}

	if configuration.Compact.Output != "local-out.txt" {
		testingHandle.Fatalf("local output did not override global: %q", configuration.Compact.Output)
	}
	if configuration.Compact.Minify == nil || !*configuration.Compact.Minify {
		testingHandle.Fatalf("global minify value lost in merge: %#v", configuration.Compact.Minify)
	}
	if configuration.Compact.Tree != nil {
		testingHandle.Fatalf("tree should remain unset, got %v", *configuration.Compact.Tree)
	}
	if configuration.Compact.Tokens.Model != "gpt-4o" {
		testingHandle.Fatalf("global token model lost in merge: %q", configuration.Compact.Tokens.Model)
	}
	expectedExclusions := []string{"*.log", "dist/"}
	if !reflect.DeepEqual(configuration.Compact.Exclude, expectedExclusions) {
		testingHandle.Fatalf("exclusions not deduplicated: got %v, want %v", configuration.Compact.Exclude, expectedExclusions)
	}
}

// TestLoadApplicationConfigurationHonorsExplicitPath verifies that an explicit
// configuration file is used instead of the working-directory default.
func TestLoadApplicationConfigurationHonorsExplicitPath(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	writeConfigurationFile(testingHandle, filepath.Join(workingDirectory, utils.ConfigFileName), "compact:\n  output: default.txt\n")
	writeConfigurationFile(testingHandle, filepath.Join(workingDirectory, "custom.yaml"), "compact:\n  output: custom.txt\n")

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "custom.yaml",
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration returned error: %v", loadError)
	}
	if configuration.Compact.Output != "custom.txt" {
		testingHandle.Fatalf("explicit configuration not honored: %q", configuration.Compact.Output)
	}
}

// TestLoadApplicationConfigurationToleratesMissingFiles verifies that absent
// configuration files yield the zero configuration without error.
func TestLoadApplicationConfigurationToleratesMissingFiles(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration returned error: %v", loadError)
	}
	if !reflect.DeepEqual(configuration, ApplicationConfiguration{}) {
		testingHandle.Fatalf("expected zero configuration, got %#v", configuration)
	}
}

// TestLoadApplicationConfigurationRejectsMalformedFile verifies that a broken
// local file surfaces an error instead of being silently skipped.
func TestLoadApplicationConfigurationRejectsMalformedFile(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	writeConfigurationFile(testingHandle, filepath.Join(workingDirectory, utils.ConfigFileName), "compact: [unclosed\n")

	if _, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory}); loadError == nil {
		testingHandle.Fatalf("expected an error for malformed configuration")
	}
}

// TestMergeClonesPointerFields verifies that merged boolean pointers are
// copies, not aliases into the override.
func TestMergeClonesPointerFields(testingHandle *testing.T) {
	overrideValue := true
	base := ApplicationConfiguration{}
	override := ApplicationConfiguration{Compact: CompactConfiguration{Minify: &overrideValue}}

	merged := base.Merge(override)
	if merged.Compact.Minify == nil || !*merged.Compact.Minify {
		testingHandle.Fatalf("override value not merged: %#v", merged.Compact.Minify)
	}
	overrideValue = false
	if !*merged.Compact.Minify {
		testingHandle.Fatalf("merged pointer aliases the override value")
	}
}

// TestInitializeConfigurationWritesTemplateAndRespectsForce verifies the
// local init flow, the already-exists guard, and the force overwrite.
func TestInitializeConfigurationWritesTemplateAndRespectsForce(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()

	destinationPath, initError := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory})
	if initError != nil {
		testingHandle.Fatalf("InitializeConfiguration returned error: %v", initError)
	}
	if destinationPath != filepath.Join(workingDirectory, utils.ConfigFileName) {
		testingHandle.Fatalf("unexpected destination path: %s", destinationPath)
	}

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("loading initialized configuration: %v", loadError)
	}
	if configuration.Compact.UseGitignore == nil || !*configuration.Compact.UseGitignore {
		testingHandle.Fatalf("template use_gitignore not loaded: %#v", configuration.Compact.UseGitignore)
	}
	if configuration.Compact.Tokens.Model != "gpt-4o" {
		testingHandle.Fatalf("template token model not loaded: %q", configuration.Compact.Tokens.Model)
	}

	if _, secondError := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); secondError == nil {
		testingHandle.Fatalf("expected an error when the configuration already exists")
	}
	if _, forcedError := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Force: true}); forcedError != nil {
		testingHandle.Fatalf("forced initialization failed: %v", forcedError)
	}
}
