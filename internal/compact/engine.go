package compact

import (
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ncsala/code2context/internal/ignore"
	"github.com/ncsala/code2context/internal/minify"
	"github.com/ncsala/code2context/internal/tree"
	"github.com/ncsala/code2context/internal/types"
)

const compactionOperationName = "compaction"

const (
	errorRootMissingFormat    = "root path does not exist: %s"
	errorNoFilesMessage       = "no files remain after applying ignore and selection rules"
	errorEnumerationFormat    = "failed to enumerate files under %s: %v"
	errorTreeBuildFormat      = "failed to build directory tree for %s: %v"
	errorWriteFormat          = "failed to write output to %s: %v"
	errorInternalFormat       = "unexpected failure during compaction: %v"
	warningEmptyTreeMessage   = "tree rendering produced no output; continuing without a tree section"
	skippedFileMessageFormat  = "skipping unreadable file %s: %v"
	resolvedFilesLogFormat    = "resolved %d files in %s mode"
	wroteDocumentLogFormat    = "wrote compaction document to %s"
	repositoryLogFormat       = "source-control patterns merged for repository at %s"
	noRepositoryWarningFormat = "%s is not a git repository; using ignore files only"
)

// Engine orchestrates the compaction pipeline. Each invocation is one linear
// pass: resolve patterns, resolve the file set, build index and tree, emit
// records, optionally persist. Engines hold no mutable state across calls and
// may be shared between concurrent invocations.
type Engine struct {
	fileSystem FileSystem
	ignores    IgnoreProvider
	sink       Sink
}

// NewEngine constructs an Engine over the supplied providers. A nil sink
// discards diagnostics.
func NewEngine(fileSystem FileSystem, ignores IgnoreProvider, sink Sink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{fileSystem: fileSystem, ignores: ignores, sink: sink}
}

// Execute runs the pipeline for the provided options and always returns a
// Result value: errors never escape the engine boundary. The success result
// carries the full document text whether or not it was also written to disk.
func (engine *Engine) Execute(options Options) (result Result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			engine.sink.Error(fmt.Sprintf(errorInternalFormat, recovered))
			result = failureResult(errorInternalFormat, recovered)
		}
	}()

	engine.sink.Start(compactionOperationName)
	defer engine.sink.End(compactionOperationName)

	resolvedOptions := options.WithDefaults()
	if !engine.fileSystem.Exists(resolvedOptions.RootPath) {
		return failureResult(errorRootMissingFormat, resolvedOptions.RootPath)
	}

	ignorePatterns, entries, failure := engine.resolveFileSet(resolvedOptions)
	if failure != nil {
		return *failure
	}
	if len(entries) == 0 {
		return failureResult(errorNoFilesMessage)
	}
	engine.sink.Log(fmt.Sprintf(resolvedFilesLogFormat, len(entries), resolvedOptions.SelectionMode))

	indexEntries := make([]string, len(entries))
	for entryIndex, entry := range entries {
		indexEntries[entryIndex] = fmt.Sprintf("%s|%d|%s", IndexMarker, entryIndex+1, entry.Path)
	}

	treeSection := ""
	if resolvedOptions.IncludeTree {
		rootNode, treeError := engine.fileSystem.GetDirectoryTree(resolvedOptions.RootPath)
		if treeError != nil {
			return failureResult(errorTreeBuildFormat, resolvedOptions.RootPath, treeError)
		}
		if resolvedOptions.filesModeRequested() {
			treeSection = tree.RenderWithSelection(rootNode, resolvedOptions.SpecificFiles)
		} else {
			treeSection = tree.RenderWithPatterns(rootNode, ignorePatterns)
		}
		if treeSection == "" {
			engine.sink.Warn(warningEmptyTreeMessage)
		}
	}

	fileRecords := buildFileRecords(entries, resolvedOptions.MinifyContent)
	document := assembleDocument(resolvedOptions.MinifyContent, treeSection, indexEntries, fileRecords)

	if resolvedOptions.OutputPath != "" {
		if writeError := engine.fileSystem.WriteFile(resolvedOptions.OutputPath, document); writeError != nil {
			return failureResult(errorWriteFormat, resolvedOptions.OutputPath, writeError)
		}
		engine.sink.Log(fmt.Sprintf(wroteDocumentLogFormat, resolvedOptions.OutputPath))
	}

	return successResult(document)
}

// resolveFileSet computes the resolved ignore patterns and the in-scope file
// entries for either selection mode. A non-nil failure carries the Result to
// return immediately.
func (engine *Engine) resolveFileSet(options Options) ([]string, []types.FileEntry, *Result) {
	if options.filesModeRequested() {
		ignorePatterns := engine.resolveIgnorePatterns(options)
		return ignorePatterns, engine.readSelectedFiles(options, ignorePatterns), nil
	}

	// The pattern sources and the file enumeration are independent; fetch
	// them concurrently.
	var ignorePatterns []string
	var enumeratedEntries []types.FileEntry
	var enumerationError error
	group := new(errgroup.Group)
	group.Go(func() error {
		ignorePatterns = engine.resolveIgnorePatterns(options)
		return nil
	})
	group.Go(func() error {
		enumeratedEntries, enumerationError = engine.fileSystem.GetFiles(options.RootPath)
		return nil
	})
	_ = group.Wait()
	if enumerationError != nil {
		failure := failureResult(errorEnumerationFormat, options.RootPath, enumerationError)
		return nil, nil, &failure
	}
	return ignorePatterns, ignore.FilterFiles(enumeratedEntries, ignorePatterns), nil
}

// resolveIgnorePatterns merges built-in, source-control, and custom patterns
// in ascending precedence order.
func (engine *Engine) resolveIgnorePatterns(options Options) []string {
	if options.IncludeGitIgnore && engine.ignores != nil {
		if engine.ignores.IsGitRepository(options.RootPath) {
			engine.sink.Log(fmt.Sprintf(repositoryLogFormat, options.RootPath))
		} else {
			engine.sink.Log(fmt.Sprintf(noRepositoryWarningFormat, options.RootPath))
		}
	}
	return ignore.Resolve(options.RootPath, options.IncludeGitIgnore, options.CustomIgnorePatterns, engine.ignores)
}

// readSelectedFiles resolves explicit-selection mode: requested paths that
// match the ignore patterns are dropped, the remainder are read concurrently,
// and files that fail to read are skipped without failing the pipeline.
// Results keep the requested order regardless of read completion order.
func (engine *Engine) readSelectedFiles(options Options, ignorePatterns []string) []types.FileEntry {
	selectedPaths := ignore.FilterPaths(options.SpecificFiles, ignorePatterns)
	orderedSlots := make([]*types.FileEntry, len(selectedPaths))

	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for pathIndex, relativePath := range selectedPaths {
		group.Go(func() error {
			absolutePath := filepath.Join(options.RootPath, filepath.FromSlash(relativePath))
			content, readError := engine.fileSystem.ReadFile(absolutePath)
			if readError != nil {
				engine.sink.Log(fmt.Sprintf(skippedFileMessageFormat, relativePath, readError))
				return nil
			}
			orderedSlots[pathIndex] = &types.FileEntry{Path: relativePath, Content: content}
			return nil
		})
	}
	_ = group.Wait()

	entries := make([]types.FileEntry, 0, len(selectedPaths))
	for _, slot := range orderedSlots {
		if slot == nil {
			continue
		}
		entries = append(entries, *slot)
	}
	return entries
}

// buildFileRecords serializes each entry into its pipe-delimited record,
// minifying content when requested. Transformation runs concurrently across
// files; records are reassembled in the resolved order so concurrency never
// reorders the document.
func buildFileRecords(entries []types.FileEntry, minifyContent bool) []string {
	fileRecords := make([]string, len(entries))
	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for entryIndex, entry := range entries {
		group.Go(func() error {
			recordContent := entry.Content
			if minifyContent {
				recordContent = minify.Minify(recordContent)
			}
			fileRecords[entryIndex] = fmt.Sprintf("%s|%d|%s|%s", FileMarker, entryIndex+1, entry.Path, recordContent)
			return nil
		})
	}
	_ = group.Wait()
	return fileRecords
}
