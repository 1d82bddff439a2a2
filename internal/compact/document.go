package compact

import (
	"fmt"
	"strings"
)

// Section markers emitted literally in the document header and used as line
// prefixes in the body. Changing them changes the on-disk format contract.
const (
	// TreeMarker precedes the rendered directory tree section.
	TreeMarker = "@Tree"
	// IndexMarker prefixes index entries: @Index|<n>|<path>.
	IndexMarker = "@Index"
	// FileMarker prefixes file records: @F|<n>|<path>|<content>.
	FileMarker = "@F"
)

// buildHeader produces the leading comment block that explains the three
// section markers and whether file content is minified.
func buildHeader(minified bool) []string {
	return []string{
		"# Compaction document generated by code2context.",
		"# Sections are introduced by three markers:",
		"#   " + TreeMarker + "                       directory tree of the project",
		"#   " + IndexMarker + "|<n>|<path>           index entry for file n",
		"#   " + FileMarker + "|<n>|<path>|<content>  record carrying the content of file n",
		fmt.Sprintf("# Content minified: %t", minified),
		"# Records are one per line only when content is minified; raw content",
		"# may contain embedded newlines.",
	}
}

// assembleDocument concatenates header, optional tree section, index entries,
// and file records into the final document text. Index entries and file
// records reference the same 1-based sequence number for the same file.
func assembleDocument(minified bool, treeSection string, indexEntries []string, fileRecords []string) string {
	lines := buildHeader(minified)
	if treeSection != "" {
		lines = append(lines, TreeMarker)
		lines = append(lines, treeSection)
	}
	lines = append(lines, indexEntries...)
	lines = append(lines, fileRecords...)
	return strings.Join(lines, "\n")
}
