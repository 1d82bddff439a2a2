// Package clipboard copies generated documents to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyDocument writes the document text to the system clipboard.
func CopyDocument(document string) error {
	if writeError := clipboard.WriteAll(document); writeError != nil {
		return fmt.Errorf("copy document to clipboard: %w", writeError)
	}
	return nil
}
