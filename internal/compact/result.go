package compact

import "fmt"

// Result is the outcome of one engine invocation. There is no partial
// success: either OK is true and Document carries the full assembled text, or
// OK is false and ErrorMessage carries the one reported reason.
type Result struct {
	OK           bool
	Document     string
	ErrorMessage string
}

func successResult(document string) Result {
	return Result{OK: true, Document: document}
}

func failureResult(format string, arguments ...any) Result {
	return Result{ErrorMessage: fmt.Sprintf(format, arguments...)}
}
