package llm

import (
	"context"
	"fmt"
)

// Client is the completion side of the enrichment pipeline.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionError reports a failed completion call. Retryable marks
// failures worth repeating (network drops, timeouts, upstream 5xx);
// auth and quota failures are final.
type CompletionError struct {
	Retryable bool
	Status    int // upstream HTTP status, 0 for transport failures
	Message   string
}

func (e *CompletionError) Error() string {
	kind := "non-retryable"
	if e.Retryable {
		kind = "retryable"
	}
	if e.Status != 0 {
		return fmt.Sprintf("completion failed (%s, status %d): %s", kind, e.Status, e.Message)
	}
	return fmt.Sprintf("completion failed (%s): %s", kind, e.Message)
}
