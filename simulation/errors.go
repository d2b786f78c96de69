package simulation

import (
	"fmt"
	"strings"
)

// WorkerFailure is one worker's captured error.
type WorkerFailure struct {
	WorkerID int
	Message  string
}

// WorkerFailureError aggregates every failing worker in one
// diagnostic. The run aborts with all of them, not the first.
type WorkerFailureError struct {
	Failures []WorkerFailure
}

func (e *WorkerFailureError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("worker %d: %s", f.WorkerID, f.Message)
	}
	return fmt.Sprintf("run aborted, %d worker(s) failed: %s", len(e.Failures), strings.Join(parts, "; "))
}

// ConsistencyError means the merged result array had unfilled slots: a
// session's result was lost without any worker reporting a failure.
// Always fatal to the run.
type ConsistencyError struct {
	MissingResultIDs []int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("result merge left %d slot(s) unfilled (first missing result id %d)",
		len(e.MissingResultIDs), e.MissingResultIDs[0])
}
