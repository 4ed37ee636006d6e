// Package workers runs the background jobs of the client as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must return promptly and do its work on its own goroutines until ctx
// is cancelled or Stop is called. Stop blocks until the job has exited and
// must be safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
