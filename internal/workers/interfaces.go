// Package workers runs background jobs for the lifetime of a context.
// It defines the Worker interface and a Workers aggregate that starts
// several workers together and waits for all of them to return.
package workers

import "context"

// Worker is a background job. Run blocks until the job is done or ctx is
// cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts an ordinary function to [Worker].
type Func func(ctx context.Context)

func (f Func) Run(ctx context.Context) { f(ctx) }
