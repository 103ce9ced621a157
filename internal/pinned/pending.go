package pinned

import (
	"context"
	"log"
)

// Pending reports the outcome of background work started by a mutation.
// A nil *Pending is complete and successful.
type Pending struct {
	name string
	done chan struct{}
	err  error
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// startPending runs fn on its own goroutine once after has finished
func startPending(name string, after *Pending, fn func() error) *Pending {
	p := &Pending{name: name, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		if after != nil {
			<-after.done
		}
		if err := fn(); err != nil {
			log.Printf("pinned: %s failed: %v", name, err)
			p.err = err
		}
	}()
	return p
}

// Done is closed when the work has finished
func (p *Pending) Done() <-chan struct{} {
	if p == nil {
		return closedDone
	}
	return p.done
}

// Err returns the work's error once finished, nil before that
func (p *Pending) Err() error {
	if p == nil {
		return nil
	}
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the work finishes or ctx is done
func (p *Pending) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
