package nlp

import (
	"context"
	"time"
)

// admit reserves a queue slot and then an in-flight slot. Returns a release
// func to be deferred.
func (h *Host) admit(ctx context.Context) (func(), error) {
	// Fast path: respect an already-canceled context
	if err := ctx.Err(); err != nil {
		return func() {}, err
	}

	if h.draining.Load() {
		return func() {}, tooBusyError{reason: "draining"}
	}

	// Queue slots are not waited for; a full queue is immediate backpressure.
	select {
	case h.queueCh <- struct{}{}:
	default:
		return func() {}, tooBusyError{reason: "queue_full"}
	}

	acquired := false
	defer func() {
		if !acquired {
			<-h.queueCh
		}
	}()
	timer := time.NewTimer(h.maxWait)
	defer timer.Stop()
	select {
	case h.inflightCh <- struct{}{}:
		acquired = true
		return func() { <-h.inflightCh; <-h.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-timer.C:
		return func() {}, tooBusyError{reason: "wait_timeout"}
	}
}
