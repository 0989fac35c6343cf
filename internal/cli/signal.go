package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptedError is the cancellation cause of a SignalContext that received a signal.
type InterruptedError struct {
	Signal os.Signal
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted by %s", e.Signal)
}

// SignalContext is cancelled on SIGINT or SIGTERM, which kills a prompt still on screen.
// The signal becomes the context's cause, so context.Cause reports it.
type SignalContext struct {
	context.Context
	cancel  context.CancelCauseFunc
	sigCh   chan os.Signal
	release sync.Once
}

// NewSignalContext starts listening for SIGINT and SIGTERM until Stop is called.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancelCause(parent)
	sc := &SignalContext{
		Context: ctx,
		cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			cancel(&InterruptedError{Signal: sig})
		case <-ctx.Done():
		}
		sc.unregister()
	}()

	return sc
}

// Stop cancels the context and restores default signal handling.
func (sc *SignalContext) Stop() {
	sc.cancel(nil)
	sc.unregister()
}

func (sc *SignalContext) unregister() {
	sc.release.Do(func() {
		signal.Stop(sc.sigCh)
	})
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	var ie *InterruptedError
	if errors.As(context.Cause(sc.Context), &ie) {
		return ie.Signal
	}
	return nil
}
