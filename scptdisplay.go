package scptdisplay

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/scptdisplay/pkg/adapters/process"
	"github.com/aretw0/scptdisplay/pkg/domain"
	"github.com/aretw0/scptdisplay/pkg/script"
)

// Display is the high-level entry point: validate, render, invoke, classify.
type Display struct {
	interpreter string
	runnerOpts  []process.RunnerOption
	runner      *process.Runner
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Display.
type Option func(*Display)

// WithInterpreter sets the interpreter path or name (default "osascript", resolved via PATH).
func WithInterpreter(path string) Option {
	return func(d *Display) {
		d.interpreter = path
	}
}

// WithCancelMatcher sets the policy that recognises a user cancellation.
func WithCancelMatcher(m process.CancelMatcher) Option {
	return func(d *Display) {
		d.runnerOpts = append(d.runnerOpts, process.WithCancelMatcher(m))
	}
}

// WithRunnerOptions passes options through to the underlying process runner.
func WithRunnerOptions(opts ...process.RunnerOption) Option {
	return func(d *Display) {
		d.runnerOpts = append(d.runnerOpts, opts...)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Display) {
		d.logger = logger
	}
}

// New creates a Display.
func New(opts ...Option) *Display {
	d := &Display{interpreter: process.DefaultInterpreter}
	for _, opt := range opts {
		opt(d)
	}
	if d.interpreter == "" {
		d.interpreter = process.DefaultInterpreter
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Logger first so an explicit runner logger option still wins.
	runnerOpts := append([]process.RunnerOption{process.WithLogger(d.logger)}, d.runnerOpts...)
	d.runner = process.NewRunner(runnerOpts...)
	return d
}

// Interpreter returns the interpreter this Display invokes.
func (d *Display) Interpreter() string {
	return d.interpreter
}

// Notify posts a notification. A confirmed outcome only means the banner was dispatched.
func (d *Display) Notify(ctx context.Context, n domain.Notification) (domain.Outcome, error) {
	return d.Show(ctx, n)
}

// Alert shows an alert and reports the button pressed.
func (d *Display) Alert(ctx context.Context, a domain.Alert) (domain.Outcome, error) {
	return d.Show(ctx, a)
}

// Dialog shows a dialog and reports the button pressed and, if a text field was shown, the text.
func (d *Display) Dialog(ctx context.Context, dl domain.Dialog) (domain.Outcome, error) {
	return d.Show(ctx, dl)
}

// Show renders and runs any request.
// The error is non-nil only for invalid requests, in which case no process is started.
func (d *Display) Show(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	s, err := script.Render(req)
	if err != nil {
		d.logger.Debug("Request rejected", "error", err)
		return domain.Outcome{}, err
	}
	return d.runner.Invoke(ctx, s, d.interpreter), nil
}
