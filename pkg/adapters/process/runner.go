package process

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/aretw0/scptdisplay/pkg/domain"
	"github.com/aretw0/scptdisplay/pkg/script"
)

// DefaultInterpreter is resolved through PATH.
const DefaultInterpreter = "osascript"

// Runner executes rendered scripts with an AppleScript interpreter.
// It holds no per-call state and is safe for concurrent use.
type Runner struct {
	args       []string
	scriptFlag string
	env        []string
	matcher    CancelMatcher
	logger     *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithArgs replaces the interpreter arguments placed before the script.
// The default "-" makes osascript read the program from stdin.
func WithArgs(args ...string) RunnerOption {
	return func(r *Runner) {
		r.args = args
	}
}

// WithScriptFlag passes the script as the value of flag (e.g. "-e") instead of on stdin.
func WithScriptFlag(flag string) RunnerOption {
	return func(r *Runner) {
		r.scriptFlag = flag
	}
}

// WithEnv adds KEY=VALUE pairs to the inherited environment.
func WithEnv(env ...string) RunnerOption {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// WithCancelMatcher sets the policy that recognises user cancellation.
func WithCancelMatcher(m CancelMatcher) RunnerOption {
	return func(r *Runner) {
		r.matcher = m
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that feeds scripts to the interpreter on stdin.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		args:    []string{"-"},
		matcher: DefaultCancelMatcher(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Invoke runs s with the interpreter at interpreterPath and waits for it to exit.
// There is exactly one attempt. Failures are reported through the Outcome, never as a panic.
func (r *Runner) Invoke(ctx context.Context, s script.Script, interpreterPath string) domain.Outcome {
	args := r.args
	if r.scriptFlag != "" {
		args = append(append([]string{}, r.args...), r.scriptFlag, s.Source())
	}

	cmd := exec.CommandContext(ctx, interpreterPath, args...)
	if r.scriptFlag == "" {
		cmd.Stdin = strings.NewReader(s.Source())
	}
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Invoking interpreter",
		"interpreter", interpreterPath,
		"args", args,
		"kind", s.Expect().Kind,
		"script", s.Source(),
	)

	err := cmd.Run()

	exit := Exit{
		Started: cmd.Process != nil,
		Err:     err,
		Code:    domain.NoExitCode,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	if cmd.ProcessState != nil {
		exit.Code = cmd.ProcessState.ExitCode()
	}
	if exit.Started && err != nil && ctx.Err() != nil {
		exit.Interrupted = context.Cause(ctx)
	}

	out := Classify(exit, s.Expect(), r.matcher)
	if out.Kind == domain.OutcomeConfirmed || out.Kind == domain.OutcomeCancelled {
		r.logger.Debug("Interpreter finished", "outcome", out.Kind, "exit_code", out.ExitCode)
	} else {
		r.logger.Warn("Interpreter failed", "outcome", out.Kind, "exit_code", out.ExitCode, "error", out.Message)
	}
	return out
}
