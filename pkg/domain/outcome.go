package domain

import "fmt"

// OutcomeKind classifies how an invocation ended.
type OutcomeKind string

const (
	OutcomeConfirmed        OutcomeKind = "confirmed"
	OutcomeCancelled        OutcomeKind = "cancelled"
	OutcomeInterpreterError OutcomeKind = "interpreter_error"
	OutcomeLaunchFailure    OutcomeKind = "launch_failure"
)

// NoExitCode is reported when no process exit status exists (launch failures).
const NoExitCode = -1

// Record keys printed by the interpreter for alerts and dialogs.
const (
	KeyButtonReturned = "button returned"
	KeyTextReturned   = "text returned"
	KeyGaveUp         = "gave up"
)

// Outcome is the terminal state of a single prompt invocation.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	// Confirmed
	Button string            `json:"button,omitempty"`
	Text   *string           `json:"text,omitempty"` // Set only when the dialog showed a text field
	GaveUp bool              `json:"gave_up,omitempty"`
	Record map[string]string `json:"record,omitempty"`
	Raw    string            `json:"raw,omitempty"`

	// InterpreterError, LaunchFailure
	Message  string `json:"message,omitempty"`
	ExitCode int    `json:"exit_code"`
	Cause    error  `json:"-"`
}

// Confirmed builds a successful outcome.
func Confirmed(button string, text *string) Outcome {
	return Outcome{Kind: OutcomeConfirmed, Button: button, Text: text}
}

// Cancelled builds the outcome for a prompt the user dismissed.
func Cancelled(exitCode int, stderr string) Outcome {
	return Outcome{Kind: OutcomeCancelled, ExitCode: exitCode, Message: stderr}
}

// InterpreterError builds the outcome for an interpreter that ran but failed.
func InterpreterError(exitCode int, message string) Outcome {
	return Outcome{Kind: OutcomeInterpreterError, ExitCode: exitCode, Message: message}
}

// LaunchFailure builds the outcome for an interpreter that could not be started.
func LaunchFailure(cause error) Outcome {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return Outcome{Kind: OutcomeLaunchFailure, ExitCode: NoExitCode, Message: msg, Cause: cause}
}

// Err returns nil for confirmed and cancelled outcomes and an *InvocationError otherwise.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeConfirmed, OutcomeCancelled:
		return nil
	}
	return &InvocationError{Kind: o.Kind, ExitCode: o.ExitCode, Message: o.Message, Cause: o.Cause}
}

// InvocationError carries the interpreter's own message verbatim.
type InvocationError struct {
	Kind     OutcomeKind
	ExitCode int
	Message  string
	Cause    error
}

func (e *InvocationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s (exit status %d)", e.Kind, e.ExitCode)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}
