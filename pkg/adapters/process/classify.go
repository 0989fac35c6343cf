package process

import (
	"fmt"
	"strings"

	"github.com/aretw0/scptdisplay/pkg/domain"
	"github.com/aretw0/scptdisplay/pkg/script"
)

// Exit is everything observed about one interpreter run.
type Exit struct {
	Started     bool   // false when the process could not be started
	Err         error  // error from exec; *exec.ExitError for a non-zero status
	Interrupted error  // cause of the caller's context, if it ended the run
	Code        int    // exit status, domain.NoExitCode if unknown
	Stdout      string
	Stderr      string
}

// Classify maps an interpreter run onto an Outcome. Rules, first match wins:
//
//  1. the process never started: LaunchFailure
//  2. the caller's context ended the run: InterpreterError
//  3. non-zero status and the matcher recognises a cancellation: Cancelled
//  4. non-zero status (or any exec error): InterpreterError with stderr, or the status if stderr is empty
//  5. zero status: Confirmed, provided stdout carries every field expect requires
func Classify(exit Exit, expect script.Expectation, matcher CancelMatcher) domain.Outcome {
	if !exit.Started {
		return domain.LaunchFailure(exit.Err)
	}

	if exit.Interrupted != nil {
		out := domain.InterpreterError(exit.Code, "interpreter interrupted: "+exit.Interrupted.Error())
		out.Cause = exit.Interrupted
		return out
	}

	if exit.Code != 0 || exit.Err != nil {
		if exit.Code != 0 && matcher != nil && matcher.IsCancellation(exit.Code, exit.Stderr) {
			return domain.Cancelled(exit.Code, strings.TrimSpace(exit.Stderr))
		}
		out := domain.InterpreterError(exit.Code, failureMessage(exit))
		out.Cause = exit.Err
		return out
	}

	return confirm(exit, expect)
}

func failureMessage(exit Exit) string {
	if msg := strings.TrimSpace(exit.Stderr); msg != "" {
		return msg
	}
	if exit.Err != nil {
		return exit.Err.Error()
	}
	return fmt.Sprintf("exit status %d", exit.Code)
}

func confirm(exit Exit, expect script.Expectation) domain.Outcome {
	if expect.Kind == domain.KindNotification {
		out := domain.Confirmed("", nil)
		out.Raw = exit.Stdout
		return out
	}

	rec := ParseRecord(exit.Stdout, expect.Keys()...)
	gaveUp := expect.GaveUp && rec[domain.KeyGaveUp] == "true"

	button, hasButton := rec[domain.KeyButtonReturned]
	if expect.Button && !hasButton && !gaveUp {
		return missingField(exit, domain.KeyButtonReturned)
	}

	var text *string
	if expect.Text {
		t, ok := rec[domain.KeyTextReturned]
		switch {
		case ok:
			text = &t
		case !gaveUp:
			return missingField(exit, domain.KeyTextReturned)
		}
	}

	out := domain.Confirmed(button, text)
	out.GaveUp = gaveUp
	out.Record = rec
	out.Raw = exit.Stdout
	return out
}

func missingField(exit Exit, key string) domain.Outcome {
	out := domain.InterpreterError(exit.Code, fmt.Sprintf("unexpected interpreter output %q: missing %q", exit.Stdout, key))
	out.Raw = exit.Stdout
	return out
}
