package process

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/scptdisplay/pkg/domain"
	"github.com/aretw0/scptdisplay/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	expectNotification = script.Expectation{Kind: domain.KindNotification}
	expectAlert        = script.Expectation{Kind: domain.KindAlert, Button: true}
	expectAlertTimed   = script.Expectation{Kind: domain.KindAlert, Button: true, GaveUp: true}
	expectDialog       = script.Expectation{Kind: domain.KindDialog, Button: true}
	expectDialogText   = script.Expectation{Kind: domain.KindDialog, Button: true, Text: true}
)

func TestClassify_LaunchFailure(t *testing.T) {
	cause := errors.New(`exec: "nope": executable file not found in $PATH`)
	out := Classify(Exit{Started: false, Err: cause, Code: domain.NoExitCode}, expectAlert, DefaultCancelMatcher())

	assert.Equal(t, domain.OutcomeLaunchFailure, out.Kind)
	assert.Equal(t, cause, out.Cause)
	assert.Equal(t, cause.Error(), out.Message)
}

func TestClassify_Cancelled(t *testing.T) {
	out := Classify(Exit{
		Started: true,
		Err:     errors.New("exit status 1"),
		Code:    1,
		Stderr:  "0:42: execution error: User canceled. (-128)\n",
	}, expectDialog, DefaultCancelMatcher())

	assert.Equal(t, domain.OutcomeCancelled, out.Kind)
	assert.NoError(t, out.Err())
}

func TestClassify_CancelPolicyIsInjectable(t *testing.T) {
	exit := Exit{Started: true, Code: 1, Err: errors.New("exit status 1"), Stderr: "Abgebrochen (-128)"}

	strict := SignatureMatcher{Substrings: []string{"(-128)"}, ExitCodes: []int{2}}
	assert.Equal(t, domain.OutcomeInterpreterError, Classify(exit, expectDialog, strict).Kind)

	custom := CancelMatcherFunc(func(code int, stderr string) bool { return code == 1 })
	assert.Equal(t, domain.OutcomeCancelled, Classify(exit, expectDialog, custom).Kind)

	assert.Equal(t, domain.OutcomeInterpreterError, Classify(exit, expectDialog, nil).Kind)
}

func TestClassify_InterpreterError(t *testing.T) {
	t.Run("Stderr Verbatim", func(t *testing.T) {
		out := Classify(Exit{
			Started: true,
			Err:     errors.New("exit status 1"),
			Code:    1,
			Stderr:  "0:12: syntax error: Expected end of line. (-2741)\n",
		}, expectAlert, DefaultCancelMatcher())

		assert.Equal(t, domain.OutcomeInterpreterError, out.Kind)
		assert.Equal(t, "0:12: syntax error: Expected end of line. (-2741)", out.Message)
		assert.Equal(t, 1, out.ExitCode)
	})

	t.Run("Exit Code When Stderr Empty", func(t *testing.T) {
		out := Classify(Exit{Started: true, Code: 3}, expectAlert, DefaultCancelMatcher())
		assert.Equal(t, domain.OutcomeInterpreterError, out.Kind)
		assert.Equal(t, "exit status 3", out.Message)
	})

	t.Run("Interrupted", func(t *testing.T) {
		out := Classify(Exit{
			Started:     true,
			Err:         errors.New("signal: killed"),
			Interrupted: context.DeadlineExceeded,
			Code:        -1,
			Stderr:      "User canceled. (-128)",
		}, expectDialog, DefaultCancelMatcher())

		assert.Equal(t, domain.OutcomeInterpreterError, out.Kind)
		assert.ErrorIs(t, out.Err(), context.DeadlineExceeded)
	})
}

func TestClassify_Confirmed(t *testing.T) {
	t.Run("Button Only", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:OK\n"}, expectAlert, DefaultCancelMatcher())

		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		assert.Equal(t, "OK", out.Button)
		assert.Nil(t, out.Text)
		assert.False(t, out.GaveUp)
	})

	t.Run("Text Answer", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:OK, text returned:Ada, Lovelace\n"}, expectDialogText, DefaultCancelMatcher())

		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		require.NotNil(t, out.Text)
		assert.Equal(t, "Ada, Lovelace", *out.Text)
	})

	t.Run("Unrequested Text Ignored", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:OK, text returned:x\n"}, expectDialog, DefaultCancelMatcher())
		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		assert.Nil(t, out.Text)
	})

	t.Run("Gave Up", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:, gave up:true\n"}, expectAlertTimed, DefaultCancelMatcher())

		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		assert.True(t, out.GaveUp)
		assert.Empty(t, out.Button)
	})

	t.Run("Typed Gave Up Without Timeout", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:OK, text returned:late, gave up:true\n"}, expectDialogText, DefaultCancelMatcher())

		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		assert.False(t, out.GaveUp)
		assert.Equal(t, "OK", out.Button)
		require.NotNil(t, out.Text)
		assert.Equal(t, "late, gave up:true", *out.Text)
	})

	t.Run("Typed Button Key", func(t *testing.T) {
		out := Classify(Exit{Started: true, Stdout: "button returned:OK, text returned:a, button returned:b\n"}, expectDialogText, DefaultCancelMatcher())

		require.Equal(t, domain.OutcomeConfirmed, out.Kind)
		assert.Equal(t, "OK", out.Button)
		require.NotNil(t, out.Text)
		assert.Equal(t, "a, button returned:b", *out.Text)
	})

	t.Run("Notification Needs Nothing", func(t *testing.T) {
		out := Classify(Exit{Started: true}, expectNotification, DefaultCancelMatcher())
		assert.Equal(t, domain.OutcomeConfirmed, out.Kind)
	})
}

func TestClassify_MissingFieldsAreErrors(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		expect script.Expectation
		key    string
	}{
		{"No Output", "", expectAlert, domain.KeyButtonReturned},
		{"Garbage", "something else\n", expectDialog, domain.KeyButtonReturned},
		{"Missing Text", "button returned:OK\n", expectDialogText, domain.KeyTextReturned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify(Exit{Started: true, Stdout: tt.stdout}, tt.expect, DefaultCancelMatcher())
			assert.Equal(t, domain.OutcomeInterpreterError, out.Kind)
			assert.Contains(t, out.Message, tt.key)
		})
	}
}
