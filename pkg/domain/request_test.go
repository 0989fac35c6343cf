package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	empty := ""
	reqs := []Request{
		Notification{Title: "t"},
		Alert{Message: "m"},
		Alert{Message: "m", Buttons: []string{"A", "B", "C"}, DefaultButton: ButtonAt(3), CancelButton: ButtonNamed("A")},
		Alert{Message: "m", CancelButton: ButtonNamed("OK")},
		Dialog{Message: "m", DefaultButton: ButtonNamed("OK"), CancelButton: ButtonNamed("Cancel")},
		Dialog{Message: "m", DefaultAnswer: &empty, HiddenAnswer: true},
		Dialog{Message: "m", Buttons: []string{"Go"}, DefaultButton: ButtonAt(1), CancelButton: ButtonAt(1)},
	}

	for _, req := range reqs {
		assert.NoError(t, Validate(req), "%#v", req)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		fields []string
	}{
		{"Nil", nil, []string{"request"}},
		{"Nil Notification Pointer", (*Notification)(nil), []string{"request"}},
		{"Nil Alert Pointer", (*Alert)(nil), []string{"request"}},
		{"Nil Dialog Pointer", (*Dialog)(nil), []string{"request"}},
		{"Empty Title", Notification{}, []string{"title"}},
		{"Empty Button List", Alert{Message: "m", Buttons: []string{}}, []string{"buttons"}},
		{"Too Many Buttons", Alert{Message: "m", Buttons: []string{"a", "b", "c", "d"}}, []string{"buttons"}},
		{"Duplicate Buttons", Dialog{Message: "m", Buttons: []string{"a", "a"}}, []string{"buttons"}},
		{"Default Not Listed", Dialog{Message: "m", Buttons: []string{"a"}, DefaultButton: ButtonNamed("b")}, []string{"default_button"}},
		{"Default Against Implicit Buttons", Alert{Message: "m", DefaultButton: ButtonNamed("Cancel")}, []string{"default_button"}},
		{"Index Out Of Range", Dialog{Message: "m", CancelButton: ButtonAt(3)}, []string{"cancel_button"}},
		{"Hidden Without Field", Dialog{Message: "m", HiddenAnswer: true}, []string{"hidden_answer"}},
		{"Negative Timeout", Alert{Message: "m", GivingUpAfter: -1}, []string{"giving_up_after"}},
		{"Bad Icon", Dialog{Message: "m", Icon: IconKind(9)}, []string{"icon"}},
		{"Several At Once", Dialog{HiddenAnswer: true, Buttons: []string{}}, []string{"message", "hidden_answer", "buttons"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))

			var fields []string
			for _, e := range ValidationErrors(err) {
				var ve *ValidationError
				require.True(t, errors.As(e, &ve))
				fields = append(fields, ve.Field)
			}
			for _, f := range tt.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestAggregateError_Message(t *testing.T) {
	one := &AggregateError{Errors: []error{&ValidationError{Field: "title", Reason: "is required"}}}
	assert.Equal(t, `field "title": is required`, one.Error())

	two := &AggregateError{Errors: []error{
		&ValidationError{Field: "a", Reason: "x"},
		&ValidationError{Field: "b", Reason: "y"},
	}}
	assert.Equal(t, "2 validation errors:\n  1. field \"a\": x\n  2. field \"b\": y\n", two.Error())
}

func TestParseButtonRef(t *testing.T) {
	assert.Equal(t, ButtonRef{}, ParseButtonRef(""))
	assert.Equal(t, ButtonAt(2), ParseButtonRef("2"))
	assert.Equal(t, ButtonNamed("OK"), ParseButtonRef("OK"))
	assert.Equal(t, ButtonNamed("0"), ParseButtonRef("0"))
	assert.Equal(t, ButtonNamed("256"), ParseButtonRef("256"))
}

func TestParseIconKind(t *testing.T) {
	for in, want := range map[string]IconKind{
		"":        IconNone,
		"none":    IconNone,
		"stop":    IconStop,
		"0":       IconStop,
		"Note":    IconNote,
		"1":       IconNote,
		"caution": IconCaution,
		"2":       IconCaution,
	} {
		got, err := ParseIconKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseIconKind("smiley")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestOutcome_Err(t *testing.T) {
	assert.NoError(t, Confirmed("OK", nil).Err())
	assert.NoError(t, Cancelled(1, "User canceled.").Err())

	err := InterpreterError(1, "syntax error")
	assert.EqualError(t, err.Err(), "syntax error")

	cause := errors.New("exec: not found")
	launch := LaunchFailure(cause)
	assert.Equal(t, NoExitCode, launch.ExitCode)
	assert.ErrorIs(t, launch.Err(), cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAlert, KindOf(Alert{}))
	assert.Equal(t, KindDialog, KindOf(&Dialog{}))
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, Kind(""), KindOf((*Notification)(nil)))
}
