package script

import (
	"strings"
	"testing"

	"github.com/aretw0/scptdisplay/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRender_Notification(t *testing.T) {
	tests := []struct {
		name string
		req  domain.Notification
		want string
	}{
		{
			name: "Title Only",
			req:  domain.Notification{Title: "Build"},
			want: "display notification \"\" with title \"Build\"\n",
		},
		{
			name: "All Fields",
			req:  domain.Notification{Title: "Build", Message: "done", Subtitle: "main", SoundName: "Glass"},
			want: "display notification \"done\" with title \"Build\" subtitle \"main\" sound name \"Glass\"\n",
		},
		{
			name: "Sound Without Subtitle",
			req:  domain.Notification{Title: "T", SoundName: "Ping"},
			want: "display notification \"\" with title \"T\" sound name \"Ping\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Source())
			assert.Equal(t, Expectation{Kind: domain.KindNotification}, got.Expect())
		})
	}
}

func TestRender_Alert(t *testing.T) {
	tests := []struct {
		name string
		req  domain.Alert
		want string
	}{
		{
			name: "Message Only",
			req:  domain.Alert{Message: "Disk full"},
			want: "display alert \"Disk full\"\n",
		},
		{
			name: "All Clauses In Order",
			req: domain.Alert{
				Message:       "Delete?",
				Explanation:   "This cannot be undone.",
				Icon:          domain.IconStop,
				Buttons:       []string{"Keep", "Delete"},
				DefaultButton: domain.ButtonNamed("Delete"),
				CancelButton:  domain.ButtonAt(1),
				GivingUpAfter: 10,
			},
			want: "display alert \"Delete?\" message \"This cannot be undone.\" as critical buttons {\"Keep\", \"Delete\"} default button \"Delete\" cancel button 1 giving up after 10\n",
		},
		{
			name: "Caution Is Warning",
			req:  domain.Alert{Message: "m", Icon: domain.IconCaution},
			want: "display alert \"m\" as warning\n",
		},
		{
			name: "Default Button Against Implicit OK",
			req:  domain.Alert{Message: "m", DefaultButton: domain.ButtonNamed("OK")},
			want: "display alert \"m\" default button \"OK\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Source())
			assert.True(t, got.Expect().Button)
			assert.False(t, got.Expect().Text)
		})
	}
}

func TestRender_Dialog(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.Dialog
		want     string
		wantText bool
	}{
		{
			name: "Message Only",
			req:  domain.Dialog{Message: "Continue?"},
			want: "display dialog \"Continue?\"\n",
		},
		{
			name:     "Empty Text Field",
			req:      domain.Dialog{Message: "Name?", DefaultAnswer: ptr("")},
			want:     "display dialog \"Name?\" default answer \"\"\n",
			wantText: true,
		},
		{
			name: "All Clauses In Order",
			req: domain.Dialog{
				Message:       "Password",
				DefaultAnswer: ptr("hunter2"),
				HiddenAnswer:  true,
				Buttons:       []string{"Cancel", "Unlock"},
				DefaultButton: domain.ButtonAt(2),
				CancelButton:  domain.ButtonNamed("Cancel"),
				Title:         "Vault",
				Icon:          domain.IconCaution,
				GivingUpAfter: 30,
			},
			want: "display dialog \"Password\" default answer \"hunter2\" with hidden answer buttons {\"Cancel\", \"Unlock\"} default button 2 cancel button \"Cancel\" with title \"Vault\" with icon caution giving up after 30\n",
			wantText: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Source())
			assert.Equal(t, tt.wantText, got.Expect().Text)
		})
	}
}

func TestRender_ExpectedKeys(t *testing.T) {
	tests := []struct {
		name string
		req  domain.Request
		want []string
	}{
		{"Notification", domain.Notification{Title: "t"}, nil},
		{"Alert", domain.Alert{Message: "m"}, []string{domain.KeyButtonReturned}},
		{"Timed Alert", domain.Alert{Message: "m", GivingUpAfter: 5}, []string{domain.KeyButtonReturned, domain.KeyGaveUp}},
		{"Dialog", domain.Dialog{Message: "m"}, []string{domain.KeyButtonReturned}},
		{
			name: "Timed Dialog With Field",
			req:  domain.Dialog{Message: "m", DefaultAnswer: ptr(""), GivingUpAfter: 5},
			want: []string{domain.KeyButtonReturned, domain.KeyTextReturned, domain.KeyGaveUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Expect().Keys())
		})
	}
}

func TestRender_Pointer(t *testing.T) {
	got, err := Render(&domain.Dialog{Message: "x"})
	require.NoError(t, err)
	assert.Equal(t, "display dialog \"x\"\n", got.Source())
}

func TestRender_ButtonsClauseIffPresent(t *testing.T) {
	lists := [][]string{
		nil,
		{"One"},
		{"Second", "First"},
		{"c", "b", "a"},
	}

	for _, buttons := range lists {
		alert, err := Render(domain.Alert{Message: "m", Buttons: buttons})
		require.NoError(t, err)
		dialog, err := Render(domain.Dialog{Message: "m", Buttons: buttons})
		require.NoError(t, err)

		for _, src := range []string{alert.Source(), dialog.Source()} {
			if len(buttons) == 0 {
				assert.NotContains(t, src, " buttons ")
				continue
			}
			assert.Contains(t, src, " buttons "+List(buttons))
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	reqs := []domain.Request{
		domain.Notification{Title: "t", Subtitle: "s", SoundName: "n", Message: "m"},
		domain.Alert{Message: "m", Buttons: []string{"a", "b"}, DefaultButton: domain.ButtonAt(1)},
		domain.Dialog{Message: "m", DefaultAnswer: ptr("x"), HiddenAnswer: true, Icon: domain.IconNote},
	}

	for _, req := range reqs {
		first, err := Render(req)
		require.NoError(t, err)
		second, err := Render(req)
		require.NoError(t, err)
		assert.Equal(t, first.Source(), second.Source())
	}
}

func TestRender_DoesNotMutateRequest(t *testing.T) {
	buttons := []string{"A", `B"`}
	req := domain.Alert{Message: "m", Buttons: buttons}

	_, err := Render(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", `B"`}, buttons)
}

func TestRender_HostileTextStaysInLiteral(t *testing.T) {
	hostile := "x\" buttons {\"Pwned\"}\ndo shell script \"id"
	got, err := Render(domain.Dialog{Message: hostile, Title: hostile})
	require.NoError(t, err)

	src := got.Source()
	assert.Equal(t, 1, strings.Count(src, "\n"), "script must stay a single statement")
	assert.Equal(t, "display dialog "+Quote(hostile)+" with title "+Quote(hostile)+"\n", src)
}

func TestRender_ValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		req   domain.Request
		field string
	}{
		{"No Buttons Alert", domain.Alert{Message: "m", Buttons: []string{}}, "buttons"},
		{"No Buttons Dialog", domain.Dialog{Message: "m", Buttons: []string{}}, "buttons"},
		{"Four Buttons", domain.Dialog{Message: "m", Buttons: []string{"1", "2", "3", "4"}}, "buttons"},
		{"Dangling Default", domain.Alert{Message: "m", Buttons: []string{"A"}, DefaultButton: domain.ButtonNamed("B")}, "default_button"},
		{"Dangling Cancel Index", domain.Dialog{Message: "m", Buttons: []string{"A"}, CancelButton: domain.ButtonAt(2)}, "cancel_button"},
		{"Hidden Without Answer", domain.Dialog{Message: "m", HiddenAnswer: true}, "hidden_answer"},
		{"Missing Title", domain.Notification{Message: "m"}, "title"},
		{"Nil Request", nil, "request"},
		{"Nil Notification Pointer", (*domain.Notification)(nil), "request"},
		{"Nil Alert Pointer", (*domain.Alert)(nil), "request"},
		{"Nil Dialog Pointer", (*domain.Dialog)(nil), "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Empty(t, got.Source())

			errs := domain.ValidationErrors(err)
			require.NotEmpty(t, errs)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.(*domain.ValidationError).Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}
