package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

// Script is rendered AppleScript source together with what its result must contain.
type Script struct {
	source string
	expect Expectation
}

// Expectation describes the fields a successful run of a script prints on stdout.
type Expectation struct {
	Kind   domain.Kind
	Button bool // "button returned" is required unless the prompt gave up
	Text   bool // "text returned" is required
	GaveUp bool // "gave up" may be reported
}

// Keys lists the record keys the script can print, in the order osascript prints them.
func (e Expectation) Keys() []string {
	var keys []string
	if e.Button {
		keys = append(keys, domain.KeyButtonReturned)
	}
	if e.Text {
		keys = append(keys, domain.KeyTextReturned)
	}
	if e.GaveUp {
		keys = append(keys, domain.KeyGaveUp)
	}
	return keys
}

// Source returns the script text, terminated by a single newline.
func (s Script) Source() string { return s.source }

// Expect returns what the interpreter must print for this script to count as confirmed.
func (s Script) Expect() Expectation { return s.expect }

func (s Script) String() string { return s.source }

// clause is an optional labeled parameter appended to the base command.
// render is only called when present is true.
type clause struct {
	label   string
	present bool
	render  func() string
}

func assemble(command string, clauses []clause) string {
	var b strings.Builder
	b.WriteString(command)
	for _, c := range clauses {
		if !c.present {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(c.label)
		if c.render != nil {
			b.WriteByte(' ')
			b.WriteString(c.render())
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Render validates req and renders it. No script is returned when validation fails.
func Render(req domain.Request) (Script, error) {
	if err := domain.Validate(req); err != nil {
		return Script{}, err
	}

	switch r := req.(type) {
	case domain.Notification:
		return Script{
			source: renderNotification(r),
			expect: Expectation{Kind: domain.KindNotification},
		}, nil
	case *domain.Notification:
		return Render(*r)
	case domain.Alert:
		return Script{
			source: renderAlert(r),
			expect: Expectation{Kind: domain.KindAlert, Button: true, GaveUp: r.GivingUpAfter > 0},
		}, nil
	case *domain.Alert:
		return Render(*r)
	case domain.Dialog:
		return Script{
			source: renderDialog(r),
			expect: Expectation{
				Kind:   domain.KindDialog,
				Button: true,
				Text:   r.HasTextField(),
				GaveUp: r.GivingUpAfter > 0,
			},
		}, nil
	case *domain.Dialog:
		return Render(*r)
	}
	return Script{}, fmt.Errorf("%w: unsupported request type %T", domain.ErrInvalidRequest, req)
}

func renderNotification(n domain.Notification) string {
	return assemble("display notification "+Quote(n.Message), []clause{
		{label: "with title", present: true, render: func() string { return Quote(n.Title) }},
		{label: "subtitle", present: n.Subtitle != "", render: func() string { return Quote(n.Subtitle) }},
		{label: "sound name", present: n.SoundName != "", render: func() string { return Quote(n.SoundName) }},
	})
}

func renderAlert(a domain.Alert) string {
	return assemble("display alert "+Quote(a.Message), []clause{
		{label: "message", present: a.Explanation != "", render: func() string { return Quote(a.Explanation) }},
		{label: "as", present: a.Icon != domain.IconNone, render: func() string { return alertType(a.Icon) }},
		{label: "buttons", present: len(a.Buttons) > 0, render: func() string { return List(a.Buttons) }},
		{label: "default button", present: !a.DefaultButton.IsZero(), render: func() string { return buttonRef(a.DefaultButton) }},
		{label: "cancel button", present: !a.CancelButton.IsZero(), render: func() string { return buttonRef(a.CancelButton) }},
		{label: "giving up after", present: a.GivingUpAfter > 0, render: func() string { return strconv.Itoa(a.GivingUpAfter) }},
	})
}

func renderDialog(d domain.Dialog) string {
	return assemble("display dialog "+Quote(d.Message), []clause{
		{label: "default answer", present: d.DefaultAnswer != nil, render: func() string { return Quote(*d.DefaultAnswer) }},
		{label: "with hidden answer", present: d.HiddenAnswer},
		{label: "buttons", present: len(d.Buttons) > 0, render: func() string { return List(d.Buttons) }},
		{label: "default button", present: !d.DefaultButton.IsZero(), render: func() string { return buttonRef(d.DefaultButton) }},
		{label: "cancel button", present: !d.CancelButton.IsZero(), render: func() string { return buttonRef(d.CancelButton) }},
		{label: "with title", present: d.Title != "", render: func() string { return Quote(d.Title) }},
		{label: "with icon", present: d.Icon != domain.IconNone, render: func() string { return d.Icon.String() }},
		{label: "giving up after", present: d.GivingUpAfter > 0, render: func() string { return strconv.Itoa(d.GivingUpAfter) }},
	})
}

// buttonRef renders a positional reference as a bare integer and a label as a string.
func buttonRef(r domain.ButtonRef) string {
	if r.IsIndex() {
		return strconv.Itoa(r.Index)
	}
	return Quote(r.Name)
}

// alertType maps an icon onto the alert's "as" parameter.
func alertType(k domain.IconKind) string {
	switch k {
	case domain.IconStop:
		return "critical"
	case domain.IconCaution:
		return "warning"
	default:
		return "informational"
	}
}
