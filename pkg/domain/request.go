package domain

// Kind identifies which AppleScript command a Request renders to.
type Kind string

const (
	KindNotification Kind = "notification"
	KindAlert        Kind = "alert"
	KindDialog       Kind = "dialog"
)

// MaxButtons is the most buttons an alert or dialog can carry.
const MaxButtons = 3

// Request is a prompt to show: a Notification, an Alert or a Dialog.
type Request interface {
	Kind() Kind
	// Validate reports every structural problem with the request as an *AggregateError.
	Validate() error
}

// Notification posts a banner through the Notification Center.
type Notification struct {
	Title     string `json:"title" yaml:"title" mapstructure:"title"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty" mapstructure:"message"`       // Body text
	Subtitle  string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" mapstructure:"subtitle"`    // Empty means no subtitle
	SoundName string `json:"sound_name,omitempty" yaml:"sound_name,omitempty" mapstructure:"sound_name"` // Base name of a sound in Library/Sounds
}

// Alert shows a standard alert with emphasized message text.
type Alert struct {
	Message     string `json:"message" yaml:"message" mapstructure:"message"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty" mapstructure:"explanation"`

	// Buttons is nil for the interpreter's default single "OK" button.
	// A non-nil empty slice is an explicit empty list and fails validation.
	Buttons       []string  `json:"buttons,omitempty" yaml:"buttons,omitempty" mapstructure:"buttons"`
	DefaultButton ButtonRef `json:"default_button,omitempty" yaml:"default_button,omitempty" mapstructure:"default_button"`
	CancelButton  ButtonRef `json:"cancel_button,omitempty" yaml:"cancel_button,omitempty" mapstructure:"cancel_button"`

	Icon          IconKind `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
	GivingUpAfter int      `json:"giving_up_after,omitempty" yaml:"giving_up_after,omitempty" mapstructure:"giving_up_after"` // Seconds; 0 waits forever
}

// Dialog shows a dialog with buttons and an optional text field.
type Dialog struct {
	Message string `json:"message" yaml:"message" mapstructure:"message"`

	// DefaultAnswer enables the text field when non-nil. Point it at "" for an empty field.
	DefaultAnswer *string `json:"default_answer,omitempty" yaml:"default_answer,omitempty" mapstructure:"default_answer"`
	HiddenAnswer  bool    `json:"hidden_answer,omitempty" yaml:"hidden_answer,omitempty" mapstructure:"hidden_answer"`

	// Buttons is nil for the interpreter's default "Cancel" and "OK" buttons.
	Buttons       []string  `json:"buttons,omitempty" yaml:"buttons,omitempty" mapstructure:"buttons"`
	DefaultButton ButtonRef `json:"default_button,omitempty" yaml:"default_button,omitempty" mapstructure:"default_button"`
	CancelButton  ButtonRef `json:"cancel_button,omitempty" yaml:"cancel_button,omitempty" mapstructure:"cancel_button"`

	Title         string   `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Icon          IconKind `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
	GivingUpAfter int      `json:"giving_up_after,omitempty" yaml:"giving_up_after,omitempty" mapstructure:"giving_up_after"`
}

func (Notification) Kind() Kind { return KindNotification }
func (Alert) Kind() Kind        { return KindAlert }
func (Dialog) Kind() Kind       { return KindDialog }

// DefaultAlertButtons and DefaultDialogButtons are what the interpreter shows when no buttons are given.
var (
	DefaultAlertButtons  = []string{"OK"}
	DefaultDialogButtons = []string{"Cancel", "OK"}
)

// EffectiveButtons returns the buttons the alert will actually show.
func (a Alert) EffectiveButtons() []string {
	if a.Buttons == nil {
		return DefaultAlertButtons
	}
	return a.Buttons
}

// EffectiveButtons returns the buttons the dialog will actually show.
func (d Dialog) EffectiveButtons() []string {
	if d.Buttons == nil {
		return DefaultDialogButtons
	}
	return d.Buttons
}

// HasTextField reports whether the dialog asks the user for text.
func (d Dialog) HasTextField() bool {
	return d.DefaultAnswer != nil
}

// Validate checks a request of any kind, including nil and typed-nil pointers.
func Validate(req Request) error {
	if isNil(req) {
		return &AggregateError{Errors: []error{&ValidationError{Field: "request", Reason: "is nil"}}}
	}
	return req.Validate()
}

// KindOf returns the kind of req, or "" when req is nil or a nil pointer.
func KindOf(req Request) Kind {
	if isNil(req) {
		return ""
	}
	return req.Kind()
}

func isNil(req Request) bool {
	switch r := req.(type) {
	case nil:
		return true
	case *Notification:
		return r == nil
	case *Alert:
		return r == nil
	case *Dialog:
		return r == nil
	}
	return false
}

func (n Notification) Validate() error {
	var errs []error
	if n.Title == "" {
		errs = append(errs, &ValidationError{Field: "title", Reason: "is required"})
	}
	return aggregate(errs)
}

func (a Alert) Validate() error {
	var errs []error
	if a.Message == "" {
		errs = append(errs, &ValidationError{Field: "message", Reason: "is required"})
	}
	errs = append(errs, validateButtons(a.Buttons, a.EffectiveButtons(), a.DefaultButton, a.CancelButton)...)
	if !a.Icon.Valid() {
		errs = append(errs, &ValidationError{Field: "icon", Reason: "unknown icon kind"})
	}
	if a.GivingUpAfter < 0 {
		errs = append(errs, &ValidationError{Field: "giving_up_after", Reason: "must not be negative"})
	}
	return aggregate(errs)
}

func (d Dialog) Validate() error {
	var errs []error
	if d.Message == "" {
		errs = append(errs, &ValidationError{Field: "message", Reason: "is required"})
	}
	if d.HiddenAnswer && d.DefaultAnswer == nil {
		errs = append(errs, &ValidationError{Field: "hidden_answer", Reason: "requires default_answer"})
	}
	errs = append(errs, validateButtons(d.Buttons, d.EffectiveButtons(), d.DefaultButton, d.CancelButton)...)
	if !d.Icon.Valid() {
		errs = append(errs, &ValidationError{Field: "icon", Reason: "unknown icon kind"})
	}
	if d.GivingUpAfter < 0 {
		errs = append(errs, &ValidationError{Field: "giving_up_after", Reason: "must not be negative"})
	}
	return aggregate(errs)
}

func validateButtons(given, effective []string, def, cancel ButtonRef) []error {
	var errs []error
	if given != nil {
		if len(given) == 0 || len(given) > MaxButtons {
			errs = append(errs, &ValidationError{
				Field:  "buttons",
				Reason: "must contain 1 to 3 entries",
			})
		}
		seen := make(map[string]bool, len(given))
		for _, b := range given {
			if seen[b] {
				errs = append(errs, &ValidationError{Field: "buttons", Reason: "duplicate button " + quote(b)})
			}
			seen[b] = true
		}
	}
	if !def.IsZero() && !def.Resolves(effective) {
		errs = append(errs, &ValidationError{Field: "default_button", Reason: def.String() + " is not one of the buttons"})
	}
	if !cancel.IsZero() && !cancel.Resolves(effective) {
		errs = append(errs, &ValidationError{Field: "cancel_button", Reason: cancel.String() + " is not one of the buttons"})
	}
	return errs
}

func aggregate(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}
