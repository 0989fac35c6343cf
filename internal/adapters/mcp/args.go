package mcp

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

// notificationArgs, alertArgs and dialogArgs mirror the tool input schemas.
type notificationArgs struct {
	Title     string `mapstructure:"title"`
	Message   string `mapstructure:"message"`
	Subtitle  string `mapstructure:"subtitle"`
	SoundName string `mapstructure:"sound_name"`
}

type alertArgs struct {
	Message       string   `mapstructure:"message"`
	Explanation   string   `mapstructure:"explanation"`
	Buttons       []string `mapstructure:"buttons"`
	DefaultButton string   `mapstructure:"default_button"`
	CancelButton  string   `mapstructure:"cancel_button"`
	Icon          string   `mapstructure:"icon"`
	GivingUpAfter float64  `mapstructure:"giving_up_after"`
}

type dialogArgs struct {
	Message       string   `mapstructure:"message"`
	DefaultAnswer *string  `mapstructure:"default_answer"`
	HiddenAnswer  bool     `mapstructure:"hidden_answer"`
	Buttons       []string `mapstructure:"buttons"`
	DefaultButton string   `mapstructure:"default_button"`
	CancelButton  string   `mapstructure:"cancel_button"`
	Title         string   `mapstructure:"title"`
	Icon          string   `mapstructure:"icon"`
	GivingUpAfter float64  `mapstructure:"giving_up_after"`
}

// decode copies tool arguments into out, rejecting unknown keys.
func decode(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}

func decodeNotification(args map[string]interface{}) (domain.Notification, error) {
	var a notificationArgs
	if err := decode(args, &a); err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		Title:     a.Title,
		Message:   a.Message,
		Subtitle:  a.Subtitle,
		SoundName: a.SoundName,
	}, nil
}

func decodeAlert(args map[string]interface{}) (domain.Alert, error) {
	var a alertArgs
	if err := decode(args, &a); err != nil {
		return domain.Alert{}, err
	}
	icon, err := domain.ParseIconKind(a.Icon)
	if err != nil {
		return domain.Alert{}, err
	}
	timeout, err := seconds(a.GivingUpAfter)
	if err != nil {
		return domain.Alert{}, err
	}
	return domain.Alert{
		Message:       a.Message,
		Explanation:   a.Explanation,
		Buttons:       buttons(args, a.Buttons),
		DefaultButton: buttonRef(a.DefaultButton),
		CancelButton:  buttonRef(a.CancelButton),
		Icon:          icon,
		GivingUpAfter: timeout,
	}, nil
}

func decodeDialog(args map[string]interface{}) (domain.Dialog, error) {
	var a dialogArgs
	if err := decode(args, &a); err != nil {
		return domain.Dialog{}, err
	}
	icon, err := domain.ParseIconKind(a.Icon)
	if err != nil {
		return domain.Dialog{}, err
	}
	timeout, err := seconds(a.GivingUpAfter)
	if err != nil {
		return domain.Dialog{}, err
	}
	return domain.Dialog{
		Message:       a.Message,
		DefaultAnswer: a.DefaultAnswer,
		HiddenAnswer:  a.HiddenAnswer,
		Buttons:       buttons(args, a.Buttons),
		DefaultButton: buttonRef(a.DefaultButton),
		CancelButton:  buttonRef(a.CancelButton),
		Title:         a.Title,
		Icon:          icon,
		GivingUpAfter: timeout,
	}, nil
}

// buttons keeps an explicitly passed empty list non-nil so validation rejects it.
func buttons(args map[string]interface{}, decoded []string) []string {
	if _, ok := args["buttons"]; ok && decoded == nil {
		return []string{}
	}
	return decoded
}

// seconds rejects fractional timeouts instead of truncating them.
func seconds(v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &domain.ValidationError{Field: "giving_up_after", Reason: "must be a whole number of seconds"}
	}
	return int(v), nil
}

func buttonRef(s string) domain.ButtonRef {
	if s == "" {
		return domain.ButtonRef{}
	}
	return domain.ParseButtonRef(s)
}
