package cli

import (
	"errors"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

// Result values of a Response.
const (
	ResultOK        = "ok"
	ResultCancelled = "cancelled"
	ResultError     = "error"
)

// OutcomeInvalidRequest marks responses for requests rejected before launch.
const OutcomeInvalidRequest = "invalid_request"

// Response is the JSON document printed on stdout for every invocation.
type Response struct {
	Result  string  `json:"result"`
	Outcome string  `json:"outcome"`
	Code    *int    `json:"code"`  // Exit status of the interpreter, null if it never ran
	Error   *string `json:"error"` // Interpreter stderr or validation message, null on success
	Data    *Data   `json:"data"`  // Null unless the prompt was confirmed
}

// Data holds exactly one of its fields, keyed by prompt kind.
type Data struct {
	Notification *NotificationData `json:"notification,omitempty"`
	Alert        *AlertData        `json:"alert,omitempty"`
	Dialog       *DialogData       `json:"dialog,omitempty"`
}

type NotificationData struct{}

type AlertData struct {
	Raw    string            `json:"raw"`
	Record map[string]string `json:"record"`
	Button *string           `json:"button"`
	GaveUp bool              `json:"gave_up"`
}

type DialogData struct {
	Raw    string            `json:"raw"`
	Record map[string]string `json:"record"`
	Text   *string           `json:"text"`
	Button *string           `json:"button"`
	GaveUp bool              `json:"gave_up"`
}

// NewResponse describes an outcome of a prompt of the given kind.
func NewResponse(kind domain.Kind, out domain.Outcome) Response {
	resp := Response{Outcome: string(out.Kind)}
	if out.ExitCode != domain.NoExitCode {
		code := out.ExitCode
		resp.Code = &code
	}

	switch out.Kind {
	case domain.OutcomeConfirmed:
		resp.Result = ResultOK
		resp.Data = newData(kind, out)
	case domain.OutcomeCancelled:
		resp.Result = ResultCancelled
	default:
		resp.Result = ResultError
		msg := out.Message
		resp.Error = &msg
	}
	return resp
}

// ErrorResponse describes a request that never reached the interpreter.
func ErrorResponse(err error) Response {
	msg := err.Error()
	outcome := string(domain.OutcomeInterpreterError)
	if errors.Is(err, domain.ErrInvalidRequest) {
		outcome = OutcomeInvalidRequest
	}
	return Response{Result: ResultError, Outcome: outcome, Error: &msg}
}

func newData(kind domain.Kind, out domain.Outcome) *Data {
	record := out.Record
	if record == nil {
		record = map[string]string{}
	}
	button := buttonPtr(out)

	switch kind {
	case domain.KindAlert:
		return &Data{Alert: &AlertData{Raw: out.Raw, Record: record, Button: button, GaveUp: out.GaveUp}}
	case domain.KindDialog:
		return &Data{Dialog: &DialogData{Raw: out.Raw, Record: record, Text: out.Text, Button: button, GaveUp: out.GaveUp}}
	default:
		return &Data{Notification: &NotificationData{}}
	}
}

// buttonPtr is nil when the prompt gave up without a button.
func buttonPtr(out domain.Outcome) *string {
	if out.GaveUp && out.Button == "" {
		return nil
	}
	b := out.Button
	return &b
}
