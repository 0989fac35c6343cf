package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/scptdisplay/internal/config"
)

// ResolveFormat returns format, or picks text for a terminal and JSON for anything else.
func ResolveFormat(format string, stdout io.Writer) string {
	if format != "" {
		return format
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.FormatText
	}
	return config.FormatJSON
}

// Printer writes responses as a single JSON line or as plain text.
type Printer struct {
	format string
	stdout io.Writer
	stderr io.Writer
	style  *termenv.Output
}

// NewPrinter creates a Printer. Colours are only used when stderr is a terminal.
func NewPrinter(format string, stdout, stderr io.Writer) *Printer {
	return &Printer{
		format: format,
		stdout: stdout,
		stderr: stderr,
		style:  termenv.NewOutput(stderr),
	}
}

// Print writes resp in the configured format.
func (p *Printer) Print(resp Response) error {
	if p.format == config.FormatText {
		return p.printText(resp)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(p.stdout, string(data))
	return err
}

func (p *Printer) printText(resp Response) error {
	switch resp.Result {
	case ResultCancelled:
		_, err := fmt.Fprintln(p.stderr, p.style.String("cancelled").Foreground(p.style.Color("3")))
		return err
	case ResultError:
		msg := ""
		if resp.Error != nil {
			msg = *resp.Error
		}
		label := p.style.String("error:").Foreground(p.style.Color("1")).Bold()
		_, err := fmt.Fprintln(p.stderr, label, msg)
		return err
	}

	if resp.Data == nil {
		return nil
	}
	var button, text *string
	var gaveUp bool
	switch {
	case resp.Data.Alert != nil:
		button, gaveUp = resp.Data.Alert.Button, resp.Data.Alert.GaveUp
	case resp.Data.Dialog != nil:
		button, text, gaveUp = resp.Data.Dialog.Button, resp.Data.Dialog.Text, resp.Data.Dialog.GaveUp
	default:
		return nil
	}

	if gaveUp {
		if _, err := fmt.Fprintln(p.stderr, p.style.String("gave up").Faint()); err != nil {
			return err
		}
	}
	if button != nil {
		if _, err := fmt.Fprintln(p.stdout, *button); err != nil {
			return err
		}
	}
	if text != nil {
		if _, err := fmt.Fprintln(p.stdout, *text); err != nil {
			return err
		}
	}
	return nil
}
