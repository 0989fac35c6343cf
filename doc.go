/*
Package scptdisplay shows native macOS prompts (notifications, alerts and dialogs) by rendering
AppleScript and running it through osascript.

# Concept

A prompt is described by a typed request from package domain. The request is validated and rendered
into a single AppleScript statement (package script), handed to the interpreter on stdin (package
process), and whatever the interpreter does is classified into one Outcome:

  - confirmed: the user pressed a button (and typed text, if a text field was shown)
  - cancelled: the user dismissed the prompt
  - interpreter_error: osascript ran but failed; its message is kept verbatim
  - launch_failure: osascript could not be started

Caller text is always embedded as an escaped string literal, so titles, messages and button labels
can never inject script.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/scptdisplay"
		"github.com/aretw0/scptdisplay/pkg/domain"
	)

	func main() {
		d := scptdisplay.New()

		answer := ""
		out, err := d.Dialog(context.Background(), domain.Dialog{
			Message:       "What is your name?",
			DefaultAnswer: &answer,
		})
		if err != nil {
			log.Fatal(err) // invalid request, nothing was shown
		}

		switch out.Kind {
		case domain.OutcomeConfirmed:
			fmt.Println("hello,", *out.Text)
		case domain.OutcomeCancelled:
			fmt.Println("maybe later")
		default:
			log.Fatal(out.Err())
		}
	}
*/
package scptdisplay
