/*
Package domain defines the prompts scptdisplay can show and what comes back from showing them.

A prompt is one of three Request variants:

  - Notification: a transient Notification Center banner. Nothing is returned beyond dispatch.
  - Alert: a standard alert with a message, an optional explanation and one to three buttons.
  - Dialog: a dialog with one to three buttons and, optionally, a text field.

Requests are plain values. Validate checks the structural rules (button count, button references,
hidden answers) before anything is rendered, and reports every violation at once as an AggregateError.

Every invocation ends in exactly one Outcome: confirmed, cancelled by the user, an interpreter error,
or a failure to launch the interpreter at all.
*/
package domain
