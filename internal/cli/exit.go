package cli

import "github.com/aretw0/scptdisplay/pkg/domain"

// Process exit statuses.
const (
	ExitOK               = 0
	ExitInterpreterError = 1
	ExitUsage            = 2 // Invalid request or flags; nothing was shown
	ExitLaunchFailure    = 127
)

// ExitCode maps an outcome onto the CLI exit status. Cancellation is not a failure
// and exits with cancelCode, which defaults to ExitOK.
func ExitCode(out domain.Outcome, cancelCode int) int {
	switch out.Kind {
	case domain.OutcomeConfirmed:
		return ExitOK
	case domain.OutcomeCancelled:
		return cancelCode
	case domain.OutcomeLaunchFailure:
		return ExitLaunchFailure
	}
	return ExitInterpreterError
}
