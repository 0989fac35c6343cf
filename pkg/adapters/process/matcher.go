package process

import "strings"

// DefaultCancelSignatures are the stderr fragments osascript prints when the user
// dismisses a dialog or alert: "execution error: User canceled. (-128)".
var DefaultCancelSignatures = []string{"(-128)", "User canceled"}

// CancelMatcher decides whether a failed run means the user cancelled the prompt.
type CancelMatcher interface {
	IsCancellation(exitCode int, stderr string) bool
}

// CancelMatcherFunc adapts a function to CancelMatcher.
type CancelMatcherFunc func(exitCode int, stderr string) bool

func (f CancelMatcherFunc) IsCancellation(exitCode int, stderr string) bool {
	return f(exitCode, stderr)
}

// SignatureMatcher matches when stderr contains any of Substrings and, if ExitCodes
// is non-empty, the exit code is one of them.
type SignatureMatcher struct {
	Substrings []string
	ExitCodes  []int
}

// DefaultCancelMatcher matches the signatures osascript uses on current macOS releases.
func DefaultCancelMatcher() SignatureMatcher {
	return SignatureMatcher{Substrings: DefaultCancelSignatures}
}

func (m SignatureMatcher) IsCancellation(exitCode int, stderr string) bool {
	if len(m.ExitCodes) > 0 && !containsInt(m.ExitCodes, exitCode) {
		return false
	}
	for _, s := range m.Substrings {
		if s != "" && strings.Contains(stderr, s) {
			return true
		}
	}
	return false
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
