package domain

import (
	"strconv"
)

// ButtonRef points at a button by 1-based position or by label.
// The zero value means "not set".
type ButtonRef struct {
	Index int    `json:"index,omitempty" yaml:"index,omitempty" mapstructure:"index"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
}

// ButtonAt references the i-th button, counting from 1.
func ButtonAt(i int) ButtonRef { return ButtonRef{Index: i} }

// ButtonNamed references a button by its label.
func ButtonNamed(name string) ButtonRef { return ButtonRef{Name: name} }

// ParseButtonRef reads a command-line style reference: a number from 1 to 255 is a
// position, anything else is a label. An empty string is the zero ButtonRef.
func ParseButtonRef(s string) ButtonRef {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && n > 0 {
		return ButtonRef{Index: int(n)}
	}
	return ButtonRef{Name: s}
}

func (r ButtonRef) IsZero() bool {
	return r.Index == 0 && r.Name == ""
}

// IsIndex reports whether the reference is positional.
func (r ButtonRef) IsIndex() bool {
	return r.Index > 0
}

// Resolves reports whether the reference names one of buttons.
func (r ButtonRef) Resolves(buttons []string) bool {
	if r.IsIndex() {
		return r.Index <= len(buttons)
	}
	for _, b := range buttons {
		if b == r.Name {
			return true
		}
	}
	return false
}

func (r ButtonRef) String() string {
	if r.IsIndex() {
		return "button " + strconv.Itoa(r.Index)
	}
	return "button " + quote(r.Name)
}

func quote(s string) string {
	return strconv.Quote(s)
}
