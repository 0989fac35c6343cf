package domain

import (
	"fmt"
	"strings"
)

// IconKind is the badge shown on an alert or dialog.
type IconKind int

const (
	IconNone IconKind = iota
	IconStop
	IconNote
	IconCaution
)

var iconNames = [...]string{"none", "stop", "note", "caution"}

// ParseIconKind accepts the names "none", "stop", "note", "caution" and the
// AppleScript numeric aliases 0 (stop), 1 (note) and 2 (caution).
func ParseIconKind(s string) (IconKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return IconNone, nil
	case "stop", "0":
		return IconStop, nil
	case "note", "1":
		return IconNote, nil
	case "caution", "2":
		return IconCaution, nil
	}
	return IconNone, fmt.Errorf("%w: unknown icon %q (want none, stop, note or caution)", ErrInvalidRequest, s)
}

func (k IconKind) Valid() bool {
	return k >= IconNone && k <= IconCaution
}

func (k IconKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("IconKind(%d)", int(k))
	}
	return iconNames[k]
}

func (k IconKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid icon kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *IconKind) UnmarshalText(text []byte) error {
	v, err := ParseIconKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
