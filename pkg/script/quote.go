package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedLiteral is returned by Unquote for input Quote could not have produced.
var ErrMalformedLiteral = errors.New("malformed applescript string expression")

// Quote turns s into an AppleScript string expression that evaluates to s.
//
// Backslash and double quote are backslash-escaped, and LF, CR and TAB use their
// escape sequences. Other control characters have no escape in AppleScript, so they
// are concatenated in as (character id N) and the whole expression is parenthesized.
// Invalid UTF-8 bytes become U+FFFD.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	spliced := false
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `" & (character id %d) & "`, r)
				spliced = true
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	if spliced {
		return "(" + b.String() + ")"
	}
	return b.String()
}

// List renders items as an AppleScript list of strings, preserving order.
func List(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = Quote(item)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// Unquote decodes an expression produced by Quote back into the original text.
func Unquote(expr string) (string, error) {
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = expr[1 : len(expr)-1]
	}

	var out strings.Builder
	rest := expr
	for {
		var err error
		switch {
		case strings.HasPrefix(rest, `"`):
			rest, err = unquoteLiteral(rest, &out)
		case strings.HasPrefix(rest, "(character id "):
			rest, err = unquoteCharacter(rest, &out)
		default:
			return "", fmt.Errorf("%w: unexpected %q", ErrMalformedLiteral, rest)
		}
		if err != nil {
			return "", err
		}
		if rest == "" {
			return out.String(), nil
		}
		if !strings.HasPrefix(rest, " & ") {
			return "", fmt.Errorf("%w: trailing %q", ErrMalformedLiteral, rest)
		}
		rest = rest[len(" & "):]
	}
}

func unquoteLiteral(s string, out *strings.Builder) (string, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			return s[i+1:], nil
		case '\\':
			if i+1 >= len(s) {
				return "", fmt.Errorf("%w: dangling escape", ErrMalformedLiteral)
			}
			i++
			switch s[i] {
			case '\\', '"':
				out.WriteByte(s[i])
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			default:
				return "", fmt.Errorf("%w: unknown escape \\%c", ErrMalformedLiteral, s[i])
			}
		case '\n', '\r':
			return "", fmt.Errorf("%w: raw line break inside literal", ErrMalformedLiteral)
		default:
			out.WriteByte(s[i])
		}
	}
	return "", fmt.Errorf("%w: unterminated literal", ErrMalformedLiteral)
}

func unquoteCharacter(s string, out *strings.Builder) (string, error) {
	s = strings.TrimPrefix(s, "(character id ")
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated character id", ErrMalformedLiteral)
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}
	out.WriteRune(rune(n))
	return s[end+1:], nil
}
