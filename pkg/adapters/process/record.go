package process

import (
	"sort"
	"strings"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

// recordKeys are every key a prompt result can carry, in the order osascript prints them.
var recordKeys = []string{domain.KeyButtonReturned, domain.KeyTextReturned, domain.KeyGaveUp}

// field is one key found in a record: start is where its ", " separator (or the key
// itself at offset 0) begins, value is where its value begins.
type field struct {
	key   string
	start int
	value int
}

// ParseRecord reads the "key:value, key:value" text osascript prints for a record.
//
// Only keys are split on; pass the keys the script can print (all known keys when
// none are given). Values run until the next key, so commas and colons in a typed
// answer survive. The typed answer is the only field the user controls, so a key
// that appears again after "text returned" is taken from its last occurrence and
// the earlier ones stay part of the answer. Output with no key at all is split
// generically on commas and the first colon of each part.
func ParseRecord(raw string, keys ...string) map[string]string {
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if len(keys) == 0 {
		keys = recordKeys
	}

	textStart := -1
	for _, k := range keys {
		if k == domain.KeyTextReturned {
			if occ := occurrences(raw, k); len(occ) > 0 {
				textStart = occ[0].start
			}
		}
	}

	var fields []field
	for _, k := range keys {
		occ := occurrences(raw, k)
		if len(occ) == 0 {
			continue
		}
		f := occ[0]
		if k != domain.KeyTextReturned && textStart >= 0 && f.start > textStart {
			f = occ[len(occ)-1]
		}
		fields = append(fields, f)
	}

	rec := make(map[string]string)
	if len(fields) == 0 {
		return parseGeneric(raw, rec)
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].start < fields[j].start })
	for i, f := range fields {
		end := len(raw)
		if i+1 < len(fields) {
			end = fields[i+1].start
		}
		rec[f.key] = raw[f.value:end]
	}
	return rec
}

// occurrences finds key at the start of raw and after every ", " separator.
func occurrences(raw, key string) []field {
	var out []field
	if strings.HasPrefix(raw, key+":") {
		out = append(out, field{key: key, start: 0, value: len(key) + 1})
	}
	sep := ", " + key + ":"
	for from := 0; ; {
		i := strings.Index(raw[from:], sep)
		if i < 0 {
			return out
		}
		i += from
		out = append(out, field{key: key, start: i, value: i + len(sep)})
		from = i + len(sep)
	}
}

func parseGeneric(raw string, rec map[string]string) map[string]string {
	for _, part := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimLeft(k, " ")
		if _, dup := rec[k]; !dup {
			rec[k] = v
		}
	}
	return rec
}
