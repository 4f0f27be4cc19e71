// Package normalize converts between the upstream API's loosely-typed string
// representation and the strict internal storage types, field by field. It is
// the single sanctioned boundary between upstream.RCData and domain.RCRecord.
//
// All functions are pure and never return errors: unusable input maps to
// "absent" (nil). The upstream provider is known to emit the literal string
// "null" (and "N/A", and empty strings) where a JSON null belongs, and naive
// date parsing of those sentinels previously broke cache writes; absorbing
// them here is the point of this package.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are attempted in order by Date. The provider usually sends
// plain ISO dates but has been seen emitting timestamps as well.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-Jan-2006",
}

// isAbsent reports whether raw is one of the sentinel spellings the provider
// uses for a missing value.
func isAbsent(raw string) bool {
	return raw == "" || raw == "N/A" || raw == "null"
}

// Date parses a calendar-date string into a UTC time. Sentinels ("", "N/A",
// "null") and anything unparseable map to nil, never an error and never the
// epoch.
func Date(raw string) *time.Time {
	if isAbsent(raw) {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// MonthDate parses the month-only "MM/YYYY" manufacturing date. The raw
// string is preserved verbatim whenever present; the normalized first-of-
// month date is only set when both parts parse and the month is in range.
func MonthDate(raw string) (rawOut *string, normalized *time.Time) {
	if isAbsent(raw) {
		return nil, nil
	}
	rawOut = &raw

	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return rawOut, nil
	}
	month, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errM != nil || errY != nil || month < 1 || month > 12 || year < 1 {
		return rawOut, nil
	}
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return rawOut, &t
}

// TriStateBool maps the provider's boolean spellings to a nullable 0/1.
// "1" and "true" → 1, "0" and "false" → 0, anything else → nil (unknown).
func TriStateBool(raw string) *int {
	switch raw {
	case "1", "true":
		v := 1
		return &v
	case "0", "false":
		v := 0
		return &v
	default:
		return nil
	}
}

// TriStateBoolString renders a stored tri-state boolean for the wire:
// 1 → "true", 0 → "false", nil → "". Inbound accepts four spellings but
// outbound emits exactly one per state; the asymmetry is part of the contract.
func TriStateBoolString(v *int) string {
	switch {
	case v == nil:
		return ""
	case *v == 1:
		return "true"
	default:
		return "false"
	}
}

// Int parses a numeric string to a nullable integer. Empty or non-numeric
// input maps to nil.
func Int(raw string) *int64 {
	if isAbsent(raw) {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Float parses a numeric string to a nullable float. Empty or non-numeric
// input maps to nil.
func Float(raw string) *float64 {
	if isAbsent(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &f
}

// Str maps an upstream string to nullable storage: empty becomes nil.
func Str(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// DateString renders a stored date as "YYYY-MM-DD", or "" when absent.
func DateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// IntString renders a stored integer as decimal text, or "" when absent.
func IntString(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// FloatString renders a stored float with minimal digits, or "" when absent.
func FloatString(v *float64) string {
	if v == nil {
		return ""
	}
	// Whole-valued floats print without a trailing ".0", matching how the
	// provider writes them ("1197" rather than "1197.0").
	if *v == float64(int64(*v)) {
		return strconv.FormatInt(int64(*v), 10)
	}
	return fmt.Sprintf("%v", *v)
}

// StrString dereferences a nullable string, mapping nil to "".
func StrString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
