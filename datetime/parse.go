package datetime

import (
	"regexp"
	"strconv"

	"datetime-lab/errors"
	"datetime-lab/timezone"
)

// isoPattern is the single accepted input shape:
//
//	YYYY-MM-DDTHH:MM:SS[.mmm]±HH:MM
//
// with a fixed width for every component, an optional colon in the
// offset and an optional offset sign meaning '+'. Anything else is a
// shape mismatch, rejected before any semantic validation runs.
var isoPattern = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{3}))?([+-]?\d{2}:?\d{2})$`)

// Parse builds a DateTime from a fixed-shape ISO-8601 string. Malformed
// input fails with a ParseError echoing the whole text; well-shaped but
// out-of-range components fail with the field-specific ValidationError
// from FromDateTime.
func Parse(text string) (DateTime, error) {
	m := isoPattern.FindStringSubmatch(text)
	if m == nil {
		return DateTime{}, errors.ParseError{Input: text}
	}

	year := mustInt(m[1])
	month := mustInt(m[2])
	day := mustInt(m[3])
	hour := mustInt(m[4])
	minute := mustInt(m[5])
	second := mustInt(m[6])
	ms := 0
	if m[7] != "" {
		ms = mustInt(m[7])
	}

	zone, err := timezone.FromString(m[8])
	if err != nil {
		return DateTime{}, err
	}
	return FromDateTime(year, month, day, hour, minute, second, ms, zone)
}

// mustInt converts a digits-only submatch; the pattern guarantees it
// parses.
func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
