// Package timezone provides a minute-granularity UTC-offset wrapper.
// A TimeZone is a fixed offset: resolving an IANA name pins the zone's
// offset at a single instant, it does not track transitions afterwards.
package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// UTC is the zero-offset zone. Any TimeZone with offset 0 compares equal
// to it, equality is structural on the offset.
var UTC = TimeZone{}

// TimeZone is an immutable UTC offset expressed in minutes.
// Positive offsets are ahead of UTC.
type TimeZone struct {
	offset int
}

// offsetPattern accepts ±HH:MM and ±HHMM literals. The sign may be
// omitted and then means '+'.
var offsetPattern = regexp.MustCompile(`^([+-]?)(\d{2}):?(\d{2})$`)

// FromOffset builds a TimeZone from a raw offset in minutes.
func FromOffset(minutes int) TimeZone {
	return TimeZone{offset: minutes}
}

// FromString builds a TimeZone from an offset literal (±HH:MM or ±HHMM)
// or an IANA zone identifier such as "America/New_York". IANA names are
// resolved to their offset at the current instant.
func FromString(s string) (TimeZone, error) {
	return FromStringAt(s, time.Now())
}

// FromStringAt is FromString with an explicit resolution instant for IANA
// names. Offset literals ignore the instant.
func FromStringAt(s string, at time.Time) (TimeZone, error) {
	if m := offsetPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		offset := hours*60 + minutes
		if m[1] == "-" {
			offset = -offset
		}
		return TimeZone{offset: offset}, nil
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return TimeZone{}, fmt.Errorf("unresolvable timezone %q: %w", s, err)
	}
	_, seconds := at.In(loc).Zone()
	return TimeZone{offset: seconds / 60}, nil
}

// Offset returns the offset in minutes relative to UTC.
func (z TimeZone) Offset() int {
	return z.offset
}

// String renders the offset as ±HH:MM. Zero renders as +00:00.
func (z TimeZone) String() string {
	sign := "+"
	offset := z.offset
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/60, offset%60)
}
