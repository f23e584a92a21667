// Package datetime provides an immutable, timezone-aware point-in-time
// value. A DateTime pairs a millisecond epoch timestamp with a fixed
// UTC offset and caches the calendar fields seen under that offset.
//
// Validity is enforced exclusively at construction: once built, a
// DateTime can never hold an invalid calendar date. All With* methods
// derive a new value, the receiver is never mutated.
package datetime

import (
	"time"

	"datetime-lab/errors"
	"datetime-lab/format"
	"datetime-lab/timezone"
)

// ISOTemplate is the canonical ISO-8601 rendering used by ToISOString.
const ISOTemplate = "{Y}-{M}-{D}T{h}:{m}:{s}.{ms}{Z}"

// NowFunc generates the current time for Now. Exported so applications
// that need deterministic behavior can override it in tests.
var NowFunc = time.Now

const msPerMinute = 60_000

// monthLengths holds the day count of each month in a non-leap year.
var monthLengths = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DateTime is an immutable instant. The zero value is the Unix epoch in
// UTC.
type DateTime struct {
	timestamp int64
	zone      timezone.TimeZone

	year        int
	month       int
	day         int
	weekday     int
	hour        int
	minute      int
	second      int
	millisecond int
}

// FromDateTime builds a DateTime from calendar fields interpreted as
// local time in zone. Fields are validated left to right (year, month,
// day, hour, minute, second, ms) and the first invalid one fails the
// construction with a ValidationError naming it.
func FromDateTime(year, month, day, hour, minute, second, ms int, zone timezone.TimeZone) (DateTime, error) {
	if err := validate(year, month, day, hour, minute, second, ms); err != nil {
		return DateTime{}, err
	}

	// Treat the fields as an instant in UTC, then shift by the offset to
	// obtain the true epoch timestamp of that local time.
	utc := time.Date(year, time.Month(month), day, hour, minute, second, ms*int(time.Millisecond), time.UTC)
	timestamp := utc.UnixMilli() - int64(zone.Offset())*msPerMinute
	return FromTimestamp(timestamp, zone), nil
}

// FromTimestamp wraps a millisecond epoch timestamp. Any timestamp is a
// valid instant, including negative ones, so no error path exists.
func FromTimestamp(timestamp int64, zone timezone.TimeZone) DateTime {
	shifted := time.UnixMilli(timestamp + int64(zone.Offset())*msPerMinute).UTC()
	return DateTime{
		timestamp:   timestamp,
		zone:        zone,
		year:        shifted.Year(),
		month:       int(shifted.Month()),
		day:         shifted.Day(),
		weekday:     int(shifted.Weekday()),
		hour:        shifted.Hour(),
		minute:      shifted.Minute(),
		second:      shifted.Second(),
		millisecond: shifted.Nanosecond() / int(time.Millisecond),
	}
}

// Now captures the current wall-clock instant in zone.
func Now(zone timezone.TimeZone) DateTime {
	return FromTimestamp(NowFunc().UnixMilli(), zone)
}

func validate(year, month, day, hour, minute, second, ms int) error {
	if year < 0 {
		return errors.ValidationError{Field: "year", Value: year}
	}
	if month < 1 || month > 12 {
		return errors.ValidationError{Field: "month", Value: month}
	}
	if day < 1 || day > daysInMonth(year, month) {
		return errors.ValidationError{Field: "day", Value: day}
	}
	if hour < 0 || hour > 23 {
		return errors.ValidationError{Field: "hour", Value: hour}
	}
	if minute < 0 || minute > 59 {
		return errors.ValidationError{Field: "minute", Value: minute}
	}
	if second < 0 || second > 59 {
		return errors.ValidationError{Field: "second", Value: second}
	}
	if ms < 0 || ms > 999 {
		return errors.ValidationError{Field: "ms", Value: ms}
	}
	return nil
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// isLeapYear applies the proleptic Gregorian rule for all years.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Timestamp returns the epoch timestamp in milliseconds.
func (d DateTime) Timestamp() int64 { return d.timestamp }

// TimeZone returns the zone the calendar fields are derived under.
func (d DateTime) TimeZone() timezone.TimeZone { return d.zone }

// Year returns the calendar year as seen in the zone.
func (d DateTime) Year() int { return d.year }

// Month returns the month, 1 through 12.
func (d DateTime) Month() int { return d.month }

// Day returns the day of the month.
func (d DateTime) Day() int { return d.day }

// Weekday returns the day of the week, 0 for Sunday through 6 for
// Saturday.
func (d DateTime) Weekday() int { return d.weekday }

// Hour returns the hour, 0 through 23.
func (d DateTime) Hour() int { return d.hour }

// Minute returns the minute, 0 through 59.
func (d DateTime) Minute() int { return d.minute }

// Second returns the second, 0 through 59.
func (d DateTime) Second() int { return d.second }

// Millisecond returns the millisecond, 0 through 999.
func (d DateTime) Millisecond() int { return d.millisecond }

// WithYear derives a new DateTime with the year replaced. The full field
// set is revalidated, so the derivation can fail, e.g. moving Feb 29 to
// a non-leap year.
func (d DateTime) WithYear(year int) (DateTime, error) {
	return FromDateTime(year, d.month, d.day, d.hour, d.minute, d.second, d.millisecond, d.zone)
}

// WithMonth derives a new DateTime with the month replaced.
func (d DateTime) WithMonth(month int) (DateTime, error) {
	return FromDateTime(d.year, month, d.day, d.hour, d.minute, d.second, d.millisecond, d.zone)
}

// WithDay derives a new DateTime with the day replaced.
func (d DateTime) WithDay(day int) (DateTime, error) {
	return FromDateTime(d.year, d.month, day, d.hour, d.minute, d.second, d.millisecond, d.zone)
}

// WithHour derives a new DateTime with the hour replaced.
func (d DateTime) WithHour(hour int) (DateTime, error) {
	return FromDateTime(d.year, d.month, d.day, hour, d.minute, d.second, d.millisecond, d.zone)
}

// WithMinute derives a new DateTime with the minute replaced.
func (d DateTime) WithMinute(minute int) (DateTime, error) {
	return FromDateTime(d.year, d.month, d.day, d.hour, minute, d.second, d.millisecond, d.zone)
}

// WithSecond derives a new DateTime with the second replaced.
func (d DateTime) WithSecond(second int) (DateTime, error) {
	return FromDateTime(d.year, d.month, d.day, d.hour, d.minute, second, d.millisecond, d.zone)
}

// WithMillisecond derives a new DateTime with the millisecond replaced.
func (d DateTime) WithMillisecond(ms int) (DateTime, error) {
	return FromDateTime(d.year, d.month, d.day, d.hour, d.minute, d.second, ms, d.zone)
}

// WithTimestamp derives a new DateTime at another instant in the same
// zone.
func (d DateTime) WithTimestamp(timestamp int64) DateTime {
	return FromTimestamp(timestamp, d.zone)
}

// WithTimeZone derives a new DateTime at the same instant seen in
// another zone.
func (d DateTime) WithTimeZone(zone timezone.TimeZone) DateTime {
	return FromTimestamp(d.timestamp, zone)
}

// ToISOString renders the canonical ISO-8601 representation, e.g.
// 2026-08-23T14:05:09.042+00:00.
func (d DateTime) ToISOString() string {
	// The canonical template only uses built-in specifiers, so the
	// formatter cannot fail to resolve them.
	s, _ := format.New(ISOTemplate).Format(d)
	return s
}

// compile-time check that DateTime satisfies the formatter's view.
var _ format.View = DateTime{}
