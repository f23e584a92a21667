//go:generate go run go.uber.org/mock/mockgen -source=view.go -destination=../mocks/mock_view.go -package=mocks
package format

import "datetime-lab/timezone"

// View is the read-only field surface a value must expose to be rendered.
// It is satisfied by datetime.DateTime, but the formatter never depends on
// that concrete type: any date-time-shaped value can be formatted.
type View interface {
	Year() int
	Month() int
	Day() int
	// Weekday is 0 for Sunday through 6 for Saturday.
	Weekday() int
	Hour() int
	Minute() int
	Second() int
	Millisecond() int
	TimeZone() timezone.TimeZone
}
