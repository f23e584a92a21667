package format

import (
	"fmt"
	"strconv"
)

// weekdayNames holds the fixed English names, indexed by View.Weekday.
var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// builtins returns the specifier set every registry starts from.
//
// The named forms (year, month, ...) take an optional width argument,
// e.g. {month:2}; the single-letter forms use the fixed widths of the
// canonical ISO-8601 rendering.
func builtins() map[string]ComponentFormatter {
	return map[string]ComponentFormatter{
		"Y": func(v View, _ string) string { return pad(v.Year()%10000, 4) },
		"y": func(v View, _ string) string { return pad(v.Year()%100, 2) },
		"year": func(v View, args string) string {
			width := argWidth(args, 4)
			s := pad(v.Year(), width)
			if len(s) > width {
				// Keep the last width characters, not the leading ones:
				// {year:2} on 2026 gives "26".
				s = s[len(s)-width:]
			}
			return s
		},
		"M":      func(v View, _ string) string { return pad(v.Month(), 2) },
		"month":  func(v View, args string) string { return pad(v.Month(), argWidth(args, 1)) },
		"D":      func(v View, _ string) string { return pad(v.Day(), 2) },
		"day":    func(v View, args string) string { return pad(v.Day(), argWidth(args, 1)) },
		"h":      func(v View, _ string) string { return pad(v.Hour(), 2) },
		"hour":   func(v View, args string) string { return pad(v.Hour(), argWidth(args, 1)) },
		"m":      func(v View, _ string) string { return pad(v.Minute(), 2) },
		"minute": func(v View, args string) string { return pad(v.Minute(), argWidth(args, 1)) },
		"s":      func(v View, _ string) string { return pad(v.Second(), 2) },
		"second": func(v View, args string) string { return pad(v.Second(), argWidth(args, 1)) },
		"ms":     func(v View, args string) string { return pad(v.Millisecond(), argWidth(args, 3)) },
		"Z":      func(v View, _ string) string { return offsetText(v.TimeZone().Offset(), true) },
		"z":      func(v View, _ string) string { return offsetText(v.TimeZone().Offset(), false) },
		"weekday": func(v View, args string) string {
			name := weekdayNames[v.Weekday()]
			if args == "short" {
				return name[:3]
			}
			return name
		},
		"{": func(View, string) string { return "{" },
	}
}

func pad(value, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}

// argWidth parses a placeholder width argument, falling back to def when
// the argument is absent or not a number.
func argWidth(args string, def int) int {
	if n, err := strconv.Atoi(args); err == nil && n > 0 {
		return n
	}
	return def
}

// offsetText renders a minute offset as ±HH:MM or ±HHMM. The sign is '-'
// only for strictly negative offsets.
func offsetText(minutes int, colon bool) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if colon {
		return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
	}
	return fmt.Sprintf("%s%02d%02d", sign, minutes/60, minutes%60)
}
