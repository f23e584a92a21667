// Package errors defines the error values returned by the datetime core.
// Messages are a de-facto contract: callers and tests match on them verbatim.
package errors

import "fmt"

// ValidationError reports a calendar field that failed range validation
// during DateTime construction. Field is one of year, month, day, hour,
// minute, second, ms.
type ValidationError struct {
	Field string
	Value int
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("Expected valid %s, found %d.", e.Field, e.Value)
}

// ParseError reports input text that does not match the fixed ISO-8601
// grammar. It carries the full original input, never a partial diagnostic.
type ParseError struct {
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Expected valid ISO8601 date-time, found %q.", e.Input)
}

// SpecifierTakenError reports a duplicate registration in the formatter
// registry. Registration is append-only; there is no override.
type SpecifierTakenError struct {
	Name string
}

func (e SpecifierTakenError) Error() string {
	return fmt.Sprintf("Format specifier %s is already taken.", e.Name)
}

// UnknownSpecifierError reports a template placeholder whose specifier has
// no registered component formatter.
type UnknownSpecifierError struct {
	Name string
}

func (e UnknownSpecifierError) Error() string {
	return fmt.Sprintf("Undefined component formatter '%s'.", e.Name)
}
