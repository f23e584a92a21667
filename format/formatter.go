// Package format renders date-time values through placeholder templates.
//
// A template mixes literal text with {specifier} or {specifier:args}
// placeholders. Specifiers resolve against a registry of component
// formatters which callers can extend with AddFormatter.
package format

import (
	"strings"

	"datetime-lab/errors"
)

// Formatter substitutes placeholders of a template with fields read from
// a View. Instances are cheap; all state beyond the template lives in the
// registry.
type Formatter struct {
	format   string
	registry *Registry
}

// New returns a Formatter over the process-wide default registry.
func New(format string) *Formatter {
	return NewWithRegistry(format, DefaultRegistry())
}

// NewWithRegistry returns a Formatter bound to an explicitly owned
// registry, for callers that do not want shared state.
func NewWithRegistry(format string, registry *Registry) *Formatter {
	return &Formatter{format: format, registry: registry}
}

// SetFormat replaces the active template.
func (f *Formatter) SetFormat(format string) {
	f.format = format
}

// FormatString returns the active template.
func (f *Formatter) FormatString() string {
	return f.format
}

// Format renders v through the active template. An unresolved specifier
// aborts the whole call: partial output is never returned.
//
// The template is consumed by a forward-only scan. Text that merely looks
// like a placeholder but is not one ('{}', '{:args}', an unclosed '{')
// is copied verbatim. The literal-brace specifier '{' covers the one case
// where a literal '{' would otherwise start a placeholder: write it as
// '{{}'.
func (f *Formatter) Format(v View) (string, error) {
	var out strings.Builder
	rest := f.format
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		out.WriteString(rest[:open])
		rest = rest[open+1:]

		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			// Unclosed brace: everything left is literal.
			out.WriteByte('{')
			out.WriteString(rest)
			return out.String(), nil
		}

		name, args := rest[:closing], ""
		if sep := strings.IndexByte(name, ':'); sep >= 0 {
			name, args = name[:sep], name[sep+1:]
		}
		if name == "" {
			// '{}' or '{:args}' is not a placeholder; rescan after the '{'.
			out.WriteByte('{')
			continue
		}

		fn, ok := f.registry.lookup(name)
		if !ok {
			return "", errors.UnknownSpecifierError{Name: name}
		}
		out.WriteString(fn(v, args))
		rest = rest[closing+1:]
	}
}
