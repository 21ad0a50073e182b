package diagnostics

import "fmt"

// Severity constants for entry classification.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityTrace   = "trace"
)

// Entry is a single diagnostic event recorded while compiling a tables/*.spec
// file into a decodetab.Table. Its core fields are immutable once created;
// only the optional Snippet/Hint fields can be attached via the With*
// chaining methods.
type Entry struct {
	severity string
	phase    string
	message  string
	location Location
	snippet  string
	hint     string
}

// Severity returns the entry's severity level.
func (e *Entry) Severity() string { return e.severity }

// Phase returns the generator phase that was active when the entry was recorded.
func (e *Entry) Phase() string { return e.phase }

// Message returns the human-readable description.
func (e *Entry) Message() string { return e.message }

// Location returns the source position the entry refers to.
func (e *Entry) Location() Location { return e.location }

// Snippet returns the optional source line text, or an empty string.
func (e *Entry) Snippet() string { return e.snippet }

// Hint returns the optional fix suggestion, or an empty string.
func (e *Entry) Hint() string { return e.hint }

// WithSnippet sets the source line snippet and returns the same *Entry.
func (e *Entry) WithSnippet(text string) *Entry {
	e.snippet = text
	return e
}

// WithHint sets the fix suggestion and returns the same *Entry.
func (e *Entry) WithHint(text string) *Entry {
	e.hint = text
	return e
}

// String renders "severity [phase] location: message".
func (e *Entry) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", e.severity, e.phase, e.location.String(), e.message)
}
