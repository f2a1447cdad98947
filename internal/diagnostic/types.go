package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"beanmapper/internal/common"
)

// Diagnostics holds every diagnostic produced by one validation or inspection run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject identifies the profile or type this relates to (if any).
	Subject string
	// Path identifies the setting or property this relates to (if any).
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// Diagnostic codes.
const (
	CodeMissingName       = "missing_name"
	CodeDuplicateName     = "duplicate_name"
	CodeBadDelimiter      = "bad_delimiter"
	CodeUnknownConverter  = "unknown_converter"
	CodeMissingPattern    = "missing_pattern"
	CodeBadPattern        = "bad_pattern"
	CodeBadVersion        = "unsupported_version"
	CodeUnknownCoercion   = "unknown_coercion"
	CodeOverlappingFilter = "overlapping_filter"
	CodeUnresolvedParam   = "unresolved_type_param"
	CodeUnexportedField   = "unexported_field"
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, path string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, subject, path, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, path string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, subject, path, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, path string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, subject, path, nil))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, subject, path string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Path:        path,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
