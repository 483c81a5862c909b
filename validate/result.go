package validate

import (
	"errors"
	"fmt"

	"github.com/damedic/fhir-binding-go/element"
)

// Severity maps to OperationOutcome.issue.severity.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a document. It maps to
// OperationOutcome.issue.
type Issue struct {
	Severity Severity
	// Code is the FHIR issue type, e.g. "required" or "code-invalid".
	Code        string
	Kind        element.ErrorKind
	Path        element.Path
	Diagnostics string

	err error
}

// IsError reports whether the issue makes the document invalid.
func (i Issue) IsError() bool {
	return i.Severity == SeverityFatal || i.Severity == SeverityError
}

// Unwrap returns the codec error behind the issue, so errors.Is matches
// the element sentinels.
func (i Issue) Unwrap() error {
	return i.err
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s [%s]: %s", i.Severity, i.Code, i.Diagnostics)
}

func issueOf(err *element.Error, code string, sev Severity) Issue {
	return Issue{
		Severity:    sev,
		Code:        code,
		Kind:        err.Kind,
		Path:        err.Path,
		Diagnostics: err.Error(),
		err:         err,
	}
}

// Result holds every issue of one document in traversal order.
type Result struct {
	// Type is the validated type, empty if the document could not be
	// dispatched.
	Type   string
	Issues []Issue
}

// Valid is true if no errors were found. Warnings are allowed.
func (r Result) Valid() bool {
	for _, i := range r.Issues {
		if i.IsError() {
			return false
		}
	}
	return true
}

// Errors returns the fatal and error issues.
func (r Result) Errors() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.IsError() {
			out = append(out, i)
		}
	}
	return out
}

// Warnings returns the warning issues.
func (r Result) Warnings() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if !i.IsError() {
			out = append(out, i)
		}
	}
	return out
}

// Err joins all errors of the result, or returns nil if it is valid.
func (r Result) Err() error {
	var errs []error
	for _, i := range r.Errors() {
		errs = append(errs, i)
	}
	return errors.Join(errs...)
}
