package parse

import (
	"errors"
	"fmt"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "<unknown severity>"
}

// Diagnostic describes a problem found while parsing.  Line is 1-based;
// Col is the 0-based byte offset of the offending token, or 0 if unknown.
type Diagnostic struct {
	Line     int
	Col      int
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Col, d.Severity, d.Message)
}

type Diagnostics []Diagnostic

// Err joins the error severity diagnostics into one error wrapping
// ErrParse, or returns nil if there are none.
func (ds Diagnostics) Err() error {
	var errs []error
	for _, d := range ds {
		if d.Severity != SeverityError {
			continue
		}
		errs = append(errs, fmt.Errorf("%w: line %d: %s", ErrParse, d.Line, d.Message))
	}
	return errors.Join(errs...)
}

func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
