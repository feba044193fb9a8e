// Package errs holds the error kinds shared by the tweetlab packages.
//
// Every error produced by this module that a caller may want to branch on
// wraps exactly one of the sentinel kinds below, so errors.Is works through
// any amount of added context.
package errs

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration marks bad or missing configuration: an unknown
	// normalization strategy, a malformed credential document, a removal-set
	// config without its required fields.
	ErrConfiguration = stderrors.New("configuration error")

	// ErrParse marks text that does not match a rigid expected format.
	ErrParse = stderrors.New("parse error")

	// ErrExternalService marks failures of an API or tagger we call out to.
	ErrExternalService = stderrors.New("external service error")
)

type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Cause lets errors.Cause from pkg/errors reach the underlying error.
func (e *kindError) Cause() error { return e.cause }

func wrap(kind error, cause error, format string, args ...interface{}) error {
	if cause == nil {
		cause = errors.Errorf(format, args...)
	} else {
		cause = errors.Wrapf(cause, format, args...)
	}
	return &kindError{kind: kind, cause: cause}
}

// Configuration returns a new configuration error.
func Configuration(format string, args ...interface{}) error {
	return wrap(ErrConfiguration, nil, format, args...)
}

// WrapConfiguration marks err as a configuration error.
func WrapConfiguration(err error, format string, args ...interface{}) error {
	return wrap(ErrConfiguration, err, format, args...)
}

// Parse returns a new parse error.
func Parse(format string, args ...interface{}) error {
	return wrap(ErrParse, nil, format, args...)
}

// WrapParse marks err as a parse error.
func WrapParse(err error, format string, args ...interface{}) error {
	return wrap(ErrParse, err, format, args...)
}

// External returns a new external service error.
func External(format string, args ...interface{}) error {
	return wrap(ErrExternalService, nil, format, args...)
}

// WrapExternal marks err as an external service error. A nil err stays nil.
func WrapExternal(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return wrap(ErrExternalService, err, format, args...)
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return stderrors.Is(err, ErrConfiguration) }

// IsParse reports whether err is a parse error.
func IsParse(err error) bool { return stderrors.Is(err, ErrParse) }

// IsExternal reports whether err is an external service error.
func IsExternal(err error) bool { return stderrors.Is(err, ErrExternalService) }
