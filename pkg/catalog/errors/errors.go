package errors

import (
	"errors"
	"fmt"
)

var ErrFetch = fmt.Errorf("fetch failed")
var ErrParse = fmt.Errorf("parse failed")
var ErrKeyMissing = fmt.Errorf("key missing")
var ErrConversion = fmt.Errorf("conversion failed")
var ErrInvalidArgument = fmt.Errorf("invalid argument")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewFetchError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrFetch,
	}
}

func NewParseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrParse,
	}
}

func NewKeyMissingError(key string) error {
	return &myError{
		msg:    fmt.Sprintf("field %q is missing", key),
		target: ErrKeyMissing,
	}
}

func NewConversionError(column, value string) error {
	return &myError{
		msg:    fmt.Sprintf("value %q in column %q is not numeric", value, column),
		target: ErrConversion,
	}
}

func NewInvalidArgumentError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidArgument,
	}
}

// LinkError ties a failure to the catalog link that produced it.
type LinkError struct {
	URL string
	Err error
}

func NewLinkError(url string, err error) *LinkError {
	return &LinkError{URL: url, Err: err}
}

func (le *LinkError) Error() string {
	return fmt.Sprintf("%s: %s", le.URL, le.Err.Error())
}

func (le *LinkError) Unwrap() error {
	return le.Err
}

func Is(err, target error) bool { return errors.Is(err, target) }
func As(err error, target any) bool { return errors.As(err, target) }
