package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestLinkErrorUnwrapsToKind(t *testing.T) {
	is := is.New(t)

	err := fmt.Errorf("page 2: %w", NewLinkError("http://localhost/people/?page=2", NewParseError("unexpected end of JSON input")))

	is.True(errors.Is(err, ErrParse))
	is.True(!errors.Is(err, ErrFetch))
	is.Equal(err.Error(), "page 2: http://localhost/people/?page=2: unexpected end of JSON input")

	var le *LinkError
	is.True(errors.As(err, &le))
	is.Equal(le.URL, "http://localhost/people/?page=2")
}

func TestKindsAreDistinct(t *testing.T) {
	is := is.New(t)

	is.True(errors.Is(NewKeyMissingError("name"), ErrKeyMissing))
	is.True(errors.Is(NewConversionError("height", "tall"), ErrConversion))
	is.True(!errors.Is(NewConversionError("height", "tall"), ErrKeyMissing))
	is.Equal(NewKeyMissingError("name").Error(), `field "name" is missing`)
}
