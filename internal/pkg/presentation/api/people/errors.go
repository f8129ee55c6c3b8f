package people

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "github.com/diwise/people-catalog/pkg/catalog/errors"
)

const ProblemReportContentType string = "application/problem+json"

// ProblemDetails stores details about a certain problem according to RFC7807
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func (p ProblemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", ProblemReportContentType)
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.Status)

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}

func reportError(w http.ResponseWriter, err error) {
	newProblem(err).WriteResponse(w)
}

func newProblem(err error) ProblemDetails {
	switch {
	case errors.Is(err, catalogerrors.ErrInvalidArgument):
		return ProblemDetails{Type: "InvalidArgument", Title: "Invalid Argument", Detail: err.Error(), Status: http.StatusBadRequest}
	case errors.Is(err, catalogerrors.ErrKeyMissing):
		return ProblemDetails{Type: "KeyMissing", Title: "Key Missing", Detail: err.Error(), Status: http.StatusNotFound}
	case errors.Is(err, catalogerrors.ErrConversion):
		return ProblemDetails{Type: "ConversionFailed", Title: "Conversion Failed", Detail: err.Error(), Status: http.StatusUnprocessableEntity}
	case errors.Is(err, catalogerrors.ErrFetch), errors.Is(err, catalogerrors.ErrParse):
		return ProblemDetails{Type: "BadGateway", Title: "Catalog Unavailable", Detail: err.Error(), Status: http.StatusBadGateway}
	}

	return ProblemDetails{Type: "InternalError", Title: "Internal Error", Detail: err.Error(), Status: http.StatusInternalServerError}
}
