package people

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/diwise/people-catalog/internal/pkg/application/people"
	catalogerrors "github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBucketCount int = 5

func RegisterHandlers(ctx context.Context, r chi.Router, app people.PeopleCatalog) {
	r.Route("/api/people", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Get("/", NewRetrievePeopleHandler(app))
		r.Get("/names", NewRetrieveNamesHandler(app))
		r.Get("/search", NewFindPeopleHandler(app))
		r.Get("/profile/{column}", NewProfileColumnHandler(app))
	})
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewRetrievePeopleHandler(app people.PeopleRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		result, err := app.People(ctx)
		if err != nil {
			logging.GetFromContext(ctx).Error("retrieve people failed", "err", err.Error())
			reportError(w, err)
			return
		}

		writeJSON(w, result)
	})
}

func NewRetrieveNamesHandler(app people.NameLister) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		names, err := app.Names(ctx)
		if err != nil {
			logging.GetFromContext(ctx).Error("retrieve names failed", "err", err.Error())
			reportError(w, err)
			return
		}

		writeJSON(w, names)
	})
}

// NewFindPeopleHandler handles GET requests with the query parameters field and value
func NewFindPeopleHandler(app people.PeopleFinder) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		field := r.URL.Query().Get("field")
		if field == "" {
			err = catalogerrors.NewInvalidArgumentError("query parameter field is required")
			reportError(w, err)
			return
		}

		if !r.URL.Query().Has("value") {
			err = catalogerrors.NewInvalidArgumentError("query parameter value is required")
			reportError(w, err)
			return
		}

		result, err := app.Find(ctx, field, r.URL.Query().Get("value"))
		if err != nil {
			logging.GetFromContext(ctx).Error("find people failed", "field", field, "err", err.Error())
			reportError(w, err)
			return
		}

		writeJSON(w, result)
	})
}

// NewProfileColumnHandler handles GET requests for the frequency table of a column. The
// query parameter bins sets the number of quantile buckets and numeric=true selects binning.
func NewProfileColumnHandler(app people.PeopleProfiler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		column := chi.URLParam(r, "column")

		bins := DefaultBucketCount
		if b := r.URL.Query().Get("bins"); b != "" {
			bins, err = strconv.Atoi(b)
			if err != nil {
				err = catalogerrors.NewInvalidArgumentError(fmt.Sprintf("bins must be an integer, got %q", b))
				reportError(w, err)
				return
			}
		}

		numeric := false
		if n := r.URL.Query().Get("numeric"); n != "" {
			numeric, err = strconv.ParseBool(n)
			if err != nil {
				err = catalogerrors.NewInvalidArgumentError(fmt.Sprintf("numeric must be a boolean, got %q", n))
				reportError(w, err)
				return
			}
		}

		table, err := app.Profile(ctx, column, bins, numeric)
		if err != nil {
			logging.GetFromContext(ctx).Error("profile column failed", "column", column, "err", err.Error())
			reportError(w, err)
			return
		}

		writeJSON(w, table)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		reportError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil {
		labeler.Add(attribute.Bool("error", true))
	}
}
