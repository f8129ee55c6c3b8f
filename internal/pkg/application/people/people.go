package people

import (
	"context"
	"fmt"

	"github.com/diwise/people-catalog/pkg/catalog"
	"github.com/diwise/people-catalog/pkg/catalog/client"
	"github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/diwise/people-catalog/pkg/catalog/projection"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out people_mock.go . PeopleCatalog

type NameLister interface {
	Names(ctx context.Context) ([]string, error)
}

type PeopleRetriever interface {
	People(ctx context.Context) ([]catalog.Record, error)
}

type PeopleFinder interface {
	Find(ctx context.Context, field, value string) ([]catalog.Record, error)
}

type PeopleProfiler interface {
	Profile(ctx context.Context, column string, bins int, numeric bool) (*catalog.FrequencyTable, error)
}

type PeopleCatalog interface {
	NameLister
	PeopleRetriever
	PeopleFinder
	PeopleProfiler
}

const (
	TraceAttributeField  string = "field"
	TraceAttributeColumn string = "column"
)

var tracer = otel.Tracer("people-catalog/people")

type peopleApp struct {
	client    client.CatalogClient
	peopleURL string
	fields    []string
	missing   map[string]struct{}
}

func New(c client.CatalogClient, cfg *Config) PeopleCatalog {
	app := &peopleApp{
		client:    c,
		peopleURL: cfg.PeopleURL(),
		fields:    cfg.Fields,
		missing:   make(map[string]struct{}, len(cfg.Missing)),
	}

	for _, m := range cfg.Missing {
		app.missing[m] = struct{}{}
	}

	return app
}

func (app *peopleApp) Names(ctx context.Context) ([]string, error) {
	names, err := client.CollectAll(ctx, app.client.FetchAllNames(app.peopleURL))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch names: %w", err)
	}
	return names, nil
}

func (app *peopleApp) People(ctx context.Context) ([]catalog.Record, error) {
	people, err := client.CollectAll(ctx, app.client.FetchAll(app.peopleURL))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}
	return people, nil
}

// Find returns the projected people whose field has the given canonical text value, in
// fetch order. People lacking the field, or holding null or a nested value in it, never match.
func (app *peopleApp) Find(ctx context.Context, field, value string) ([]catalog.Record, error) {
	var err error

	ctx, span := tracer.Start(ctx, "find",
		trace.WithAttributes(attribute.String(TraceAttributeField, field)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	people, err := app.projectedPeople(ctx)
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)
	log.Debug("finding people", "field", field, "value", value, "count", len(people))

	result := make([]catalog.Record, 0)
	skipped := 0

	for _, p := range people {
		v, ok := p.Text(field)
		if !ok {
			skipped++
			continue
		}

		if v == value {
			result = append(result, p)
		}
	}

	if skipped > 0 {
		log.Debug("skipped people without comparable value", "field", field, "skipped", skipped)
	}

	return result, nil
}

func (app *peopleApp) Profile(ctx context.Context, column string, bins int, numeric bool) (*catalog.FrequencyTable, error) {
	var err error

	ctx, span := tracer.Start(ctx, "profile",
		trace.WithAttributes(attribute.String(TraceAttributeColumn, column)),
		trace.WithAttributes(attribute.Int("bins", bins)),
		trace.WithAttributes(attribute.Bool("numeric", numeric)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if numeric && bins < 1 {
		err = errors.NewInvalidArgumentError(fmt.Sprintf("bucket count must be positive, got %d", bins))
		return nil, err
	}

	people, err := app.projectedPeople(ctx)
	if err != nil {
		return nil, err
	}

	values, err := app.column(people, column, numeric)
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Debug("profiling column", "column", column, "rows", len(values))

	var table *catalog.FrequencyTable

	if numeric {
		table, err = profileNumeric(column, values, bins)
	} else {
		table = profileCategorical(column, values)
	}

	return table, err
}

func (app *peopleApp) projectedPeople(ctx context.Context) ([]catalog.Record, error) {
	people, err := app.People(ctx)
	if err != nil {
		return nil, err
	}

	return projection.ProjectAll(people, app.fields), nil
}

// column extracts the text values of a column. Missing value sentinels, nulls and absent fields
// become nil. Nested values become nil too, unless the column is numeric.
func (app *peopleApp) column(people []catalog.Record, column string, numeric bool) ([]*string, error) {
	values := make([]*string, 0, len(people))
	found := false

	for _, p := range people {
		raw, present := p[column]
		if present {
			found = true
		}

		v, ok := p.Text(column)
		if !ok {
			if numeric && raw != nil {
				return nil, errors.NewConversionError(column, fmt.Sprintf("%v", raw))
			}
			values = append(values, nil)
			continue
		}

		if _, isMissing := app.missing[v]; isMissing {
			values = append(values, nil)
			continue
		}

		values = append(values, &v)
	}

	if !found && len(people) > 0 {
		return nil, errors.NewKeyMissingError(column)
	}

	return values, nil
}
