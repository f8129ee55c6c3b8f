package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/diwise/people-catalog/pkg/catalog"
	"github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CatalogClient interface {
	FetchPage(ctx context.Context, link string) (*catalog.Page, error)
	FetchAll(startURL string) *Iterator[catalog.Record]
	FetchAllNames(startURL string) *Iterator[string]
}

// ErrorReporterFunc receives every failure that a traversal runs into, regardless of policy.
type ErrorReporterFunc func(ctx context.Context, link string, err error)

func Debug(enabled string) func(*catalogClient) {
	return func(c *catalogClient) {
		c.debug = (enabled == "true")
	}
}

// Timeout bounds every request made towards the catalog. Zero means no timeout.
func Timeout(timeout time.Duration) func(*catalogClient) {
	return func(c *catalogClient) {
		c.timeout = timeout
	}
}

func OnPageError(policy PageErrorPolicy) func(*catalogClient) {
	return func(c *catalogClient) {
		c.policy = policy
	}
}

func ErrorReporter(reporter ErrorReporterFunc) func(*catalogClient) {
	return func(c *catalogClient) {
		c.reporter = reporter
	}
}

func NewCatalogClient(options ...func(*catalogClient)) CatalogClient {
	c := &catalogClient{
		timeout: DefaultTimeout,
		policy:  Skip,
		debug:   false,
	}

	for _, option := range options {
		option(c)
	}

	c.httpClient = http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   c.timeout,
	}

	return c
}

const DefaultTimeout time.Duration = 30 * time.Second

const (
	TraceAttributeLink      string = "catalog-link"
	TraceAttributeTraversal string = "catalog-traversal"
)

var tracer = otel.Tracer("people-catalog-client")

type catalogClient struct {
	httpClient http.Client
	timeout    time.Duration
	policy     PageErrorPolicy
	reporter   ErrorReporterFunc
	debug      bool
}

func (c *catalogClient) FetchPage(ctx context.Context, link string) (*catalog.Page, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-page",
		trace.WithAttributes(attribute.String(TraceAttributeLink, link)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	page, err := c.fetchPage(ctx, link)
	if err != nil {
		err = errors.NewLinkError(link, err)
		return nil, err
	}

	return page, nil
}

func (c *catalogClient) FetchAll(startURL string) *Iterator[catalog.Record] {
	return newIterator(c, startURL, func(r catalog.Record) (catalog.Record, error) {
		return r, nil
	})
}

func (c *catalogClient) FetchAllNames(startURL string) *Iterator[string] {
	return newIterator(c, startURL, func(r catalog.Record) (string, error) {
		return r.Name()
	})
}

func (c *catalogClient) fetchPage(ctx context.Context, link string) (*catalog.Page, error) {
	response, responseBody, err := c.callCatalog(ctx, link)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, errors.NewFetchError(fmt.Sprintf("unexpected response code %d", response.StatusCode))
	}

	page, err := catalog.NewPageFromJSON(responseBody)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed: %w", string(responseBody), err)
		}

		return nil, err
	}

	return page, nil
}

func (c *catalogClient) callCatalog(ctx context.Context, link string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, nil, errors.NewFetchError(fmt.Sprintf("invalid url: %s", err.Error()))
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.NewFetchError(fmt.Sprintf("failed to send request: %s", err.Error()))
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.NewFetchError(fmt.Sprintf("failed to read response body: %s", err.Error()))
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}

func (c *catalogClient) report(ctx context.Context, err error) {
	link := ""

	var le *errors.LinkError
	if errors.As(err, &le) {
		link = le.URL
	}

	log := logging.GetFromContext(ctx)
	log.Warn("link is not functional", "link", link, "err", err.Error(), "policy", string(c.policy))

	if c.reporter != nil {
		c.reporter(ctx, link, err)
	}
}
