package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/people-catalog/internal/pkg/application/people"
	"github.com/diwise/people-catalog/internal/pkg/infrastructure/router"
	api "github.com/diwise/people-catalog/internal/pkg/presentation/api/people"
	"github.com/diwise/people-catalog/pkg/catalog/client"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "people-catalog"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags, err := parseExternalConfig(ctx, DefaultFlags(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	if err = run(ctx, flags, os.Stdout); err != nil {
		logger.Error("people catalog failed", "err", err.Error())
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, flags FlagMap, out io.Writer) error {
	cfg, err := loadCatalogConfig(ctx, flags)
	if err != nil {
		return err
	}

	app, err := initialize(ctx, cfg)
	if err != nil {
		return err
	}

	if flags.Bool(serveMode) {
		return serve(ctx, flags[servicePort], app)
	}

	opts, err := newReportOptions(flags)
	if err != nil {
		return err
	}

	return writeReport(ctx, out, app, opts)
}

func initialize(ctx context.Context, cfg *people.Config) (people.PeopleCatalog, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog timeout: %w", err)
	}

	policy, err := cfg.PageErrorPolicy()
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Info("using people catalog", "url", cfg.PeopleURL(), "timeout", timeout, "policy", policy)

	c := client.NewCatalogClient(
		client.Timeout(timeout),
		client.OnPageError(policy),
		client.Debug(env.GetVariableOrDefault(ctx, "CATALOG_CLIENT_DEBUG", "false")),
	)

	return people.New(c, cfg), nil
}

func serve(ctx context.Context, port string, app people.PeopleCatalog) error {
	logger := logging.GetFromContext(ctx)

	r := router.New(serviceName)
	api.RegisterHandlers(ctx, r, app)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownServer(ctx, srv, shutdownTimeout)
	}()

	logger.Info("starting to listen for connections", "port", port)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to listen for connections: %w", err)
	}

	return nil
}

const shutdownTimeout time.Duration = 10 * time.Second

// shutdownServer waits at most timeout for active requests to finish
func shutdownServer(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		logging.GetFromContext(ctx).Warn("failed to shut down http server", "err", err.Error())
	}

	return err
}
