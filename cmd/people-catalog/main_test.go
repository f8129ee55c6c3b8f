package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diwise/people-catalog/internal/pkg/application/people"
	"github.com/diwise/people-catalog/internal/pkg/test"
	"github.com/matryer/is"
)

func TestDefaultFlags(t *testing.T) {
	is := is.New(t)

	flags, err := parseExternalConfig(t.Context(), DefaultFlags(), []string{})
	is.NoErr(err)

	is.Equal(flags.Bool(serveMode), false)
	is.Equal(flags[profileColumn], "height")
	is.Equal(flags[findValue], "Darth Vader")
	is.True(flags.Bool(profileNumeric))

	bins, err := flags.Int(profileBins)
	is.NoErr(err)
	is.Equal(bins, 5)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	is := is.New(t)

	flags, err := parseExternalConfig(t.Context(), DefaultFlags(), []string{
		"-serve", "-port", "9090", "-column", "hair_color", "-numeric=false", "-find-field", "mass", "-find-value", "77",
	})
	is.NoErr(err)

	is.True(flags.Bool(serveMode))
	is.Equal(flags[servicePort], "9090")
	is.Equal(flags[profileColumn], "hair_color")
	is.Equal(flags.Bool(profileNumeric), false)
	is.Equal(flags[findField], "mass")
	is.Equal(flags[findValue], "77")
}

func TestEnvironmentOverridesServicePort(t *testing.T) {
	is := is.New(t)
	t.Setenv("SERVICE_PORT", "8181")

	flags, err := parseExternalConfig(t.Context(), DefaultFlags(), []string{})
	is.NoErr(err)
	is.Equal(flags[servicePort], "8181")
}

func TestUnknownFlagIsAnError(t *testing.T) {
	is := is.New(t)

	_, err := parseExternalConfig(t.Context(), DefaultFlags(), []string{"-no-such-flag"})
	is.True(err != nil)
}

func TestConfigurationFileIsOverriddenByEnvironment(t *testing.T) {
	is := is.New(t)

	configFile := filepath.Join(t.TempDir(), "catalog.yaml")
	is.NoErr(os.WriteFile(configFile, []byte("endpoint: http://catalog.local/api\ntimeout: 5s\nonPageError: collect\n"), 0o600))

	t.Setenv("CATALOG_PAGE_ERROR_POLICY", "abort")

	flags := DefaultFlags()
	flags[configPath] = configFile

	cfg, err := loadCatalogConfig(t.Context(), flags)
	is.NoErr(err)

	is.Equal(cfg.PeopleURL(), "http://catalog.local/api/people/")
	is.Equal(cfg.Timeout, "5s")
	is.Equal(cfg.OnPageError, "abort")
}

func TestMissingConfigurationFileIsAnError(t *testing.T) {
	is := is.New(t)

	flags := DefaultFlags()
	flags[configPath] = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := loadCatalogConfig(t.Context(), flags)
	is.True(err != nil)
}

func TestReport(t *testing.T) {
	is := is.New(t)

	mock := test.NewMockCatalog(
		test.Page(
			test.Person("Luke Skywalker", "172", "77", "blond"),
			test.Person("Darth Vader", "202", "136", "none"),
			test.Person("Leia Organa", "150", "49", "brown"),
		),
		test.Page(
			test.Person("Chewbacca", "228", "112", "brown"),
			test.Person("Arvel Crynyd", "unknown", "unknown", "brown"),
		),
	)
	defer mock.Close()

	t.Setenv("CATALOG_PEOPLE_PATH", mock.PeopleURL())

	out := &bytes.Buffer{}
	err := run(context.Background(), DefaultFlags(), out)
	is.NoErr(err)

	report := out.String()

	is.True(strings.HasPrefix(report, "names listed from the people resource:\n"))
	is.True(strings.Contains(report, "  Luke Skywalker\n"))
	is.True(strings.Contains(report, "number of names: 5\n"))
	is.True(strings.Contains(report, "people: []catalog.Record\n"))
	is.True(strings.Contains(report, "number of people: 5\n"))
	is.True(strings.Contains(report, "number of matches: 1\n"))
	is.True(strings.Contains(report, "height of first match: 202\n"))
	is.True(strings.Contains(report, "profile: *catalog.FrequencyTable\n"))
	is.True(strings.Contains(report, "total: 5, nulls: 1\n"))
	is.True(strings.Contains(report, "min: 150.00, max: 228.00"))

	is.Equal(mock.RequestCount(), 8) // two pages for each of the four steps
}

func TestReportWithBadBinsIsAnError(t *testing.T) {
	is := is.New(t)

	flags := DefaultFlags()
	flags[profileBins] = "five"

	_, err := newReportOptions(flags)
	is.True(err != nil)
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "0", &people.PeopleCatalogMock{})
	}()

	cancel()

	select {
	case err := <-done:
		is.NoErr(err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownReportsUnfinishedRequests(t *testing.T) {
	is := is.New(t)

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-release
		}),
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	is.NoErr(err)
	go srv.Serve(ln)

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-started

	err = shutdownServer(t.Context(), srv, 10*time.Millisecond)
	is.True(errors.Is(err, context.DeadlineExceeded))
}
