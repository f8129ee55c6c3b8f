package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/diwise/people-catalog/internal/pkg/application/people"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	serveMode FlagType = iota
	servicePort

	configPath

	logFormat

	profileColumn
	profileBins
	profileNumeric

	findField
	findValue
)

func DefaultFlags() FlagMap {
	return FlagMap{
		serveMode:   "false",
		servicePort: "8080",
		configPath:  "",
		logFormat:   "json",

		profileColumn:  "height",
		profileBins:    "5",
		profileNumeric: "true",

		findField: "name",
		findValue: "Darth Vader",
	}
}

func parseExternalConfig(ctx context.Context, flags FlagMap, args []string) (FlagMap, error) {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = envOrDef(ctx, "CATALOG_CONFIG_PATH", flags[configPath])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	fs := flag.NewFlagSet("people-catalog", flag.ContinueOnError)

	fs.BoolFunc("serve", "serve the catalog over http instead of printing a report", apply(serveMode))
	fs.Func("port", "port number to serve http on", apply(servicePort))
	fs.Func("config", "path to a yaml configuration file", apply(configPath))
	fs.Func("log-format", "log format (json or text)", apply(logFormat))
	fs.Func("column", "column to profile in the report", apply(profileColumn))
	fs.Func("bins", "number of quantile buckets for numeric profiles", apply(profileBins))
	fs.BoolFunc("numeric", "profile the column as numeric (-numeric=false for categorical)", apply(profileNumeric))
	fs.Func("find-field", "field to search on in the report", apply(findField))
	fs.Func("find-value", "value to search for in the report", apply(findValue))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}

func (fm FlagMap) Bool(f FlagType) bool {
	b, _ := strconv.ParseBool(fm[f])
	return b
}

func (fm FlagMap) Int(f FlagType) (int, error) {
	i, err := strconv.Atoi(fm[f])
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", fm[f], err)
	}
	return i, nil
}

// loadCatalogConfig reads the optional yaml file and lets the environment override it
func loadCatalogConfig(ctx context.Context, flags FlagMap) (*people.Config, error) {
	cfg := people.DefaultConfig()

	if flags[configPath] != "" {
		f, err := os.Open(flags[configPath])
		if err != nil {
			return nil, fmt.Errorf("failed to open configuration file: %w", err)
		}
		defer f.Close()

		cfg, err = people.LoadConfiguration(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration file: %w", err)
		}
	}

	envOrDef := env.GetVariableOrDefault
	cfg.Endpoint = envOrDef(ctx, "CATALOG_URL", cfg.Endpoint)
	cfg.People = envOrDef(ctx, "CATALOG_PEOPLE_PATH", cfg.People)
	cfg.Timeout = envOrDef(ctx, "CATALOG_TIMEOUT", cfg.Timeout)
	cfg.OnPageError = envOrDef(ctx, "CATALOG_PAGE_ERROR_POLICY", cfg.OnPageError)

	return cfg, nil
}
