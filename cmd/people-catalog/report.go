package main

import (
	"context"
	"fmt"
	"io"

	"github.com/diwise/people-catalog/internal/pkg/application/people"
	"github.com/diwise/people-catalog/pkg/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type reportOptions struct {
	findField string
	findValue string

	column  string
	bins    int
	numeric bool
}

func newReportOptions(flags FlagMap) (reportOptions, error) {
	bins, err := flags.Int(profileBins)
	if err != nil {
		return reportOptions{}, fmt.Errorf("bad value for -bins: %w", err)
	}

	return reportOptions{
		findField: flags[findField],
		findValue: flags[findValue],
		column:    flags[profileColumn],
		bins:      bins,
		numeric:   flags.Bool(profileNumeric),
	}, nil
}

// writeReport lists the names, retrieves all people, looks up a single person and
// profiles a column. Every step traverses the catalog again.
func writeReport(ctx context.Context, w io.Writer, app people.PeopleCatalog, opts reportOptions) error {
	p := message.NewPrinter(language.English)

	names, err := app.Names(ctx)
	if err != nil {
		return err
	}

	p.Fprintf(w, "names listed from the people resource:\n")
	for _, name := range names {
		p.Fprintf(w, "  %s\n", name)
	}
	p.Fprintf(w, "number of names: %d\n\n", len(names))

	all, err := app.People(ctx)
	if err != nil {
		return err
	}

	p.Fprintf(w, "people: %T\n", all)
	p.Fprintf(w, "number of people: %d\n\n", len(all))

	matches, err := app.Find(ctx, opts.findField, opts.findValue)
	if err != nil {
		return err
	}

	p.Fprintf(w, "people with %s == %q:\n", opts.findField, opts.findValue)
	for _, m := range matches {
		p.Fprintf(w, "  %v\n", map[string]any(m))
	}
	p.Fprintf(w, "number of matches: %d\n", len(matches))
	p.Fprintf(w, "height of first match: %s\n\n", firstHeight(matches))

	table, err := app.Profile(ctx, opts.column, opts.bins, opts.numeric)
	if err != nil {
		return err
	}

	p.Fprintf(w, "%s", table.String())
	p.Fprintf(w, "profile: %T\n", table)
	p.Fprintf(w, "total: %d, nulls: %d\n", table.Total, table.Nulls)

	if s := table.Summary; s != nil {
		p.Fprintf(w, "count: %d, min: %.2f, max: %.2f, mean: %.2f, median: %.2f\n",
			s.Count, s.Min, s.Max, s.Mean, s.Median)
	}

	return nil
}

func firstHeight(matches []catalog.Record) string {
	if len(matches) == 0 {
		return "n/a"
	}

	height, ok := matches[0].Text("height")
	if !ok {
		return "n/a"
	}

	return height
}
