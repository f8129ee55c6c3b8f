package projection

import (
	"github.com/diwise/people-catalog/pkg/catalog"
)

// Project restricts a record to the fields in the whitelist. Whitelisted fields that
// the record does not carry are omitted rather than filled with null.
func Project(r catalog.Record, whitelist []string) catalog.Record {
	projected := make(catalog.Record, len(whitelist))

	for _, field := range whitelist {
		if v, ok := r[field]; ok {
			projected[field] = v
		}
	}

	return projected
}

func ProjectAll(records []catalog.Record, whitelist []string) []catalog.Record {
	projected := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		projected = append(projected, Project(r, whitelist))
	}
	return projected
}
