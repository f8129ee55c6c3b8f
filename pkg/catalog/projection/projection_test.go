package projection

import (
	"reflect"
	"testing"

	"github.com/diwise/people-catalog/pkg/catalog"
	"github.com/matryer/is"
)

func TestProjectKeepsOnlyWhitelistedFields(t *testing.T) {
	is := is.New(t)

	r := catalog.Record{"name": "Saikrishna", "height": 176, "weight": 83, "age": 24}

	p := Project(r, []string{"name", "height"})

	is.Equal(len(p), 2)
	is.Equal(p["name"], "Saikrishna")
	is.Equal(p["height"], 176)
	_, found := p["weight"]
	is.True(!found) // unrelated keys must never appear
}

func TestProjectOmitsAbsentFields(t *testing.T) {
	is := is.New(t)

	r := catalog.Record{"name": "Yoda", "mass": nil}

	p := Project(r, []string{"name", "height", "mass", "hair_color"})

	is.Equal(len(p), 2)
	_, found := p["height"]
	is.True(!found) // absent fields are omitted, not null filled
	v, found := p["mass"]
	is.True(found) // present null values are kept
	is.Equal(v, nil)
}

func TestProjectIsIdempotent(t *testing.T) {
	is := is.New(t)

	whitelist := []string{"hair_color", "name", "mass"}
	r := catalog.Record{"name": "Leia Organa", "height": "150", "mass": "49", "hair_color": "brown", "eye_color": "brown"}

	once := Project(r, whitelist)
	twice := Project(once, whitelist)

	is.True(reflect.DeepEqual(once, twice))
}

func TestProjectWhitelistOrderIsIrrelevant(t *testing.T) {
	is := is.New(t)

	r := catalog.Record{"name": "Leia Organa", "height": "150", "mass": "49"}

	is.True(reflect.DeepEqual(
		Project(r, []string{"name", "height"}),
		Project(r, []string{"height", "name"}),
	))
}

func TestProjectNilRecord(t *testing.T) {
	is := is.New(t)

	p := Project(nil, []string{"name"})
	is.True(p != nil)
	is.Equal(len(p), 0)
}

func TestProjectAll(t *testing.T) {
	is := is.New(t)

	records := []catalog.Record{
		{"name": "Luke Skywalker", "height": "172", "films": []any{}},
		{"name": "Darth Vader", "height": "202"},
	}

	p := ProjectAll(records, []string{"name"})
	is.Equal(len(p), 2)
	is.Equal(p[1]["name"], "Darth Vader")
	is.Equal(len(p[0]), 1)
}
