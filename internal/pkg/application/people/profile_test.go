package people

import (
	"errors"
	"testing"

	catalogerrors "github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/matryer/is"
)

func TestQuantileBucketsHaveEqualPopulation(t *testing.T) {
	is := is.New(t)

	buckets := quantileBuckets([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 5)

	is.Equal(len(buckets), 5)
	for _, b := range buckets {
		is.Equal(b.Count, 2)
	}

	is.Equal(buckets[0].Label, "(0.999, 2.8]")
	is.Equal(buckets[4].Label, "(8.2, 10.0]")
	is.Equal(*buckets[0].Lower, 1.0)
	is.Equal(*buckets[4].Upper, 10.0)
}

func TestQuantileBucketsMergeDuplicateEdges(t *testing.T) {
	is := is.New(t)

	buckets := quantileBuckets([]float64{5, 5, 5, 5, 10}, 4)

	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].Label, "(4.999, 10.0]")
	is.Equal(buckets[0].Count, 5)
}

func TestQuantileBucketsWithSingleDistinctValue(t *testing.T) {
	is := is.New(t)

	buckets := quantileBuckets([]float64{7, 7, 7}, 3)

	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].Label, "[7.0, 7.0]")
	is.Equal(buckets[0].Count, 3)
}

func TestQuantileBucketsWithoutValues(t *testing.T) {
	is := is.New(t)
	is.Equal(len(quantileBuckets(nil, 3)), 0)
}

func TestQuantile(t *testing.T) {
	is := is.New(t)

	sorted := []float64{1, 2, 3, 4}
	is.Equal(quantile(sorted, 0), 1.0)
	is.Equal(quantile(sorted, 0.5), 2.5)
	is.Equal(quantile(sorted, 1), 4.0)
}

func TestProfileNumericStripsSeparatorsAndCountsNulls(t *testing.T) {
	is := is.New(t)

	table, err := profileNumeric("mass", values("1,358", "77", "", "32"), 2)
	is.NoErr(err)

	is.Equal(table.Total, 4)
	is.Equal(table.Nulls, 1)
	is.Equal(table.Sum(), 3)
	is.Equal(table.Summary.Max, 1358.0)
	is.Equal(table.Summary.Median, 77.0)
}

func TestProfileNumericFailsOnTextValues(t *testing.T) {
	is := is.New(t)

	_, err := profileNumeric("hair_color", values("blond", "brown"), 2)
	is.True(errors.Is(err, catalogerrors.ErrConversion))
}

func TestProfileCategoricalOrdersByDescendingCount(t *testing.T) {
	is := is.New(t)

	table := profileCategorical("hair_color", values("blond", "", "brown", "brown", "black", ""))

	is.Equal(table.Total, 6)
	is.Equal(table.Nulls, 2)
	is.Equal(table.Sum(), 6)

	labels := []string{}
	for _, b := range table.Buckets {
		labels = append(labels, b.Label)
	}
	is.Equal(labels, []string{"brown", NullLabel, "blond", "black"}) // ties keep first seen order
	is.True(table.Buckets[1].Null)
}

// values builds a column where the empty string stands for null
func values(v ...string) []*string {
	column := make([]*string, 0, len(v))
	for i := range v {
		if v[i] == "" {
			column = append(column, nil)
			continue
		}
		column = append(column, &v[i])
	}
	return column
}
