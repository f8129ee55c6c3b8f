package people

import (
	"cmp"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/diwise/people-catalog/pkg/catalog"
	"github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/montanaflynn/stats"
)

const NullLabel string = "<null>"

// lowestEdgeAdjustment widens the first interval so that its lower edge is included.
const lowestEdgeAdjustment float64 = 0.001

func profileCategorical(column string, values []*string) *catalog.FrequencyTable {
	table := &catalog.FrequencyTable{
		Column: column,
		Total:  len(values),
	}

	order := make([]string, 0)
	counts := make(map[string]int)

	for _, v := range values {
		if v == nil {
			table.Nulls++
			continue
		}

		if _, seen := counts[*v]; !seen {
			order = append(order, *v)
		}
		counts[*v]++
	}

	table.Buckets = make([]catalog.Bucket, 0, len(order)+1)
	for _, label := range order {
		table.Buckets = append(table.Buckets, catalog.Bucket{Label: label, Count: counts[label]})
	}

	if table.Nulls > 0 {
		table.Buckets = append(table.Buckets, catalog.Bucket{Label: NullLabel, Null: true, Count: table.Nulls})
	}

	sortByCount(table.Buckets)

	return table
}

func profileNumeric(column string, values []*string, bins int) (*catalog.FrequencyTable, error) {
	table := &catalog.FrequencyTable{
		Column:  column,
		Numeric: true,
		Total:   len(values),
	}

	numbers := make([]float64, 0, len(values))

	for _, v := range values {
		if v == nil {
			table.Nulls++
			continue
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(*v, ",", "")), 64)
		if err != nil {
			return nil, errors.NewConversionError(column, *v)
		}

		if math.IsNaN(f) {
			table.Nulls++
			continue
		}

		numbers = append(numbers, f)
	}

	table.Buckets = quantileBuckets(numbers, bins)
	sortByCount(table.Buckets)

	if len(numbers) > 0 {
		table.Summary = summarize(numbers)
	}

	return table, nil
}

// quantileBuckets splits values into at most bins equal population intervals. The
// intervals are closed on the right, the first one also includes its lower edge.
// Edges that coincide are merged, which yields fewer buckets.
func quantileBuckets(values []float64, bins int) []catalog.Bucket {
	if len(values) == 0 {
		return []catalog.Bucket{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	edges := make([]float64, 0, bins+1)
	for i := 0; i <= bins; i++ {
		e := quantile(sorted, float64(i)/float64(bins))
		if len(edges) == 0 || e != edges[len(edges)-1] {
			edges = append(edges, e)
		}
	}

	if len(edges) == 1 {
		lower, upper := edges[0], edges[0]
		return []catalog.Bucket{{
			Label: "[" + formatEdge(lower) + ", " + formatEdge(upper) + "]",
			Lower: &lower,
			Upper: &upper,
			Count: len(values),
		}}
	}

	buckets := make([]catalog.Bucket, len(edges)-1)
	for i := range buckets {
		lower, upper := edges[i], edges[i+1]
		label := lower
		if i == 0 {
			label = lower - lowestEdgeAdjustment
		}

		buckets[i] = catalog.Bucket{
			Label: "(" + formatEdge(label) + ", " + formatEdge(upper) + "]",
			Lower: &lower,
			Upper: &upper,
		}
	}

	for _, v := range values {
		idx := sort.SearchFloat64s(edges, v) - 1
		if idx < 0 {
			idx = 0
		}
		buckets[idx].Count++
	}

	return buckets
}

// quantile interpolates linearly between the closest ranks of a sorted sample.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

func summarize(numbers []float64) *catalog.Summary {
	data := stats.Float64Data(numbers)

	s := &catalog.Summary{Count: len(numbers)}
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)

	return s
}

func formatEdge(f float64) string {
	s := strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func sortByCount(buckets []catalog.Bucket) {
	slices.SortStableFunc(buckets, func(a, b catalog.Bucket) int {
		return cmp.Compare(b.Count, a.Count)
	})
}
