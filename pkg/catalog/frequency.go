package catalog

import (
	"fmt"
	"strings"
)

// Bucket counts the occurrences of a single value or of the values inside a quantile interval.
type Bucket struct {
	Label string   `json:"label"`
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
	Null  bool     `json:"null,omitempty"`
	Count int      `json:"count"`
}

type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// FrequencyTable is the result of profiling a single column. Buckets are ordered
// by descending count, ties keep their first encountered (or interval) order.
type FrequencyTable struct {
	Column  string   `json:"column"`
	Numeric bool     `json:"numeric"`
	Total   int      `json:"total"`
	Nulls   int      `json:"nulls"`
	Buckets []Bucket `json:"buckets"`
	Summary *Summary `json:"summary,omitempty"`
}

func (ft FrequencyTable) Sum() int {
	sum := 0
	for _, b := range ft.Buckets {
		sum += b.Count
	}
	return sum
}

func (ft FrequencyTable) Count(label string) (int, bool) {
	for _, b := range ft.Buckets {
		if b.Label == label {
			return b.Count, true
		}
	}
	return 0, false
}

func (ft FrequencyTable) String() string {
	width := 0
	for _, b := range ft.Buckets {
		width = max(width, len(b.Label))
	}

	sb := strings.Builder{}
	sb.WriteString(ft.Column)
	sb.WriteString("\n")

	for _, b := range ft.Buckets {
		sb.WriteString(fmt.Sprintf("%-*s    %d\n", width, b.Label, b.Count))
	}

	return sb.String()
}
