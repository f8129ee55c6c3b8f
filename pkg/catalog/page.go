package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diwise/people-catalog/pkg/catalog/errors"
)

// Page is one fetched unit of a paginated catalog resource.
type Page struct {
	Count    int64    `json:"count"`
	Next     string   `json:"next,omitempty"`
	Previous string   `json:"previous,omitempty"`
	Results  []Record `json:"results"`
}

func (p Page) HasNext() bool {
	return p.Next != ""
}

func NewPageFromJSON(body []byte) (*Page, error) {
	envelope := struct {
		Count    *int64          `json:"count"`
		Next     *string         `json:"next"`
		Previous *string         `json:"previous"`
		Results  json.RawMessage `json:"results"`
	}{}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("invalid json: %s", err.Error()))
	}

	if len(envelope.Results) == 0 || bytes.Equal(envelope.Results, []byte("null")) {
		return nil, errors.NewParseError("response has no results")
	}

	p := &Page{
		Count: -1,
	}

	dec := json.NewDecoder(bytes.NewReader(envelope.Results))
	dec.UseNumber()

	if err = dec.Decode(&p.Results); err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("unexpected results: %s", err.Error()))
	}

	if envelope.Count != nil {
		p.Count = *envelope.Count
	}
	if envelope.Next != nil {
		p.Next = *envelope.Next
	}
	if envelope.Previous != nil {
		p.Previous = *envelope.Previous
	}

	return p, nil
}
