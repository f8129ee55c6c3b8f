package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// CatalogPage describes one page served by a MockCatalog. Status and Body override the
// generated response when set.
type CatalogPage struct {
	Results []map[string]any
	Status  int
	Body    string
}

func Page(results ...map[string]any) CatalogPage {
	return CatalogPage{Results: results}
}

func Person(name, height, mass, hairColor string) map[string]any {
	return map[string]any{
		"name":       name,
		"height":     height,
		"mass":       mass,
		"hair_color": hairColor,
		"skin_color": "fair",
		"films":      []string{"https://swapi.dev/api/films/1/"},
	}
}

// MockCatalog serves a next-linked people resource at /api/people/?page=N.
type MockCatalog struct {
	server *httptest.Server
	pages  []CatalogPage

	mu       sync.Mutex
	requests int
}

func NewMockCatalog(pages ...CatalogPage) *MockCatalog {
	m := &MockCatalog{pages: pages}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/", m.root)
	mux.HandleFunc("/api/people/", m.people)

	m.server = httptest.NewServer(mux)
	return m
}

func (m *MockCatalog) Close() {
	m.server.Close()
}

func (m *MockCatalog) URL() string {
	return m.server.URL + "/api/"
}

func (m *MockCatalog) PeopleURL() string {
	return m.server.URL + "/api/people/"
}

func (m *MockCatalog) PageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", m.PeopleURL(), page)
}

func (m *MockCatalog) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

func (m *MockCatalog) count() {
	m.mu.Lock()
	m.requests++
	m.mu.Unlock()
}

func (m *MockCatalog) root(w http.ResponseWriter, r *http.Request) {
	m.count()

	body, _ := json.Marshal(map[string]string{
		"people":  m.PeopleURL(),
		"planets": m.server.URL + "/api/planets/",
	})

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (m *MockCatalog) people(w http.ResponseWriter, r *http.Request) {
	m.count()

	pageNumber := 1
	if p := r.URL.Query().Get("page"); p != "" {
		pageNumber, _ = strconv.Atoi(p)
	}

	if pageNumber < 1 || pageNumber > len(m.pages) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found"}`))
		return
	}

	page := m.pages[pageNumber-1]

	status := http.StatusOK
	if page.Status != 0 {
		status = page.Status
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if page.Body != "" {
		w.Write([]byte(page.Body))
		return
	}

	total := 0
	for _, p := range m.pages {
		total += len(p.Results)
	}

	var next, previous *string
	if pageNumber < len(m.pages) {
		n := m.PageURL(pageNumber + 1)
		next = &n
	}
	if pageNumber > 1 {
		p := m.PageURL(pageNumber - 1)
		previous = &p
	}

	results := page.Results
	if results == nil {
		results = []map[string]any{}
	}

	body, _ := json.Marshal(struct {
		Count    int              `json:"count"`
		Next     *string          `json:"next"`
		Previous *string          `json:"previous"`
		Results  []map[string]any `json:"results"`
	}{total, next, previous, results})

	w.Write(body)
}
