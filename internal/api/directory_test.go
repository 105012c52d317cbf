package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

func fptr(f float64) *float64 { return &f }

func TestListWorkers_EncodesFilters(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/workers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "28.6" || q.Get("lng") != "77.2" {
			t.Errorf("geo origin not encoded: %v", q)
		}
		if q.Get("radiusKm") != "10" || q.Get("search") != "plumber" || q.Get("workType") != "Plumber" || q.Get("location") != "delhi" {
			t.Errorf("filters not encoded: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.ListWorkersResponse{Workers: []types.WorkerRecord{{ID: "w1"}}, Count: 1})
	}))
	defer srv.Close()

	workers, err := ListWorkers(context.Background(), srv.Client(), srv.URL, types.DirectoryQuery{
		Latitude:   fptr(28.6),
		Longitude:  fptr(77.2),
		RadiusKm:   fptr(10),
		SearchText: "plumber",
		WorkType:   "Plumber",
		Location:   "delhi",
	})
	if err != nil {
		t.Fatalf("ListWorkers: %v", err)
	}
	if len(workers) != 1 || workers[0].ID != "w1" {
		t.Fatalf("unexpected workers: %+v", workers)
	}
}

func TestListWorkers_OmitsUnsetFilters(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query params, got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(types.ListWorkersResponse{})
	}))
	defer srv.Close()

	if _, err := ListWorkers(context.Background(), srv.Client(), srv.URL, types.DirectoryQuery{WorkType: "all"}); err != nil {
		t.Fatalf("ListWorkers: %v", err)
	}
}

func TestListWorkers_RejectsHalfGeoPair(t *testing.T) {
	t.Parallel()
	_, err := ListWorkers(context.Background(), http.DefaultClient, "http://example.invalid", types.DirectoryQuery{Latitude: fptr(28.6)})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
