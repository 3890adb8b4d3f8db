package doi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1088/0029-5515/56/11/112009", "10.1088/0029-5515/56/11/112009"},
		{"https://doi.org/10.1088/0029-5515/56/11/112009", "10.1088/0029-5515/56/11/112009"},
		{"http://doi.org/10.1234/x", "10.1234/x"},
		{"doi.org/10.1234/x", "10.1234/x"},
		{"doi:10.1234/x", "10.1234/x"},
		{"DOI:10.1234/x", "10.1234/x"},
		{"  10.1234/x  ", "10.1234/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/10.1234/test" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", AcceptCSLJSON)
		w.Write([]byte(`{
			"DOI": "10.1234/test",
			"title": "A test paper",
			"container-title": "Nuclear Fusion",
			"volume": "61",
			"published-print": {"date-parts": [[2021, 6]]},
			"author": [{"given": "John", "family": "Smith"}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	rec, err := c.Fetch(context.Background(), "https://doi.org/10.1234/test")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotAccept != AcceptCSLJSON {
		t.Errorf("Accept header = %q, want %q", gotAccept, AcceptCSLJSON)
	}
	if rec.Title != "A test paper" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.ContainerTitle != "Nuclear Fusion" {
		t.Errorf("ContainerTitle = %q", rec.ContainerTitle)
	}
	if rec.PublishedPrint == nil {
		t.Error("PublishedPrint should be set")
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such DOI", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.Fetch(context.Background(), "10.1234/missing")
	if err == nil {
		t.Fatal("Fetch() should fail on non-200 status")
	}

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %T, want *FetchError", err)
	}
	if ferr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", ferr.StatusCode)
	}
	if ferr.DOI != "10.1234/missing" {
		t.Errorf("DOI = %q, want offending DOI", ferr.DOI)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestFetch_EmptyDOI(t *testing.T) {
	c := NewClient()
	if _, err := c.Fetch(context.Background(), "  "); err == nil {
		t.Error("Fetch() with empty DOI should fail")
	}
}

func TestFetch_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Fetch(ctx, "10.1234/x"); err == nil {
		t.Error("Fetch() with cancelled context should fail")
	}
}
