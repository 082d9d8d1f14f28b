package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New("", "https://example.com"); err == nil {
		t.Error("expected error for empty api key")
	}
	if _, err := New("key", ""); err == nil {
		t.Error("expected error for empty base url")
	}
}

func TestSeasonParsesListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("Season"); got != "2" {
			t.Errorf("Season param = %q, want 2", got)
		}
		if got := r.URL.Query().Get("i"); got != "tt0108778" {
			t.Errorf("i param = %q", got)
		}
		w.Write([]byte(`{
			"Season": "2",
			"Episodes": [
				{"Title": "The One with Ross's New Girlfriend", "Episode": "1", "imdbID": "tt0583459"},
				{"Title": "Broken", "Episode": "N/A", "imdbID": "tt0000000"},
				{"Title": "The One with the Breast Milk", "Episode": "2", "imdbID": "tt0583452"}
			],
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	listing, err := client.Season(context.Background(), "tt0108778", 2)
	if err != nil {
		t.Fatalf("Season failed: %v", err)
	}
	if listing.Season != 2 {
		t.Errorf("Season = %d", listing.Season)
	}
	if len(listing.Episodes) != 2 {
		t.Fatalf("episode count = %d, want 2 (malformed entry dropped)", len(listing.Episodes))
	}
	if listing.Episodes[0].IMDBID != "tt0583459" || listing.Episodes[0].Number != 1 {
		t.Errorf("first episode = %+v", listing.Episodes[0])
	}
}

func TestSeasonAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "False", "Error": "Series not found!"}`))
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Season(context.Background(), "tt000", 1); err == nil {
		t.Fatal("expected error for Response=False")
	}
}

func TestSeasonHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Season(context.Background(), "tt0108778", 1); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSeasonRejectsInvalidArgs(t *testing.T) {
	client, err := New("key", "https://example.com")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := client.Season(context.Background(), "", 1); err == nil {
		t.Error("expected error for empty series id")
	}
	if _, err := client.Season(context.Background(), "tt0108778", 0); err == nil {
		t.Error("expected error for season 0")
	}
}

func TestEpisodeDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "tt0583459" {
			t.Errorf("i param = %q", got)
		}
		if got := r.URL.Query().Get("plot"); got != "full" {
			t.Errorf("plot param = %q", got)
		}
		w.Write([]byte(`{
			"Title": "The One with Ross's New Girlfriend",
			"Plot": "Rachel waits at the airport for Ross.",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	details, err := client.EpisodeDetails(context.Background(), "tt0583459")
	if err != nil {
		t.Fatalf("EpisodeDetails failed: %v", err)
	}
	if details.Title != "The One with Ross's New Girlfriend" {
		t.Errorf("Title = %q", details.Title)
	}
	if details.Plot != "Rachel waits at the airport for Ross." {
		t.Errorf("Plot = %q", details.Plot)
	}
}

func TestEpisodeDetailsNormalizesMissingPlot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Title": "Some Episode", "Plot": "N/A", "Response": "True"}`))
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	details, err := client.EpisodeDetails(context.Background(), "tt0583459")
	if err != nil {
		t.Fatalf("EpisodeDetails failed: %v", err)
	}
	if details.Plot != "" {
		t.Errorf("Plot = %q, want empty for N/A", details.Plot)
	}
}

func TestEpisodeDetailsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Title": `))
	}))
	defer server.Close()

	client, err := New("key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.EpisodeDetails(context.Background(), "tt0583459"); err == nil {
		t.Fatal("expected decode error")
	}
}
