package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// EpisodeRef is one entry of a season listing.
type EpisodeRef struct {
	IMDBID string
	Number int
	Title  string
}

// SeasonListing holds the episode references of a single season.
type SeasonListing struct {
	Season   int
	Episodes []EpisodeRef
}

// EpisodeDetails carries the full metadata of a single episode.
type EpisodeDetails struct {
	Title string
	Plot  string
}

// seasonResponse models the OMDb season payload. Numeric fields arrive as strings.
type seasonResponse struct {
	Season   string `json:"Season"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Episodes []struct {
		Title   string `json:"Title"`
		Episode string `json:"Episode"`
		IMDBID  string `json:"imdbID"`
	} `json:"Episodes"`
}

// episodeResponse models the OMDb episode detail payload.
type episodeResponse struct {
	Title    string `json:"Title"`
	Plot     string `json:"Plot"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Season fetches the episode listing for one season of the given series.
func (c *Client) Season(ctx context.Context, seriesID string, season int) (*SeasonListing, error) {
	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, errors.New("series id must not be empty")
	}
	if season <= 0 {
		return nil, errors.New("season must be positive")
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", seriesID)
	params.Set("Season", strconv.Itoa(season))

	var payload seasonResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, fmt.Errorf("omdb season %d: %w", season, err)
	}
	if !strings.EqualFold(payload.Response, "True") {
		return nil, fmt.Errorf("omdb season %d: %s", season, apiError(payload.Error))
	}

	listing := &SeasonListing{Season: season}
	for _, ep := range payload.Episodes {
		number, err := strconv.Atoi(strings.TrimSpace(ep.Episode))
		if err != nil || number <= 0 || strings.TrimSpace(ep.IMDBID) == "" {
			// Malformed listing entries contribute nothing.
			continue
		}
		listing.Episodes = append(listing.Episodes, EpisodeRef{
			IMDBID: strings.TrimSpace(ep.IMDBID),
			Number: number,
			Title:  naToEmpty(ep.Title),
		})
	}
	return listing, nil
}

// EpisodeDetails fetches the full details for a single episode by IMDb ID.
func (c *Client) EpisodeDetails(ctx context.Context, imdbID string) (*EpisodeDetails, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id must not be empty")
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var payload episodeResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, fmt.Errorf("omdb episode %s: %w", imdbID, err)
	}
	if !strings.EqualFold(payload.Response, "True") {
		return nil, fmt.Errorf("omdb episode %s: %s", imdbID, apiError(payload.Error))
	}

	return &EpisodeDetails{
		Title: naToEmpty(payload.Title),
		Plot:  naToEmpty(payload.Plot),
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return fmt.Errorf("parse omdb url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("omdb returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode omdb response: %w", err)
	}
	return nil
}

func apiError(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "request rejected"
	}
	return message
}

// naToEmpty maps OMDb's "N/A" placeholder to an empty string.
func naToEmpty(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}
