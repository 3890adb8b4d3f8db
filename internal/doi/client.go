// Package doi fetches CSL-JSON bibliographic metadata from the DOI
// registry via content negotiation.
package doi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hoppe93/PublicationManager/internal/csl"
)

const (
	// BaseURL is the DOI resolver base URL.
	BaseURL = "https://doi.org"

	// AcceptCSLJSON is the content type negotiated for metadata requests.
	AcceptCSLJSON = "application/vnd.citationstyles.csl+json"

	// DefaultTimeout bounds a single metadata request.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps requests per second; doi.org throttles aggressive
	// clients.
	RateLimit = 5.0
)

// Client is a rate-limited HTTP client for DOI metadata lookups.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// NewClient creates a DOI metadata client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the raw CSL-JSON record for a DOI. The identifier may be
// a bare DOI or a doi.org URL. A non-200 response is reported as a
// *FetchError carrying the HTTP status; it is never retried here.
func (c *Client) Fetch(ctx context.Context, doi string) (csl.Record, error) {
	doi = Normalize(doi)
	if doi == "" {
		return csl.Record{}, fmt.Errorf("empty DOI")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return csl.Record{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+doi, nil)
	if err != nil {
		return csl.Record{}, fmt.Errorf("building request for DOI %s: %w", doi, err)
	}
	req.Header.Set("Accept", AcceptCSLJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return csl.Record{}, fmt.Errorf("fetching DOI %s: %w", doi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return csl.Record{}, &FetchError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			DOI:        doi,
		}
	}

	var rec csl.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return csl.Record{}, fmt.Errorf("parsing metadata for DOI %s: %w", doi, err)
	}
	if rec.DOI == "" {
		rec.DOI = doi
	}

	return rec, nil
}

// Normalize strips resolver prefixes from a DOI or DOI URL.
func Normalize(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "doi:")
	doi = strings.TrimPrefix(doi, "DOI:")
	return doi
}
