// Package arxiv fetches publication metadata from the arXiv export API.
package arxiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/hoppe93/PublicationManager/internal/article"
)

const (
	// BaseURL is the arXiv export API query endpoint.
	BaseURL = "https://export.arxiv.org/api/query"

	// DefaultTimeout bounds a single query.
	DefaultTimeout = 30 * time.Second
)

// arXiv asks clients for no more than one request every three seconds.
var requestInterval = 3 * time.Second

// FetchError indicates the arXiv API returned a non-success status.
type FetchError struct {
	StatusCode int
	Reason     string
	ID         string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching arXiv %s: server returned '%d: %s'", e.ID, e.StatusCode, e.Reason)
}

// ErrNotFound is returned when the feed contains no entry for the ID.
var ErrNotFound = errors.New("arXiv entry not found")

// Client is a rate-limited client for the arXiv export API.
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
		c.baseURL = url
	}
}

// NewClient creates an arXiv export API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the Atom entry for an arXiv ID (or arxiv.org URL) and
// maps it to a canonical article with status non-peer-reviewed.
func (c *Client) Fetch(ctx context.Context, id string) (article.Article, error) {
	id = NormalizeID(id)
	if id == "" {
		return article.Article{}, fmt.Errorf("empty arXiv ID")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return article.Article{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?id_list="+url.QueryEscape(id), nil)
	if err != nil {
		return article.Article{}, fmt.Errorf("building request for arXiv %s: %w", id, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return article.Article{}, fmt.Errorf("fetching arXiv %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return article.Article{}, &FetchError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			ID:         id,
		}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return article.Article{}, fmt.Errorf("parsing arXiv feed for %s: %w", id, err)
	}
	if len(feed.Items) == 0 || feed.Items[0].Title == "" {
		return article.Article{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return mapEntry(feed.Items[0]), nil
}

// mapEntry converts an Atom entry into a canonical article. Preprints are
// non-peer-reviewed by definition; a later journal publication replaces the
// record via the DOI path.
func mapEntry(item *gofeed.Item) article.Article {
	art := article.Article{
		Title:   strings.Join(strings.Fields(item.Title), " "),
		URL:     item.Link,
		Journal: "arXiv",
		Status:  article.StatusNonPeerReviewed,
		Date:    article.Date{Month: 1, Day: 1},
	}

	if item.PublishedParsed != nil {
		art.Date = article.Date{
			Year:  item.PublishedParsed.Year(),
			Month: int(item.PublishedParsed.Month()),
			Day:   item.PublishedParsed.Day(),
		}
	}

	for _, a := range item.Authors {
		if a == nil || a.Name == "" {
			continue
		}
		art.Authors = append(art.Authors, formatAuthor(a.Name))
	}

	return art
}

// formatAuthor converts a full name ("John Robert Smith") into the display
// convention used by normalized articles ("J. R. Smith").
func formatAuthor(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}

	var b strings.Builder
	for _, given := range parts[:len(parts)-1] {
		b.WriteString(string([]rune(given)[0]))
		b.WriteString(". ")
	}
	b.WriteString(parts[len(parts)-1])
	return b.String()
}

// NormalizeID extracts a bare arXiv ID from an arxiv.org URL; bare IDs pass
// through unchanged.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if !strings.Contains(id, "arxiv.org") {
		return id
	}
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	return strings.TrimSuffix(id, ".pdf")
}
