// Package fetch retrieves and parses third-party results pages.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// UserAgent identifies this service to source sites.
	UserAgent = "drawfetch/1.0 (+https://github.com/drawfetch)"
	// Timeout bounds a single page fetch. Failures advance the fallback
	// chain, so there is no per-URL retry on top of this.
	Timeout = 10 * time.Second
)

// Document is a parsed source page plus its origin URL. Immutable once
// fetched.
type Document struct {
	Doc *goquery.Document
	URL string
}

// Fetcher retrieves source documents. The resolver depends on this interface
// so tests can substitute canned pages.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Document, error)
}

// Client is the production Fetcher backed by net/http.
type Client struct {
	http *http.Client
}

// NewClient creates a Client with the standard timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: Timeout},
	}
}

// Fetch retrieves url and parses the body. Timeouts, connection failures,
// and non-2xx statuses all fail the same way; callers treat any error here
// as a soft miss.
func (c *Client) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return &Document{Doc: doc, URL: url}, nil
}
