package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// SearchResult is one organic hit from the search API.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date,omitempty"`
}

// PageExcerpt is readable text pulled from one source page.
type PageExcerpt struct {
	URL  string
	Text string
}

// Searcher abstracts web search and page scraping so the pipeline can run
// offline in tests and in mock mode.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Scrape(ctx context.Context, pageURL string) (string, error)
}

const (
	serperEndpoint = "https://google.serper.dev/search"

	searchResultCap = 10
	scrapeBodyCap   = 512 * 1024
	excerptRuneCap  = 4000
)

// SerperClient queries the serper.dev search API and fetches source pages
// directly.
type SerperClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:   apiKey,
		endpoint: serperEndpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []SearchResult `json:"organic"`
}

func (s *SerperClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	body, err := json.Marshal(serperRequest{Q: query, Num: searchResultCap})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("search API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return parsed.Organic, nil
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Scrape fetches a page and reduces it to plain text for prompt context.
// Markup is stripped with regular expressions, not parsed, and the result
// is capped so a single page cannot flood the prompt.
func (s *SerperClient) Scrape(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create page request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newsletter-agent/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", pageURL, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, scrapeBodyCap))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pageURL, err)
	}

	text := scriptRe.ReplaceAllString(string(raw), " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")

	if runes := []rune(text); len(runes) > excerptRuneCap {
		text = string(runes[:excerptRuneCap])
	}
	return text, nil
}
