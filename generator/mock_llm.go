package generator

import (
	"context"
	"strings"
	"sync"
)

// MockLLM is an in-memory LLMClient for tests and for running the app
// without credentials. The nth call returns Responses[n], or Errs[n]
// when that is set. Past the end of the queues it synthesizes a small
// markdown document instead of calling anything.
type MockLLM struct {
	mu        sync.Mutex
	Responses []string
	Errs      []error
	Calls     []Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.Calls)
	m.Calls = append(m.Calls, prompt)

	if n < len(m.Errs) && m.Errs[n] != nil {
		return "", m.Errs[n]
	}
	if n < len(m.Responses) {
		return m.Responses[n], nil
	}
	return synthesize(prompt), nil
}

func synthesize(prompt Prompt) string {
	var sb strings.Builder
	sb.WriteString("# Sample Newsletter\n\n")
	sb.WriteString("## Welcome\n\nThis issue was produced by the built-in mock model. ")
	sb.WriteString("No search or completion calls left the process.\n\n")
	sb.WriteString("## Highlights\n\n")
	sb.WriteString("- A placeholder insight with a [source](https://example.com)\n")
	sb.WriteString("- Numbers to taste: 42% of readers skim, 58% skim faster\n\n")
	sb.WriteString("## Prompt\n\n```\n")
	sb.WriteString(firstLine(prompt.User))
	sb.WriteString("\n```\n")
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// MockSearcher serves canned search results and pages. The zero value
// answers every query with two plausible results.
type MockSearcher struct {
	Results   []SearchResult
	Pages     map[string]string
	SearchErr error
	ScrapeErr error
}

func (m *MockSearcher) Search(_ context.Context, query string) ([]SearchResult, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	if m.Results != nil {
		return m.Results, nil
	}
	return []SearchResult{
		{Title: "Weekly roundup: " + query, Link: "https://example.com/roundup", Snippet: "An overview of recent developments.", Date: "2 days ago"},
		{Title: query + " by the numbers", Link: "https://example.com/stats", Snippet: "Key statistics at a glance."},
	}, nil
}

func (m *MockSearcher) Scrape(_ context.Context, pageURL string) (string, error) {
	if m.ScrapeErr != nil {
		return "", m.ScrapeErr
	}
	if text, ok := m.Pages[pageURL]; ok {
		return text, nil
	}
	return "Placeholder article text for " + pageURL + ".", nil
}
