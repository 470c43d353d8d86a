package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
)

const defaultMaxSources = 3

// Pipeline runs the two-stage research-then-write flow. The stages run
// strictly in sequence: the writer only ever sees a finished research
// report.
type Pipeline struct {
	llm        LLMClient
	search     Searcher
	maxSources int
}

func NewPipeline(llm LLMClient, search Searcher) (*Pipeline, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if search == nil {
		return nil, errors.New("searcher is required")
	}
	return &Pipeline{llm: llm, search: search, maxSources: defaultMaxSources}, nil
}

// Generate produces a newsletter for topic. A failure in either stage is
// folded into the Result instead of returned, so callers always get a
// presentable outcome.
func (p *Pipeline) Generate(ctx context.Context, topic string, c Customization) Result {
	c = c.withDefaults()
	directive := StyleDirective(c)
	template := SectionTemplate(c)

	log.Printf("[pipeline] researching topic=%q", topic)
	research, err := p.research(ctx, topic, directive)
	if err != nil {
		log.Printf("[pipeline] research failed: %v", err)
		return errorResult(c, err)
	}

	log.Printf("[pipeline] writing newsletter topic=%q", topic)
	content, err := p.write(ctx, topic, c, directive, template, research)
	if err != nil {
		log.Printf("[pipeline] writing failed: %v", err)
		return errorResult(c, err)
	}

	return Result{Status: StatusSuccess, Content: content, Customization: c}
}

func (p *Pipeline) research(ctx context.Context, topic, directive string) (string, error) {
	results, err := p.search.Search(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}

	var pages []PageExcerpt
	for _, r := range results {
		if len(pages) >= p.maxSources {
			break
		}
		if r.Link == "" {
			continue
		}
		text, err := p.search.Scrape(ctx, r.Link)
		if err != nil {
			log.Printf("[pipeline] skipping source %s: %v", r.Link, err)
			continue
		}
		if text == "" {
			continue
		}
		pages = append(pages, PageExcerpt{URL: r.Link, Text: text})
	}

	report, err := p.llm.Complete(ctx, BuildResearchPrompt(topic, directive, results, pages))
	if err != nil {
		return "", fmt.Errorf("research stage failed: %w", err)
	}
	return report, nil
}

func (p *Pipeline) write(ctx context.Context, topic string, c Customization, directive, template, research string) (string, error) {
	content, err := p.llm.Complete(ctx, BuildWritingPrompt(topic, c, directive, template, research))
	if err != nil {
		return "", fmt.Errorf("writing stage failed: %w", err)
	}
	return content, nil
}

func errorResult(c Customization, err error) Result {
	return Result{
		Status:        StatusError,
		Content:       "Error generating newsletter: " + err.Error(),
		Customization: c,
	}
}
