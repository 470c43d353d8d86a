package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message set sent to the LLM for one completion.
type Prompt struct {
	System  string
	User    string
	History []Message
}

// Message carries optional prior context.
type Message struct {
	Role    string
	Content string
}

const researcherSystem = "You are a newsletter research specialist with years of experience " +
	"gathering high-quality information from credible sources. You excel at finding " +
	"trending topics, expert opinions, and data-driven insights. Report your findings " +
	"directly, without preamble."

const writerSystem = "You are a newsletter content writer. You know how to structure " +
	"content for maximum engagement, use compelling headlines, and present information " +
	"in an accessible way. Output Markdown only, no extra commentary."

// BuildResearchPrompt asks the model to turn raw search material into a
// sourced research report.
func BuildResearchPrompt(topic, directive string, results []SearchResult, pages []PageExcerpt) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Research the latest developments, trends, and insights about %s.\n\n", topic))
	sb.WriteString("Your research should include:\n")
	sb.WriteString("1. Recent news and developments (last 7 days preferred)\n")
	sb.WriteString("2. Expert opinions and quotes\n")
	sb.WriteString("3. Statistics and data points\n")
	sb.WriteString("4. Industry trends and analysis\n")
	sb.WriteString("5. Multiple credible sources\n\n")
	sb.WriteString(directive)

	if len(results) == 0 {
		sb.WriteString("\nNo search results were available.\n")
	} else {
		sb.WriteString("\nSearch results:\n")
		for i, r := range results {
			if r.Date != "" {
				sb.WriteString(fmt.Sprintf("%d. %s (%s)\n   %s\n", i+1, r.Title, r.Date, r.Link))
			} else {
				sb.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, r.Title, r.Link))
			}
			if r.Snippet != "" {
				sb.WriteString(fmt.Sprintf("   %s\n", r.Snippet))
			}
		}
	}

	if len(pages) > 0 {
		sb.WriteString("\nPage excerpts:\n")
		for _, p := range pages {
			sb.WriteString(fmt.Sprintf("\n--- %s ---\n%s\n", p.URL, p.Text))
		}
	}

	sb.WriteString("\nProvide a comprehensive summary with all sources.")

	return Prompt{
		System:  researcherSystem,
		User:    sb.String(),
		History: nil,
	}
}

// BuildWritingPrompt turns a research report into the final newsletter.
// The report rides along as prior conversation context so the task text
// stays focused on structure and style.
func BuildWritingPrompt(topic string, c Customization, directive, template, research string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Using the research provided, create a compelling newsletter about %s.\n\n", topic))
	sb.WriteString(directive)
	sb.WriteString("\nUse this structure:\n")
	sb.WriteString(template)
	sb.WriteString("\nGuidelines:\n")
	sb.WriteString("- Use markdown formatting\n")
	sb.WriteString("- Include specific quotes and data\n")
	sb.WriteString("- Keep it engaging and accessible\n")
	sb.WriteString("- Cite all sources properly with links\n")
	sb.WriteString("- Make section titles specific to the topic\n")
	sb.WriteString(fmt.Sprintf("- Match the %s tone throughout\n", strings.ToLower(c.Tone)))
	sb.WriteString(fmt.Sprintf("- Aim for approximately %s\n", c.WordTarget()))
	sb.WriteString(fmt.Sprintf("- Focus on %s content\n", strings.ToLower(c.Focus)))

	var history []Message
	if research != "" {
		history = append(history, Message{
			Role:    "user",
			Content: fmt.Sprintf("Research findings about %s:\n\n%s", topic, research),
		})
	}

	return Prompt{
		System:  writerSystem,
		User:    sb.String(),
		History: history,
	}
}
