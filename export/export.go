// Package export derives the analytics and download renditions of a
// generated newsletter.
package export

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Analytics summarizes a newsletter the way the UI reports it. Counts
// follow the display conventions: words are whitespace-separated fields,
// characters are runes, and a section is any "##" occurrence.
type Analytics struct {
	WordCount      int  `json:"word_count"`
	CharCount      int  `json:"char_count"`
	ReadingTimeMin int  `json:"reading_time_min"`
	SectionCount   int  `json:"section_count"`
	HasHeaders     bool `json:"has_headers"`
	HasLinks       bool `json:"has_links"`
	GoodLength     bool `json:"good_length"`
}

const wordsPerMinute = 200

// Analyze computes the display metrics for one newsletter.
func Analyze(content string) Analytics {
	words := len(strings.Fields(content))
	return Analytics{
		WordCount:      words,
		CharCount:      utf8.RuneCountInString(content),
		ReadingTimeMin: words / wordsPerMinute,
		SectionCount:   strings.Count(content, "##"),
		HasHeaders:     strings.Count(content, "#") > 3,
		HasLinks:       strings.Contains(content, "[") && strings.Contains(content, "]("),
		GoodLength:     words > 500 && words < 2000,
	}
}

const htmlShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; }
        h1 { color: #333; }
        h2 { color: #666; border-bottom: 2px solid #eee; padding-bottom: 10px; }
        a { color: #0066cc; }
    </style>
</head>
<body>
%s
</body>
</html>
`

// HTMLDocument wraps the newsletter in a minimal email-friendly page.
// The markdown-to-HTML conversion is a fixed character substitution, not
// a parser: the first pass consumes every '#', so the '##' pass never
// matches. The substitution order is part of the download format; do not
// reorder it.
func HTMLDocument(content string) string {
	body := strings.ReplaceAll(content, "#", "<h1>")
	body = strings.ReplaceAll(body, "##", "</h1><h2>")
	body = strings.ReplaceAll(body, "\n", "<br>")
	return fmt.Sprintf(htmlShell, body)
}

// PlainText strips heading and emphasis markers for the txt download.
func PlainText(content string) string {
	out := strings.ReplaceAll(content, "#", "")
	return strings.ReplaceAll(out, "*", "")
}

// Filename builds the download name for a topic, e.g.
// "newsletter_AI_trends.md". Only spaces are substituted.
func Filename(topic, ext string) string {
	return "newsletter_" + strings.ReplaceAll(topic, " ", "_") + "." + ext
}
