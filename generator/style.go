package generator

import (
	"fmt"
	"strings"
)

// StyleDirective renders the writing-style block shared by both pipeline
// prompts. Each enabled flag contributes exactly one instruction line;
// the flags do not interact.
func StyleDirective(c Customization) string {
	var sb strings.Builder
	sb.WriteString("Writing Style:\n")
	sb.WriteString(fmt.Sprintf("- Tone: %s\n", c.Tone))
	sb.WriteString(fmt.Sprintf("- Length: %s (%s)\n", c.Length, c.WordTarget()))
	sb.WriteString(fmt.Sprintf("- Focus: %s\n", c.Focus))
	if c.IncludeImages {
		sb.WriteString("- Include image placeholders with [Image: description]\n")
	}
	if c.IncludeCTA {
		sb.WriteString("- Include a clear call-to-action at the end\n")
	}
	if c.IncludeStats {
		sb.WriteString("- Emphasize statistics and data points\n")
	}
	if c.IncludeQuotes {
		sb.WriteString("- Include expert quotes when available\n")
	}
	return sb.String()
}
