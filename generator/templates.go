package generator

import "strings"

// Built-in section skeletons. Bracketed lines are placeholders the writer
// replaces with topic-specific content.

const standardTemplate = `# [Compelling Subject Line]

## Welcome
[Engaging introduction]

## [Main Story]
[Key insights and analysis]

## Featured Content
[Deeper exploration]

## Quick Updates
[Bullet points with actionable insights]

## This Week's Highlights
[Notable developments]

## Sources & Further Reading
[Properly cited sources]
`

const techNewsTemplate = `# 🚀 [Tech Headline]

## 💡 The Big Picture
[Context and why it matters]

## 🔬 Deep Dive
[Technical analysis]

## 💼 Industry Impact
[Business implications]

## 🛠️ What You Can Do
[Actionable takeaways]

## 📰 More Headlines
[Quick hits]

## 🔗 Resources
[Links and sources]
`

const businessTemplate = `# 📊 [Business Headline]

## Executive Summary
[Quick overview]

## Market Analysis
[Trends and movements]

## Company Spotlight
[Featured business/leader]

## Investment Insights
[Financial implications]

## Week Ahead
[What to watch]

## Sources
[References]
`

const researchTemplate = `# 🔬 [Research Topic]

## Abstract
[Summary of key findings]

## Key Research
[Main studies and papers]

## Methodology Spotlight
[Interesting approaches]

## Implications
[What this means]

## Future Directions
[What's next]

## References
[Academic sources]
`

var sectionTemplates = map[string]string{
	TemplateStandard: standardTemplate,
	TemplateTechNews: techNewsTemplate,
	TemplateBusiness: businessTemplate,
	TemplateResearch: researchTemplate,
}

// SectionTemplate resolves the markdown skeleton for one generation.
// Unknown template names fall back to Standard. Custom passes the user's
// outline through verbatim, or falls back to Standard when the outline
// is blank.
func SectionTemplate(c Customization) string {
	if c.Template == TemplateCustom {
		if strings.TrimSpace(c.CustomSections) != "" {
			return c.CustomSections
		}
		return standardTemplate
	}
	if t, ok := sectionTemplates[c.Template]; ok {
		return t
	}
	return standardTemplate
}
