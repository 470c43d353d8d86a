package generator

import (
	"strings"
	"testing"
)

func TestSectionTemplateKnownNames(t *testing.T) {
	tests := []struct {
		template string
		heading  string
	}{
		{TemplateStandard, "# [Compelling Subject Line]"},
		{TemplateTechNews, "# 🚀 [Tech Headline]"},
		{TemplateBusiness, "# 📊 [Business Headline]"},
		{TemplateResearch, "# 🔬 [Research Topic]"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got := SectionTemplate(Customization{Template: tt.template})
			if !strings.HasPrefix(got, tt.heading) {
				t.Errorf("SectionTemplate(%q) starts with %q, want %q", tt.template, firstLine(got), tt.heading)
			}
		})
	}
}

func TestSectionTemplateUnknownFallsBack(t *testing.T) {
	for _, name := range []string{"", "Tabloid", "standard"} {
		if got := SectionTemplate(Customization{Template: name}); got != standardTemplate {
			t.Errorf("SectionTemplate(%q) did not fall back to the standard skeleton", name)
		}
	}
}

func TestSectionTemplateCustom(t *testing.T) {
	outline := "## Opening Bell\n\n## Deep Cuts\n\n## Sign-off"
	got := SectionTemplate(Customization{Template: TemplateCustom, CustomSections: outline})
	if got != outline {
		t.Errorf("SectionTemplate custom = %q, want outline verbatim", got)
	}

	for _, blank := range []string{"", "   ", "\n\t "} {
		got := SectionTemplate(Customization{Template: TemplateCustom, CustomSections: blank})
		if got != standardTemplate {
			t.Errorf("SectionTemplate custom with blank outline %q did not fall back to the standard skeleton", blank)
		}
	}
}
