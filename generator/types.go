package generator

// Status classifies a finished generation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Tone presets offered by the UI.
const (
	ToneProfessional  = "Professional"
	ToneCasual        = "Casual"
	ToneTechnical     = "Technical"
	ToneInspirational = "Inspirational"
	ToneHumorous      = "Humorous"
)

// Length presets. The word target each one implies comes from WordTarget.
const (
	LengthShort  = "Short"
	LengthMedium = "Medium"
	LengthLong   = "Long"
)

// Focus presets steering the balance between reporting and analysis.
const (
	FocusBalanced      = "Balanced"
	FocusNewsHeavy     = "News-heavy"
	FocusAnalysisHeavy = "Analysis-heavy"
	FocusTutorialStyle = "Tutorial-style"
)

// Section template names. TemplateCustom takes its outline from
// Customization.CustomSections.
const (
	TemplateStandard = "Standard"
	TemplateTechNews = "Tech News"
	TemplateBusiness = "Business Weekly"
	TemplateResearch = "Research Digest"
	TemplateCustom   = "Custom"
)

// Option lists in the order the UI presents them.
var (
	ToneOptions     = []string{ToneProfessional, ToneCasual, ToneTechnical, ToneInspirational, ToneHumorous}
	LengthOptions   = []string{LengthShort, LengthMedium, LengthLong}
	FocusOptions    = []string{FocusBalanced, FocusNewsHeavy, FocusAnalysisHeavy, FocusTutorialStyle}
	TemplateOptions = []string{TemplateStandard, TemplateTechNews, TemplateBusiness, TemplateResearch, TemplateCustom}
)

// Customization carries the stylistic knobs for one generation. The zero
// value is usable; withDefaults fills the unset string fields, while the
// boolean flags are taken as given.
type Customization struct {
	Tone           string `json:"tone"`
	Length         string `json:"length"`
	Focus          string `json:"focus"`
	IncludeImages  bool   `json:"include_images"`
	IncludeCTA     bool   `json:"include_cta"`
	IncludeStats   bool   `json:"include_stats"`
	IncludeQuotes  bool   `json:"include_quotes"`
	Template       string `json:"template"`
	CustomSections string `json:"custom_sections,omitempty"`
}

// DefaultCustomization is what callers without a form get, e.g. the
// one-shot CLI mode.
func DefaultCustomization() Customization {
	return Customization{
		Tone:          ToneProfessional,
		Length:        LengthMedium,
		Focus:         FocusBalanced,
		IncludeStats:  true,
		IncludeQuotes: true,
		Template:      TemplateStandard,
	}
}

func (c Customization) withDefaults() Customization {
	if c.Tone == "" {
		c.Tone = ToneProfessional
	}
	if c.Length == "" {
		c.Length = LengthMedium
	}
	if c.Focus == "" {
		c.Focus = FocusBalanced
	}
	if c.Template == "" {
		c.Template = TemplateStandard
	}
	return c
}

// WordTarget returns the word-count phrase the writing prompt aims for.
func (c Customization) WordTarget() string {
	switch c.Length {
	case LengthShort:
		return "500 words"
	case LengthLong:
		return "1500+ words"
	default:
		return "1000 words"
	}
}

// Result is the outcome of one pipeline run. On error the Content field
// holds the user-facing message instead of a newsletter.
type Result struct {
	Status        Status        `json:"status"`
	Content       string        `json:"content"`
	Customization Customization `json:"customization"`
}
