package summarize

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"docbrief/internal/domain/entity"
)

//go:embed prompts.yaml
var promptsYAML []byte

// promptTemplate is one style-specific instruction block.
type promptTemplate struct {
	Intro        string   `yaml:"intro"`
	Requirements []string `yaml:"requirements"`
	Closing      string   `yaml:"closing"`
}

type promptConfig struct {
	Templates map[string]promptTemplate `yaml:"templates"`
}

// genericTemplateKey is the fallback for unknown or unspecified styles.
const genericTemplateKey = "generic"

var promptTemplates = mustLoadPromptTemplates()

func mustLoadPromptTemplates() map[string]promptTemplate {
	var cfg promptConfig
	if err := yaml.Unmarshal(promptsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("summarize: invalid embedded prompts.yaml: %v", err))
	}
	if _, ok := cfg.Templates[genericTemplateKey]; !ok {
		panic("summarize: prompts.yaml must define a generic template")
	}
	return cfg.Templates
}

// BuildPrompt renders the style-specific instruction block around the
// normalized document text. Unknown styles fall back to the generic
// comprehensive-summary template. This function never fails.
func BuildPrompt(text string, style entity.Style) string {
	tpl, ok := promptTemplates[string(style)]
	if !ok {
		tpl = promptTemplates[genericTemplateKey]
	}

	var b strings.Builder
	b.WriteString(tpl.Intro)
	b.WriteString("\n\nRequirements:\n")
	for _, req := range tpl.Requirements {
		b.WriteString("- ")
		b.WriteString(req)
		b.WriteString("\n")
	}
	b.WriteString("\nDocument to summarize:\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(tpl.Closing)
	return b.String()
}
