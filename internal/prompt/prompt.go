package prompt

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
)

const defaultChatTemplate = `Use the following pieces of information to answer the user's question.
If you don't know the answer, just say that you don't know, don't try to make up an answer.

Context: {{.Context}}
Question: {{.Question}}

Only return the helpful answer below and nothing else.
Helpful answer:
`

// ChatInput fills the chat template.
type ChatInput struct {
	Context  string
	Question string
}

// ChatTemplate renders the single-string prompt sent for /get.
type ChatTemplate struct {
	tmpl *template.Template
}

// DefaultChatTemplate returns the built-in question/answer template.
func DefaultChatTemplate() *ChatTemplate {
	return &ChatTemplate{tmpl: template.Must(template.New("chat").Parse(defaultChatTemplate))}
}

// LoadChatTemplate parses a template file using {{.Context}} and {{.Question}}.
// An empty path returns the default template.
func LoadChatTemplate(path string) (*ChatTemplate, error) {
	if path == "" {
		return DefaultChatTemplate(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompt: read %s: %w", path, err)
	}
	t, err := template.New("chat").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("prompt: parse %s: %w", path, err)
	}
	return &ChatTemplate{tmpl: t}, nil
}

func (c *ChatTemplate) Render(in ChatInput) (string, error) {
	var b strings.Builder
	if err := c.tmpl.Execute(&b, in); err != nil {
		return "", fmt.Errorf("prompt: render: %w", err)
	}
	return b.String(), nil
}

// ChallengeMessages asks for a numbered list of obstacles for goal.
func ChallengeMessages(goal string) []adapter.Message {
	return []adapter.Message{
		{
			Role:    "system",
			Content: "You are a helpful assistant that identifies potential blockers and challenges based on a user's goal.",
		},
		{
			Role: "user",
			Content: "Goal: " + goal + "\n\n" +
				"Generate a numbered list of 8–10 realistic challenges or obstacles someone might face. Be specific. Don’t explain.\n\n" +
				"Output only the list:\n1. ...\n2. ...\n",
		},
	}
}

// PlanMessages asks for an action plan covering challenges. Blank entries are dropped.
func PlanMessages(challenges []string) []adapter.Message {
	var lines []string
	for _, c := range challenges {
		if strings.TrimSpace(c) != "" {
			lines = append(lines, "- "+c)
		}
	}
	return []adapter.Message{
		{Role: "system", Content: "You are an expert in strategic planning."},
		{
			Role: "user",
			Content: "Given these challenges:\n" + strings.Join(lines, "\n") +
				"\n\nCreate a step-by-step action plan (short, mid, long-term) under 300 tokens.",
		},
	}
}

var listMarker = regexp.MustCompile(`^[0-9.\-)\s]+`)

// ParseList splits model output into items, dropping blank lines and
// leading list markers such as "1." or "-".
func ParseList(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, listMarker.ReplaceAllString(line, ""))
	}
	return items
}
