package prompting

import "strings"

const (
	minSystemPromptLength = 10
	maxSystemPromptLength = 2000
	questionRatioLimit    = 0.25
)

// SanitizeSystemPrompt cleans a client-supplied system prompt. Prompts that
// look like injection attempts (question floods, too short, too long) are
// replaced with the default wholesale rather than patched.
func SanitizeSystemPrompt(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		return DefaultSystemPrompt
	}

	if strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) && len(text) > 1 {
		text = text[1 : len(text)-1]
	}
	text = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), ";"))
	text = strings.TrimSpace(strings.ReplaceAll(text, `\"`, `"`))

	length := len([]rune(text))
	if length == 0 {
		return DefaultSystemPrompt
	}
	questions := strings.Count(text, "?")
	if float64(questions)/float64(length) > questionRatioLimit || strings.Contains(text, "??") {
		return DefaultSystemPrompt
	}
	if length < minSystemPromptLength || length > maxSystemPromptLength {
		return DefaultSystemPrompt
	}
	return text
}
