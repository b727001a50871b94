package prompting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/domain"
)

// Builder assembles the system-message prefix of a conversation. Guardrail
// blocks are always inserted right after the leading system prompt, so calls
// later in the chain end up closer to the user turns.
type Builder struct {
	catalog *catalog.Catalog
}

func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// EnsureSystemPrompt guarantees the conversation starts with a sanitized
// system message, prepending the default one when absent.
func (b *Builder) EnsureSystemPrompt(messages []domain.ChatMessage) []domain.ChatMessage {
	if len(messages) == 0 {
		return []domain.ChatMessage{{Role: domain.RoleSystem, Content: DefaultSystemPrompt}}
	}
	if messages[0].Role != domain.RoleSystem {
		out := make([]domain.ChatMessage, 0, len(messages)+1)
		out = append(out, domain.ChatMessage{Role: domain.RoleSystem, Content: DefaultSystemPrompt})
		return append(out, messages...)
	}
	out := make([]domain.ChatMessage, len(messages))
	copy(out, messages)
	out[0].Content = SanitizeSystemPrompt(out[0].Content)
	return out
}

func insertAfterSystem(messages []domain.ChatMessage, msg domain.ChatMessage) []domain.ChatMessage {
	idx := 0
	if len(messages) > 0 && messages[0].Role == domain.RoleSystem {
		idx = 1
	}
	out := make([]domain.ChatMessage, 0, len(messages)+1)
	out = append(out, messages[:idx]...)
	out = append(out, msg)
	return append(out, messages[idx:]...)
}

// InjectHalalGuardrail inserts the mandatory safety block.
func (b *Builder) InjectHalalGuardrail(messages []domain.ChatMessage) []domain.ChatMessage {
	if len(messages) == 0 {
		return []domain.ChatMessage{{Role: domain.RoleSystem, Content: HalalSafetyPrompt}}
	}
	return insertAfterSystem(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: HalalSafetyPrompt})
}

// InjectSurahGuardrail pins the answer to the surahs the question referenced.
// With no surah numbers the conversation passes through unchanged.
func (b *Builder) InjectSurahGuardrail(messages []domain.ChatMessage, surahNumbers []int) []domain.ChatMessage {
	unique := make(map[int]struct{}, len(surahNumbers))
	for _, n := range surahNumbers {
		unique[n] = struct{}{}
	}
	if len(unique) == 0 {
		return messages
	}
	numbers := make([]int, 0, len(unique))
	for n := range unique {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	labels := make([]string, len(numbers))
	for i, n := range numbers {
		if label := b.catalog.Describe(n); label != "" {
			labels[i] = label
		} else {
			labels[i] = fmt.Sprintf("Сура %d", n)
		}
	}

	var guard string
	if len(numbers) == 1 {
		guard = fmt.Sprintf("Вопрос относится исключительно к %s. "+
			"Никогда не упоминай другие номера сур и не придумывай фактов вне предоставленных источников.", labels[0])
	} else {
		guard = fmt.Sprintf("Вопрос относится к следующим сурам: %s. "+
			"Используй только эти номера и избегай упоминания любых других сур.", strings.Join(labels, "; "))
	}
	return insertAfterSystem(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: guard})
}

// InjectRAGContext adds the retrieved excerpts as one system block with
// numbered source headings and the explicit list of citable verses.
func (b *Builder) InjectRAGContext(messages []domain.ChatMessage, contexts []domain.RetrievalResult) []domain.ChatMessage {
	if len(contexts) == 0 {
		return messages
	}

	var blocks []string
	var citable []string
	for i, ctx := range contexts {
		text := strings.TrimSpace(ctx.Text)
		if text == "" {
			continue
		}
		heading := b.FormatSourceHeading(ctx.Metadata)
		blocks = append(blocks, fmt.Sprintf("[ИСТОЧНИК %d] %s\n%s", i+1, heading, text))

		if ctx.Metadata.Surah > 0 && ctx.Metadata.AyahRange != "" {
			citable = append(citable, fmt.Sprintf("сура %d, аяты %s", ctx.Metadata.Surah, ctx.Metadata.AyahRange))
		}
	}
	if len(blocks) == 0 {
		return messages
	}

	var sb strings.Builder
	sb.WriteString(RAGInstructionPrompt)
	if len(citable) > 0 {
		sb.WriteString("\n\nДОСТУПНЫЕ ЦИТАТЫ (используй ТОЛЬКО эти):\n")
		for i, cite := range citable {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("• " + cite)
		}
	}
	sb.WriteString("\n\n=== ИСТОЧНИКИ ===\n\n")
	sb.WriteString(strings.Join(blocks, "\n\n"))

	return insertAfterSystem(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: sb.String()})
}

// FormatSourceHeading renders a one-line provenance label for an excerpt,
// like "Корова, Аяты 172–174 (Ибн Касир)".
func (b *Builder) FormatSourceHeading(m domain.Metadata) string {
	var parts []string

	name := m.SurahNameRU
	if name == "" {
		name = m.SurahNameEN
	}
	if name == "" && m.Surah > 0 {
		name = b.catalog.Name(m.Surah, "ru")
	}
	if name != "" {
		parts = append(parts, name)
	} else if m.Surah > 0 {
		parts = append(parts, fmt.Sprintf("Сура %d", m.Surah))
	}

	switch {
	case m.AyahRange != "":
		parts = append(parts, "Аяты "+m.AyahRange)
	case m.AyahFrom > 0 && m.AyahTo > 0 && m.AyahFrom != m.AyahTo:
		parts = append(parts, fmt.Sprintf("Аяты %d–%d", m.AyahFrom, m.AyahTo))
	case m.AyahFrom > 0:
		parts = append(parts, fmt.Sprintf("Аят %d", m.AyahFrom))
	}

	heading := strings.Join(parts, ", ")
	if heading == "" {
		if title := m.Extra["title"]; title != "" {
			heading = title
		} else {
			heading = "Источник"
		}
	}
	if len(m.TafsirSources) > 0 {
		heading += " (" + strings.Join(m.TafsirSources, ", ") + ")"
	}
	return heading
}
