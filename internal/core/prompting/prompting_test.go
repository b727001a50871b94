package prompting

import (
	"strings"
	"testing"

	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/domain"
)

func newBuilder() *Builder {
	return NewBuilder(catalog.New())
}

func TestSanitizeSystemPrompt(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", DefaultSystemPrompt},
		{"too short", "короткий", DefaultSystemPrompt},
		{"question flood", "????????", DefaultSystemPrompt},
		{"double question mark", "Что это такое?? Объясни подробно и развёрнуто.", DefaultSystemPrompt},
		{"too long", strings.Repeat("а", 2001), DefaultSystemPrompt},
		{"normal", "Отвечай как знаток исламского права.", "Отвечай как знаток исламского права."},
		{"quoted", `"Отвечай как знаток исламского права."`, "Отвечай как знаток исламского права."},
		{"trailing semicolon", "Отвечай как знаток исламского права;", "Отвечай как знаток исламского права"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeSystemPrompt(tc.input); got != tc.want {
				t.Fatalf("SanitizeSystemPrompt(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeSystemPromptKeepsSixtyChars(t *testing.T) {
	prompt := strings.Repeat("а", 60)
	if got := SanitizeSystemPrompt(prompt); got != prompt {
		t.Fatalf("60-char prompt should pass through, got %q", got)
	}
}

func TestEnsureSystemPrompt(t *testing.T) {
	b := newBuilder()

	t.Run("empty history", func(t *testing.T) {
		got := b.EnsureSystemPrompt(nil)
		if len(got) != 1 || got[0].Role != domain.RoleSystem || got[0].Content != DefaultSystemPrompt {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("prepends when missing", func(t *testing.T) {
		in := []domain.ChatMessage{{Role: domain.RoleUser, Content: "можно ли есть мёд"}}
		got := b.EnsureSystemPrompt(in)
		if len(got) != 2 || got[0].Content != DefaultSystemPrompt || got[1].Content != "можно ли есть мёд" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("sanitizes existing", func(t *testing.T) {
		in := []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: "????????"},
			{Role: domain.RoleUser, Content: "вопрос"},
		}
		got := b.EnsureSystemPrompt(in)
		if got[0].Content != DefaultSystemPrompt {
			t.Fatalf("system prompt not replaced: %q", got[0].Content)
		}
		if in[0].Content != "????????" {
			t.Fatal("input slice mutated")
		}
	})
}

func TestInjectHalalGuardrailPosition(t *testing.T) {
	b := newBuilder()

	t.Run("after system", func(t *testing.T) {
		in := []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: DefaultSystemPrompt},
			{Role: domain.RoleUser, Content: "вопрос"},
		}
		got := b.InjectHalalGuardrail(in)
		if len(got) != 3 || got[1].Content != HalalSafetyPrompt {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("at head without system", func(t *testing.T) {
		in := []domain.ChatMessage{{Role: domain.RoleUser, Content: "вопрос"}}
		got := b.InjectHalalGuardrail(in)
		if len(got) != 2 || got[0].Content != HalalSafetyPrompt {
			t.Fatalf("got %+v", got)
		}
	})
}

func TestInjectSurahGuardrail(t *testing.T) {
	b := newBuilder()
	base := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: DefaultSystemPrompt},
		{Role: domain.RoleUser, Content: "вопрос"},
	}

	t.Run("no numbers passthrough", func(t *testing.T) {
		got := b.InjectSurahGuardrail(base, nil)
		if len(got) != len(base) {
			t.Fatalf("got %d messages", len(got))
		}
	})

	t.Run("single surah", func(t *testing.T) {
		got := b.InjectSurahGuardrail(base, []int{2})
		if len(got) != 3 {
			t.Fatalf("got %d messages", len(got))
		}
		guard := got[1].Content
		if !strings.Contains(guard, "относится исключительно к Корова (сура 2)") {
			t.Fatalf("guard = %q", guard)
		}
	})

	t.Run("several surahs deduplicated", func(t *testing.T) {
		got := b.InjectSurahGuardrail(base, []int{3, 2, 2})
		guard := got[1].Content
		if !strings.Contains(guard, "следующим сурам") {
			t.Fatalf("guard = %q", guard)
		}
		if !strings.Contains(guard, "Корова (сура 2); Семейство Имрана (сура 3)") {
			t.Fatalf("guard = %q", guard)
		}
	})
}

func TestInjectRAGContext(t *testing.T) {
	b := newBuilder()
	base := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: DefaultSystemPrompt},
		{Role: domain.RoleUser, Content: "почему свинина харам"},
	}
	contexts := []domain.RetrievalResult{
		{
			ID:   "surah_2_ayah_172_174",
			Text: "Он запретил вам мертвечину, кровь и мясо свиньи.",
			Metadata: domain.Metadata{
				Surah: 2, SurahNameRU: "Корова",
				AyahFrom: 172, AyahTo: 174, AyahRange: "172-174",
			},
		},
		{ID: "empty", Text: "   "},
	}

	got := b.InjectRAGContext(base, contexts)
	if len(got) != 3 {
		t.Fatalf("got %d messages", len(got))
	}
	block := got[1].Content
	for _, want := range []string{
		RAGInstructionPrompt,
		"ДОСТУПНЫЕ ЦИТАТЫ",
		"• сура 2, аяты 172-174",
		"=== ИСТОЧНИКИ ===",
		"[ИСТОЧНИК 1] Корова, Аяты 172-174",
	} {
		if !strings.Contains(block, want) {
			t.Fatalf("context block missing %q:\n%s", want, block)
		}
	}
	if strings.Contains(block, "[ИСТОЧНИК 2]") {
		t.Fatal("blank excerpt should be skipped")
	}

	if same := b.InjectRAGContext(base, nil); len(same) != len(base) {
		t.Fatal("no contexts should pass through")
	}
}

func TestFormatSourceHeading(t *testing.T) {
	b := newBuilder()

	cases := []struct {
		name string
		meta domain.Metadata
		want string
	}{
		{"range", domain.Metadata{Surah: 2, SurahNameRU: "Корова", AyahRange: "172-174"}, "Корова, Аяты 172-174"},
		{"from to", domain.Metadata{Surah: 2, AyahFrom: 172, AyahTo: 174}, "Корова, Аяты 172–174"},
		{"single ayah", domain.Metadata{Surah: 2, AyahFrom: 173, AyahTo: 173}, "Корова, Аят 173"},
		{"catalog fallback name", domain.Metadata{Surah: 36, AyahFrom: 1}, "Йа-Син, Аят 1"},
		{"tafsir suffix", domain.Metadata{Surah: 2, AyahFrom: 173, AyahTo: 173, TafsirSources: []string{"Ибн Касир"}}, "Корова, Аят 173 (Ибн Касир)"},
		{"no metadata", domain.Metadata{}, "Источник"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.FormatSourceHeading(tc.meta); got != tc.want {
				t.Fatalf("heading = %q, want %q", got, tc.want)
			}
		})
	}
}
