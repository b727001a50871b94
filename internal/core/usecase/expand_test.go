package usecase

import (
	"strings"
	"testing"
)

func TestQueryVariantsPorkQuestion(t *testing.T) {
	variants := queryVariants("Можно ли есть свинину?")

	if len(variants) == 0 {
		t.Fatal("no variants")
	}
	if len(variants) > 5 {
		t.Fatalf("got %d variants, limit is 5", len(variants))
	}
	if !strings.Contains(variants[0], "мясо свиньи") {
		t.Fatalf("first variant should be normalized, got %q", variants[0])
	}
	if !strings.Contains(variants[0], "харам") {
		t.Fatalf("interrogative pork question should gain prohibition keywords, got %q", variants[0])
	}
}

func TestQueryVariantsGenericQueryKeepsOriginal(t *testing.T) {
	query := "расскажи про суру корова"
	variants := queryVariants(query)

	found := false
	for _, v := range variants {
		if v == query {
			found = true
		}
	}
	if !found {
		t.Fatalf("original query missing from %v", variants)
	}
}

func TestExpandQuerySynonyms(t *testing.T) {
	variants := expandQuery("обязателен ли намаз")
	if variants[0] != "обязателен ли намаз" {
		t.Fatalf("original should lead, got %q", variants[0])
	}
	joined := strings.Join(variants, "|")
	if !strings.Contains(joined, "молитва") {
		t.Fatalf("synonym variant missing: %v", variants)
	}
	if len(variants) > 5 {
		t.Fatalf("got %d variants, limit is 5", len(variants))
	}
}

func TestExpandQueryNoKnownTerms(t *testing.T) {
	variants := expandQuery("как зовут пророка")
	if len(variants) != 1 {
		t.Fatalf("expected only the original, got %v", variants)
	}
}

func TestNormalizeFoodQuery(t *testing.T) {
	t.Run("plain mention", func(t *testing.T) {
		got := normalizeFoodQuery("свинина")
		if got != "мясо свиньи" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("interrogative gains keywords", func(t *testing.T) {
		got := normalizeFoodQuery("Можно ли свинину?")
		for _, kw := range []string{"мясо свиньи", "запрет", "мертвечина", "кровь"} {
			if !strings.Contains(got, kw) {
				t.Fatalf("missing %q in %q", kw, got)
			}
		}
	})

	t.Run("unrelated untouched", func(t *testing.T) {
		got := normalizeFoodQuery("что такое закят")
		if got != "что такое закят" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRelevanceKeywords(t *testing.T) {
	keywords := relevanceKeywords("Запрещена ли свинина?")
	joined := strings.Join(keywords, "|")
	for _, want := range []string{"свинин", "мясо свиньи", "свинья"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %v", want, keywords)
		}
	}

	if got := relevanceKeywords("расскажи историю пророка Юсуфа"); len(got) != 0 {
		t.Fatalf("generic query should give no keywords, got %v", got)
	}
}
