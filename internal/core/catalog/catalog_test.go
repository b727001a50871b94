package catalog

import (
	"reflect"
	"testing"
)

func TestMatchNumbersByDigits(t *testing.T) {
	c := New()

	cases := []struct {
		name string
		text string
		want []int
	}{
		{"forward", "что говорит сура 2 об этом", []int{2}},
		{"reverse", "смысл 36 суры", []int{36}},
		{"english", "tell me about surah 12", []int{12}},
		{"out of range", "сура 115 не существует", nil},
		{"several", "сравни суру 2 и суру 3", []int{2, 3}},
		{"dative", "к 4 сурам есть вопросы", []int{4}},
		{"no reference", "можно ли есть мёд", nil},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.MatchNumbers(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MatchNumbers(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestMatchNumbersByName(t *testing.T) {
	c := New()

	cases := []struct {
		name string
		text string
		want []int
	}{
		{"russian title", "расскажи про суру Корова", []int{2}},
		{"transliteration", "о чём аль-бакара?", []int{2}},
		{"article stripped", "про бакара", []int{2}},
		{"latin", "explain Al-Fatihah please", []int{1}},
		{"short alias needs keyword", "он посадил сад у дома", nil},
		{"short alias with keyword", "прочитай суру Сад", []int{38}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.MatchNumbers(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MatchNumbers(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestLookupAndNames(t *testing.T) {
	c := New()

	if _, ok := c.Lookup(0); ok {
		t.Fatal("Lookup(0) should fail")
	}
	s, ok := c.Lookup(2)
	if !ok {
		t.Fatal("Lookup(2) failed")
	}
	if s.Latin != "Al-Baqarah" {
		t.Fatalf("latin name = %q", s.Latin)
	}
	if got := c.Name(2, "ru"); got != "Корова" {
		t.Fatalf("Name(2, ru) = %q", got)
	}
	if got := c.Name(2, "en"); got != "The Cow" {
		t.Fatalf("Name(2, en) = %q", got)
	}
	if got := c.Describe(2); got != "Корова (сура 2)" {
		t.Fatalf("Describe(2) = %q", got)
	}
	if got := c.Describe(200); got != "" {
		t.Fatalf("Describe(200) = %q, want empty", got)
	}
}

func TestCatalogCoversAllSurahs(t *testing.T) {
	c := New()
	for n := 1; n <= 114; n++ {
		if _, ok := c.Lookup(n); !ok {
			t.Fatalf("missing surah %d", n)
		}
	}
}
