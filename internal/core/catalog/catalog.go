// Package catalog resolves surah references in free-form text. Queries in
// Russian, English transliteration or Arabic are matched against a built-in
// table of the 114 surahs by number patterns and name aliases.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Surah is one catalog entry.
type Surah struct {
	Number       int
	Latin        string
	Arabic       string
	Translations []string
}

var (
	forwardNumberRe = regexp.MustCompile(`(?:surah|sura|surat|сура|суры|суру|суре|сурой|сурах|сурам|сурами)\s*(\d{1,3})`)
	reverseNumberRe = regexp.MustCompile(`(\d{1,3})\s*(?:surah|sura|surat|сура|суры|суру|суре|сурой|сурах|сурам|сурами)`)

	nonNameRe      = regexp.MustCompile(`[^a-zа-яёء-ي\s]`)
	nonNameDigitRe = regexp.MustCompile(`[^a-zа-яёء-ي0-9\s]`)
	spacesRe       = regexp.MustCompile(`\s+`)
)

var surahKeywords = []string{
	"surah", "sura", "surat",
	"сура", "суры", "суру", "суре", "сурой", "сурах", "сурам", "сурами",
}

var nameArticles = []string{
	"al ", "an ", "ar ", "as ", "ash ", "at ", "az ", "ad ", "the ",
	"аль ", "ан ", "ар ", "ас ", "аш ", "ат ", "аз ", "ад ",
}

var punctReplacer = strings.NewReplacer(
	"’", "", "'", "", "`", "", "“", "", "”", "",
	"–", " ", "—", " ", "-", " ", "_", " ",
	".", " ", ",", " ", "(", " ", ")", " ", "/", " ", `\`, " ",
)

// Catalog holds the alias indexes built from the surah table. Safe for
// concurrent use after New.
type Catalog struct {
	byNumber map[int]Surah

	// Short aliases (under 4 letters, e.g. "сад") are ambiguous with
	// ordinary words, so they only match next to an explicit surah keyword.
	longAliases  map[string]int
	shortAliases map[string]int
}

// New builds the alias indexes over the built-in surah table.
func New() *Catalog {
	c := &Catalog{
		byNumber:     make(map[int]Surah, len(surahTable)),
		longAliases:  make(map[string]int),
		shortAliases: make(map[string]int),
	}
	for _, s := range surahTable {
		c.byNumber[s.Number] = s
		for alias := range buildAliases(s) {
			compact := strings.ReplaceAll(alias, " ", "")
			idx := c.longAliases
			if len([]rune(compact)) < 4 {
				idx = c.shortAliases
			}
			if _, ok := idx[alias]; !ok {
				idx[alias] = s.Number
			}
		}
	}
	return c
}

func buildAliases(s Surah) map[string]struct{} {
	names := append([]string{s.Latin, s.Arabic}, s.Translations...)
	aliases := make(map[string]struct{})
	for _, name := range names {
		normalized := normalizeValue(name, false)
		if normalized == "" {
			continue
		}
		aliases[normalized] = struct{}{}
		if stripped := stripArticle(normalized); stripped != "" && stripped != normalized {
			aliases[stripped] = struct{}{}
		}
	}
	return aliases
}

// normalizeValue lowercases under NFKC and strips punctuation so that
// spelling variants of the same name collapse to one key.
func normalizeValue(value string, keepDigits bool) string {
	if value == "" {
		return ""
	}
	s := strings.ToLower(norm.NFKC.String(value))
	s = punctReplacer.Replace(s)
	if keepDigits {
		s = nonNameDigitRe.ReplaceAllString(s, " ")
	} else {
		s = nonNameRe.ReplaceAllString(s, " ")
	}
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

func stripArticle(value string) string {
	for _, article := range nameArticles {
		if strings.HasPrefix(value, article) {
			return strings.TrimSpace(value[len(article):])
		}
	}
	return value
}

// MatchNumbers extracts the surah numbers referenced in text, sorted
// ascending and deduplicated. Out-of-range numbers are ignored.
func (c *Catalog) MatchNumbers(text string) []int {
	if text == "" {
		return nil
	}
	normalized := normalizeValue(text, true)
	if normalized == "" {
		return nil
	}
	padded := " " + normalized + " "
	found := make(map[int]struct{})

	for _, re := range []*regexp.Regexp{forwardNumberRe, reverseNumberRe} {
		for _, m := range re.FindAllStringSubmatch(padded, -1) {
			n, err := strconv.Atoi(m[1])
			if err == nil && n >= 1 && n <= 114 {
				found[n] = struct{}{}
			}
		}
	}

	for alias, number := range c.longAliases {
		if strings.Contains(padded, " "+alias+" ") {
			found[number] = struct{}{}
		}
	}
	for alias, number := range c.shortAliases {
		for _, kw := range surahKeywords {
			if strings.Contains(padded, " "+kw+" "+alias+" ") ||
				strings.Contains(padded, " "+alias+" "+kw+" ") {
				found[number] = struct{}{}
				break
			}
		}
	}

	numbers := make([]int, 0, len(found))
	for n := range found {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Lookup returns the catalog entry for a surah number.
func (c *Catalog) Lookup(number int) (Surah, bool) {
	s, ok := c.byNumber[number]
	return s, ok
}

// Name returns the display name for a surah in the preferred locale,
// falling back to the Latin transliteration.
func (c *Catalog) Name(number int, locale string) string {
	s, ok := c.byNumber[number]
	if !ok {
		return ""
	}
	switch locale {
	case "ru":
		for _, t := range s.Translations {
			if containsCyrillic(t) {
				return t
			}
		}
	case "en":
		for _, t := range s.Translations {
			if isASCII(t) {
				return t
			}
		}
	}
	return s.Latin
}

// Describe renders a human-readable reference like "Корова (сура 2)".
func (c *Catalog) Describe(number int) string {
	s, ok := c.byNumber[number]
	if !ok {
		return ""
	}
	display := c.Name(number, "ru")
	if display == "" {
		display = s.Latin
	}
	return display + " (сура " + strconv.Itoa(s.Number) + ")"
}

func containsCyrillic(s string) bool {
	for _, r := range strings.ToLower(s) {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
