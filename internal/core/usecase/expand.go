package usecase

import (
	"regexp"
	"strings"
)

// querySynonyms maps Islamic term roots to retrieval synonyms. Keys are word
// roots so "свинину" and "свинины" both hit "свинин".
var querySynonyms = map[string][]string{
	"свинин": {"мясо свиньи", "свиное мясо", "свинья"},
	"намаз":  {"молитва", "салят", "салат"},
	"пост":   {"ураза", "рамадан", "саум"},
	"закят":  {"милостын", "подаян"},
	"хадж":   {"паломничеств", "мекк"},
	"харам":  {"запрещен", "запретн", "грех"},
	"халяль": {"дозволен", "разреш", "позвол"},
}

// synonymOrder fixes iteration order so variant lists are deterministic.
var synonymOrder = []string{"свинин", "намаз", "пост", "закят", "хадж", "харам", "халяль"}

const maxQueryVariants = 5

var (
	interrogativeMarks  = []string{"что", "говор", "можно", "ли", "разрешен", "дозволен"}
	prohibitionKeywords = []string{"запрет", "запретил", "харам", "мертвечина", "кровь", "принесено жертву"}
)

// termPattern matches a root at a word start plus any Cyrillic suffix, so
// inflected forms of the term are found and replaced whole. \b is ASCII-only
// in RE2, hence the explicit boundary group.
func termPattern(root string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^а-яёa-z0-9])(` + regexp.QuoteMeta(root) + `[а-яё]*)`)
}

var porkRootRe = termPattern("свинин")

// queryVariants builds up to five search strings for one user query, most
// promising first: the food-normalized form, synonym substitutions, then
// the untouched original as a safety net.
func queryVariants(query string) []string {
	variants := []string{normalizeFoodQuery(query)}

	for _, v := range expandQuery(query) {
		if !containsString(variants, v) {
			variants = append(variants, v)
		}
	}
	if !containsString(variants, query) {
		variants = append(variants, query)
	}
	if len(variants) > maxQueryVariants {
		variants = variants[:maxQueryVariants]
	}
	return variants
}

// expandQuery substitutes known term roots with their synonyms. The original
// query always leads the list.
func expandQuery(query string) []string {
	lower := strings.ToLower(query)
	variants := []string{query}

	for _, root := range synonymOrder {
		re := termPattern(root)
		if !re.MatchString(lower) {
			continue
		}
		for _, synonym := range querySynonyms[root] {
			variant := re.ReplaceAllString(lower, "${1}"+synonym)
			if variant != lower && !containsString(variants, variant) {
				variants = append(variants, variant)
			}
		}
	}
	if len(variants) > maxQueryVariants {
		variants = variants[:maxQueryVariants]
	}
	return variants
}

// normalizeFoodQuery rewrites pork questions toward Quranic vocabulary:
// "свинина" becomes "мясо свиньи", and interrogative phrasings get the
// prohibition keywords the relevant ayahs actually contain.
func normalizeFoodQuery(query string) string {
	lower := strings.ToLower(query)

	if strings.Contains(lower, "свинин") {
		lower = porkRootRe.ReplaceAllString(lower, "${1}мясо свиньи")
	}
	if strings.Contains(lower, "свин") {
		for _, mark := range interrogativeMarks {
			if strings.Contains(lower, mark) {
				lower += " " + strings.Join(prohibitionKeywords, " ")
				break
			}
		}
	}
	return lower
}

// relevanceKeywords lists the lowercase terms an excerpt should contain to
// be considered on-topic for the query: each matched root plus its synonyms.
// Generic queries yield nothing and skip keyword reranking entirely.
func relevanceKeywords(query string) []string {
	lower := strings.ToLower(query)
	var keywords []string
	for _, root := range synonymOrder {
		if !termPattern(root).MatchString(lower) {
			continue
		}
		keywords = append(keywords, root)
		for _, synonym := range querySynonyms[root] {
			if !containsString(keywords, synonym) {
				keywords = append(keywords, synonym)
			}
		}
	}
	return keywords
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
