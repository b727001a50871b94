// Package quality validates citations in generated answers against the
// retrieval sources they claim to come from, and scores the hallucination
// risk of the whole response.
package quality

import (
	"regexp"
	"strconv"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

// Citation is one surah/ayah reference extracted from an answer.
type Citation struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// Risk classifies how likely an answer is to contain fabricated references.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Answers cite verses in several shapes; the parenthesized form is tried
// first but every pattern runs over the whole text and duplicates collapse.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(сура\s+(\d+),\s*аят\s+(\d+)\)`),
	regexp.MustCompile(`(?i)сура\s+(\d+),\s*аят\s+(\d+)`),
	regexp.MustCompile(`(?i)аят\s+(\d+):(\d+)`),
	regexp.MustCompile(`(\d+):(\d+)`),
}

// ExtractCitations returns the deduplicated surah/ayah references found in
// text. Order is unspecified.
func ExtractCitations(text string) []Citation {
	seen := make(map[Citation]struct{})
	for _, re := range citationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			surah, err1 := strconv.Atoi(m[1])
			ayah, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				continue
			}
			seen[Citation{Surah: surah, Ayah: ayah}] = struct{}{}
		}
	}
	out := make([]Citation, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// SourceRanges expands retrieval sources into the set of citable surah/ayah
// pairs. A source covering ayahs 172..174 yields three entries.
func SourceRanges(sources []domain.SourceRef) map[Citation]struct{} {
	valid := make(map[Citation]struct{})
	for _, src := range sources {
		m := src.Metadata
		if m.Surah == 0 {
			continue
		}
		from, to := m.AyahFrom, m.AyahTo
		if to < from {
			to = from
		}
		for ayah := from; ayah <= to; ayah++ {
			valid[Citation{Surah: m.Surah, Ayah: ayah}] = struct{}{}
		}
	}
	return valid
}

// CitationCheck is the result of validating an answer's references.
type CitationCheck struct {
	AllValid         bool       `json:"all_valid"`
	TotalCitations   int        `json:"total_citations"`
	ValidCitations   int        `json:"valid_citations"`
	InvalidCitations []Citation `json:"invalid_citations"`
	Risk             Risk       `json:"hallucination_risk"`
}

// ValidateCitations checks every citation in text against the given sources.
// No citations at all is suspicious when sources were provided, so that case
// grades medium rather than low.
func ValidateCitations(text string, sources []domain.SourceRef) CitationCheck {
	found := ExtractCitations(text)
	valid := SourceRanges(sources)

	check := CitationCheck{TotalCitations: len(found)}
	for _, c := range found {
		if _, ok := valid[c]; ok {
			check.ValidCitations++
		} else {
			check.InvalidCitations = append(check.InvalidCitations, c)
		}
	}
	check.AllValid = len(check.InvalidCitations) == 0

	switch {
	case len(found) == 0:
		if len(sources) > 0 {
			check.Risk = RiskMedium
		} else {
			check.Risk = RiskLow
		}
	case check.AllValid:
		check.Risk = RiskLow
	case check.ValidCitations > 0:
		check.Risk = RiskMedium
	default:
		check.Risk = RiskHigh
	}
	return check
}
