package quality

import (
	"fmt"
	"regexp"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

// confidentPhrase matches the phrase as a whole word. \b is ASCII-only in
// RE2, hence the explicit boundary groups around the Cyrillic phrase.
func confidentPhrase(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^а-яёa-z0-9_])(` + regexp.QuoteMeta(phrase) + `)($|[^а-яёa-z0-9_])`)
}

var confidentPhrasePatterns = []*regexp.Regexp{
	confidentPhrase("точно"),
	confidentPhrase("определенно"),
	confidentPhrase("безусловно"),
	confidentPhrase("всегда"),
	confidentPhrase("никогда"),
	confidentPhrase("обязательно"),
	confidentPhrase("строго запрещено"),
	confidentPhrase("без исключений"),
}

const maxReportedPhrases = 5

// ConfidentClaim is one categorical phrase found in an answer.
type ConfidentClaim struct {
	Phrase   string `json:"phrase"`
	Position int    `json:"position"`
}

// ClaimCheck reports categorical statements that need source backing.
type ClaimCheck struct {
	HasClaims bool             `json:"has_confident_claims"`
	Count     int              `json:"count"`
	Phrases   []ConfidentClaim `json:"phrases,omitempty"`
}

// DetectConfidentClaims scans text for categorical phrasing. At most five
// phrases are reported but the count covers all occurrences.
func DetectConfidentClaims(text string) ClaimCheck {
	var check ClaimCheck
	for _, re := range confidentPhrasePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			check.Count++
			if len(check.Phrases) < maxReportedPhrases {
				// submatch 2 is the phrase itself, without the boundary runes
				check.Phrases = append(check.Phrases, ConfidentClaim{
					Phrase:   text[loc[4]:loc[5]],
					Position: loc[4],
				})
			}
		}
	}
	check.HasClaims = check.Count > 0
	return check
}

// Grade buckets an answer by its accumulated risk score.
type Grade string

const (
	GradeExcellent  Grade = "excellent"
	GradeGood       Grade = "good"
	GradeAcceptable Grade = "acceptable"
	GradePoor       Grade = "poor"
	GradeCritical   Grade = "critical"
)

// Weights are the risk score contributions. The zero value is not usable;
// call DefaultWeights.
type Weights struct {
	PerInvalidCitation    int
	PerUnsourcedClaim     int
	AllCitationsInvalid   int
	SourcesWithoutCitings int
}

func DefaultWeights() Weights {
	return Weights{
		PerInvalidCitation:    3,
		PerUnsourcedClaim:     2,
		AllCitationsInvalid:   5,
		SourcesWithoutCitings: 1,
	}
}

// Thresholds are the grade bucket boundaries (inclusive upper bounds).
type Thresholds struct {
	Good       int
	Acceptable int
	Poor       int
}

func DefaultThresholds() Thresholds {
	return Thresholds{Good: 2, Acceptable: 5, Poor: 10}
}

// Report is the full quality assessment attached to a chat reply.
type Report struct {
	Grade        Grade         `json:"quality"`
	RiskScore    int           `json:"risk_score"`
	Citations    CitationCheck `json:"citation_validation"`
	Claims       ClaimCheck    `json:"confident_claims"`
	HasSources   bool          `json:"has_sources"`
	HasCitations bool          `json:"has_citations"`
	Issues       []string      `json:"issues,omitempty"`
}

// Checker scores answers. Safe for concurrent use.
type Checker struct {
	weights    Weights
	thresholds Thresholds
}

func NewChecker(w Weights, t Thresholds) *Checker {
	return &Checker{weights: w, thresholds: t}
}

// Check runs citation validation and claim detection over a finished answer
// and grades the combined risk.
func (c *Checker) Check(text string, sources []domain.SourceRef) Report {
	citations := ValidateCitations(text, sources)
	claims := DetectConfidentClaims(text)

	hasSources := len(sources) > 0
	hasCitations := citations.TotalCitations > 0

	score := 0
	score += len(citations.InvalidCitations) * c.weights.PerInvalidCitation
	if claims.HasClaims && !hasSources {
		score += claims.Count * c.weights.PerUnsourcedClaim
	}
	if hasCitations && citations.ValidCitations == 0 {
		score += c.weights.AllCitationsInvalid
	}
	if hasSources && !hasCitations {
		score += c.weights.SourcesWithoutCitings
	}

	var grade Grade
	switch {
	case score == 0:
		grade = GradeExcellent
	case score <= c.thresholds.Good:
		grade = GradeGood
	case score <= c.thresholds.Acceptable:
		grade = GradeAcceptable
	case score <= c.thresholds.Poor:
		grade = GradePoor
	default:
		grade = GradeCritical
	}

	return Report{
		Grade:        grade,
		RiskScore:    score,
		Citations:    citations,
		Claims:       claims,
		HasSources:   hasSources,
		HasCitations: hasCitations,
		Issues:       buildIssues(citations, claims, hasSources, hasCitations),
	}
}

func buildIssues(citations CitationCheck, claims ClaimCheck, hasSources, hasCitations bool) []string {
	var issues []string
	if len(citations.InvalidCitations) > 0 {
		first := citations.InvalidCitations[0]
		issues = append(issues, fmt.Sprintf(
			"Невалидные цитаты: %d (например: сура %d, аят %d)",
			len(citations.InvalidCitations), first.Surah, first.Ayah))
	}
	if hasSources && !hasCitations {
		issues = append(issues, "Источники предоставлены, но не процитированы")
	}
	if claims.HasClaims && !hasSources {
		issues = append(issues, fmt.Sprintf("Уверенные утверждения без источников: %d раз", claims.Count))
	}
	if hasCitations && citations.ValidCitations == 0 {
		issues = append(issues, "Все цитаты невалидны - возможная галлюцинация")
	}
	return issues
}
