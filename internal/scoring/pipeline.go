package scoring

import (
	"fmt"
	"strings"
)

// Analyzer runs the full scoring pipeline over extracted resume text. It is
// safe for concurrent use.
type Analyzer struct {
	extractor *Extractor
}

func NewAnalyzer() (*Analyzer, error) {
	ex, err := NewExtractor()
	if err != nil {
		return nil, err
	}
	return &Analyzer{extractor: ex}, nil
}

// Analyze scores the resume text and returns a complete report. The language
// is detected from the text unless languageHint names a supported language.
// A panic anywhere in the pipeline is converted into a success=false report
// instead of crashing the caller.
func (a *Analyzer) Analyze(text, jobDescription, languageHint string) (report AnalysisReport) {
	lang := DetectLanguage(text)
	if hint, ok := ParseLanguage(languageHint); ok {
		lang = hint
	}
	defer func() {
		if r := recover(); r != nil {
			report = failureReport(lang, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	p := ProfileFor(lang)
	resumeKeywords := a.extractor.Keywords(text, p)

	format := ScoreFormat(text, p)
	content := ScoreContent(text, resumeKeywords, p)
	readability := ScoreReadability(text, p)

	hasJob := strings.TrimSpace(jobDescription) != ""
	var match MatchResult
	if hasJob {
		jobKeywords := a.extractor.Keywords(jobDescription, p)
		match = Match(resumeKeywords, jobKeywords, p)
	}

	overall := Aggregate(format.Score, content.Score, readability.Score, match.Score, hasJob)

	breakdown := map[string]int{
		"format_score":      format.Score,
		"content_score":     content.Score,
		"readability_score": readability.Score,
	}
	if hasJob {
		breakdown["keyword_score"] = match.Score
	}

	b := newReportBuilder(p).
		setScore(overall).
		setBreakdown(breakdown).
		setKeywords(resumeKeywords).
		setSummary(summarize(overall, len(resumeKeywords), p)).
		setRecommendations(buildRecommendations(p, format.Issues, content.Issues, readability.Issues, match.Issues)).
		setJobDescription(jobDescription)
	if hasJob {
		b.setSkillsComparison(SkillsComparison{
			MatchingKeywords: match.Matching,
			MissingKeywords:  match.Missing,
			MatchPercentage:  match.Percentage,
		})
	}
	return b.Build()
}

func summarize(score, keywordCount int, p *Profile) string {
	switch {
	case score >= 80:
		return fmt.Sprintf(p.Messages.SummaryExcellent, keywordCount)
	case score >= 60:
		return fmt.Sprintf(p.Messages.SummaryGood, keywordCount)
	default:
		return fmt.Sprintf(p.Messages.SummaryNeedsWork, keywordCount)
	}
}
