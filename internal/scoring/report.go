package scoring

import (
	"time"

	"github.com/google/uuid"
)

// keywordLimit bounds the keyword list serialized into a report. Matching
// still runs over the full extracted set.
const keywordLimit = 15

// SkillsComparison describes the overlap between resume and job-description
// keywords. It is present on every report; without a job description the
// sets are empty and the percentage is zero.
type SkillsComparison struct {
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	MatchPercentage  float64  `json:"match_percentage"`
}

// AnalysisReport is the externally visible result of one resume analysis.
// Reports are immutable once built.
type AnalysisReport struct {
	ID                   string           `json:"id"`
	Language             Language         `json:"language"`
	Direction            string           `json:"direction"`
	Score                int              `json:"score"`
	ScoreBreakdown       map[string]int   `json:"score_breakdown"`
	Keywords             []string         `json:"keywords"`
	Summary              string           `json:"summary"`
	SkillsComparison     SkillsComparison `json:"skills_comparison"`
	Recommendations      []string         `json:"recommendations"`
	EducationComparison  []string         `json:"education_comparison"`
	ExperienceComparison []string         `json:"experience_comparison"`
	SearchabilityIssues  []string         `json:"searchability_issues"`
	JobDescription       string           `json:"job_description"`
	AnalysisDate         time.Time        `json:"analysis_date"`
	Success              bool             `json:"success"`
	Error                string           `json:"error,omitempty"`
}

// reportBuilder accumulates the optional pieces of a report and resolves
// every field, computed value or localized default, exactly once in Build.
// No field can reach the caller unset.
type reportBuilder struct {
	profile *Profile

	id           string
	analysisDate time.Time

	score           int
	breakdown       map[string]int
	keywords        []string
	summary         string
	skills          *SkillsComparison
	recommendations []string
	education       []string
	experience      []string
	searchability   []string
	jobDescription  string
}

func newReportBuilder(p *Profile) *reportBuilder {
	return &reportBuilder{
		profile:      p,
		id:           uuid.NewString(),
		analysisDate: time.Now().UTC(),
	}
}

func (b *reportBuilder) setScore(score int) *reportBuilder {
	b.score = clampScore(score)
	return b
}

func (b *reportBuilder) setBreakdown(breakdown map[string]int) *reportBuilder {
	b.breakdown = breakdown
	return b
}

func (b *reportBuilder) setKeywords(keywords []string) *reportBuilder {
	b.keywords = keywords
	return b
}

func (b *reportBuilder) setSummary(summary string) *reportBuilder {
	b.summary = summary
	return b
}

func (b *reportBuilder) setSkillsComparison(sc SkillsComparison) *reportBuilder {
	b.skills = &sc
	return b
}

func (b *reportBuilder) setRecommendations(recommendations []string) *reportBuilder {
	b.recommendations = recommendations
	return b
}

func (b *reportBuilder) setJobDescription(jd string) *reportBuilder {
	b.jobDescription = jd
	return b
}

// Build resolves every field and returns the finished report. Unset fields
// get language-appropriate defaults; previously computed values are never
// overwritten.
func (b *reportBuilder) Build() AnalysisReport {
	msgs := b.profile.Messages

	keywords := b.keywords
	if len(keywords) == 0 {
		keywords = msgs.DefaultKeywords
	}
	if len(keywords) > keywordLimit {
		keywords = keywords[:keywordLimit]
	}

	summary := b.summary
	if summary == "" {
		summary = msgs.SummaryDefault
	}

	skills := SkillsComparison{MatchingKeywords: []string{}, MissingKeywords: []string{}}
	if b.skills != nil {
		skills = *b.skills
		if skills.MatchingKeywords == nil {
			skills.MatchingKeywords = []string{}
		}
		if skills.MissingKeywords == nil {
			skills.MissingKeywords = []string{}
		}
	}

	recommendations := b.recommendations
	if len(recommendations) == 0 {
		recommendations = msgs.DefaultRecommendations
	}
	for _, advice := range msgs.GenericAdvice {
		if len(recommendations) >= minRecommendations {
			break
		}
		if !contains(recommendations, advice) {
			recommendations = append(recommendations, advice)
		}
	}

	education := b.education
	if len(education) == 0 {
		education = msgs.EducationNotes
	}
	experience := b.experience
	if len(experience) == 0 {
		experience = msgs.ExperienceNotes
	}
	searchability := b.searchability
	if len(searchability) == 0 {
		searchability = msgs.SearchabilityNotes
	}

	breakdown := b.breakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}

	return AnalysisReport{
		ID:                   b.id,
		Language:             b.profile.Language,
		Direction:            b.profile.Language.Direction(),
		Score:                b.score,
		ScoreBreakdown:       breakdown,
		Keywords:             keywords,
		Summary:              summary,
		SkillsComparison:     skills,
		Recommendations:      recommendations,
		EducationComparison:  education,
		ExperienceComparison: experience,
		SearchabilityIssues:  searchability,
		JobDescription:       b.jobDescription,
		AnalysisDate:         b.analysisDate,
		Success:              true,
	}
}

// failureReport is the structured result of a scoring failure: success=false
// with the error message and best-effort language so the caller can still
// render a localized error.
func failureReport(lang Language, errMsg string) AnalysisReport {
	return AnalysisReport{
		ID:                   uuid.NewString(),
		Language:             lang,
		Direction:            lang.Direction(),
		ScoreBreakdown:       map[string]int{},
		Keywords:             []string{},
		SkillsComparison:     SkillsComparison{MatchingKeywords: []string{}, MissingKeywords: []string{}},
		Recommendations:      []string{},
		EducationComparison:  []string{},
		ExperienceComparison: []string{},
		SearchabilityIssues:  []string{},
		AnalysisDate:         time.Now().UTC(),
		Success:              false,
		Error:                errMsg,
	}
}
