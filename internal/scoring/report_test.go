package scoring

import (
	"reflect"
	"testing"
)

func TestReportBuilderDefaults(t *testing.T) {
	p := ProfileFor(English)
	got := newReportBuilder(p).Build()

	if got.ID == "" {
		t.Error("ID is empty")
	}
	if !got.Success {
		t.Error("Success = false")
	}
	if got.Language != English || got.Direction != "ltr" {
		t.Errorf("Language/Direction = %q/%q", got.Language, got.Direction)
	}
	if !reflect.DeepEqual(got.Keywords, p.Messages.DefaultKeywords) {
		t.Errorf("Keywords = %v, want defaults", got.Keywords)
	}
	if got.Summary != p.Messages.SummaryDefault {
		t.Errorf("Summary = %q, want default", got.Summary)
	}
	if !reflect.DeepEqual(got.Recommendations, p.Messages.DefaultRecommendations) {
		t.Errorf("Recommendations = %v, want defaults", got.Recommendations)
	}
	if got.SkillsComparison.MatchingKeywords == nil || got.SkillsComparison.MissingKeywords == nil {
		t.Error("skills comparison slices are nil")
	}
	if got.ScoreBreakdown == nil {
		t.Error("score breakdown is nil")
	}
	if len(got.EducationComparison) == 0 || len(got.ExperienceComparison) == 0 || len(got.SearchabilityIssues) == 0 {
		t.Error("comparison notes were not defaulted")
	}
	if got.AnalysisDate.IsZero() {
		t.Error("AnalysisDate is zero")
	}
}

func TestReportBuilderKeepsComputedValues(t *testing.T) {
	p := ProfileFor(Arabic)
	got := newReportBuilder(p).
		setScore(72).
		setKeywords([]string{"مهارة"}).
		setSummary("ملخص").
		setRecommendations([]string{"a", "b", "c", "d"}).
		setJobDescription("وصف وظيفي").
		Build()

	if got.Score != 72 {
		t.Errorf("Score = %d, want 72", got.Score)
	}
	if got.Direction != "rtl" {
		t.Errorf("Direction = %q, want rtl", got.Direction)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"مهارة"}) {
		t.Errorf("Keywords = %v", got.Keywords)
	}
	if got.Summary != "ملخص" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.Recommendations) != 4 {
		t.Errorf("Recommendations = %v, want the four computed ones", got.Recommendations)
	}
	if got.JobDescription != "وصف وظيفي" {
		t.Errorf("JobDescription = %q", got.JobDescription)
	}
}

func TestReportBuilderCapsKeywords(t *testing.T) {
	many := make([]string, 2*keywordLimit)
	for i := range many {
		many[i] = "kw"
	}
	got := newReportBuilder(ProfileFor(English)).setKeywords(many).Build()
	if len(got.Keywords) != keywordLimit {
		t.Errorf("len(Keywords) = %d, want %d", len(got.Keywords), keywordLimit)
	}
}

func TestFailureReport(t *testing.T) {
	got := failureReport(Arabic, "boom")
	if got.Success {
		t.Error("Success = true on failure")
	}
	if got.Error != "boom" {
		t.Errorf("Error = %q", got.Error)
	}
	if got.Language != Arabic || got.Direction != "rtl" {
		t.Errorf("Language/Direction = %q/%q", got.Language, got.Direction)
	}
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if got.Keywords == nil || got.Recommendations == nil {
		t.Error("failure report has nil slices")
	}
}
