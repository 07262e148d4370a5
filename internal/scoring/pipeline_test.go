package scoring

import (
	"reflect"
	"testing"
	"time"
)

const sampleResume = `John Doe
Software Engineer
john.doe@example.com | +1 (555) 123-4567 | linkedin.com/in/johndoe

Experience
- Developed Python services processing 2 million requests per day
- Built JavaScript dashboards and improved load time by 40%
- Led a team of 5 engineers and delivered 3 major releases

Education
- BSc Computer Science, State University

Skills
- Python, JavaScript, SQL, Docker
`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	return a
}

func TestAnalyzeEnglishResume(t *testing.T) {
	a := newTestAnalyzer(t)
	got := a.Analyze(sampleResume, "", "")

	if !got.Success {
		t.Fatalf("Success = false, error %q", got.Error)
	}
	if got.Language != English || got.Direction != "ltr" {
		t.Errorf("Language/Direction = %q/%q", got.Language, got.Direction)
	}
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("Score = %d, out of range", got.Score)
	}
	for _, key := range []string{"format_score", "content_score", "readability_score"} {
		if _, ok := got.ScoreBreakdown[key]; !ok {
			t.Errorf("ScoreBreakdown missing %q: %v", key, got.ScoreBreakdown)
		}
	}
	if _, ok := got.ScoreBreakdown["keyword_score"]; ok {
		t.Error("keyword_score present without a job description")
	}
	if !contains(got.Keywords, "python") {
		t.Errorf("Keywords = %v, missing python", got.Keywords)
	}
	if len(got.Keywords) > keywordLimit {
		t.Errorf("len(Keywords) = %d, exceeds %d", len(got.Keywords), keywordLimit)
	}
	if len(got.Recommendations) < minRecommendations {
		t.Errorf("got %d recommendations, want at least %d", len(got.Recommendations), minRecommendations)
	}
	if len(got.SkillsComparison.MatchingKeywords) != 0 || got.SkillsComparison.MatchPercentage != 0 {
		t.Errorf("SkillsComparison = %+v, want empty without a job description", got.SkillsComparison)
	}
	if got.JobDescription != "" {
		t.Errorf("JobDescription = %q, want empty", got.JobDescription)
	}
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "Looking for a Python engineer with Docker experience and Kubernetes knowledge."
	got := a.Analyze(sampleResume, jd, "")

	if !got.Success {
		t.Fatalf("Success = false, error %q", got.Error)
	}
	if _, ok := got.ScoreBreakdown["keyword_score"]; !ok {
		t.Errorf("ScoreBreakdown missing keyword_score: %v", got.ScoreBreakdown)
	}
	if !contains(got.SkillsComparison.MatchingKeywords, "python") {
		t.Errorf("MatchingKeywords = %v, missing python", got.SkillsComparison.MatchingKeywords)
	}
	if !contains(got.SkillsComparison.MissingKeywords, "kubernetes") {
		t.Errorf("MissingKeywords = %v, missing kubernetes", got.SkillsComparison.MissingKeywords)
	}
	if got.JobDescription != jd {
		t.Errorf("JobDescription = %q", got.JobDescription)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "Python engineer with SQL."

	first := a.Analyze(sampleResume, jd, "")
	second := a.Analyze(sampleResume, jd, "")

	// IDs and timestamps differ per run; everything derived from the inputs
	// must not.
	first.ID, second.ID = "", ""
	first.AnalysisDate, second.AnalysisDate = time.Time{}, time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ between runs:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeLanguageHint(t *testing.T) {
	a := newTestAnalyzer(t)

	got := a.Analyze(sampleResume, "", "ar")
	if got.Language != Arabic || got.Direction != "rtl" {
		t.Errorf("Language/Direction = %q/%q, hint not honored", got.Language, got.Direction)
	}

	got = a.Analyze(sampleResume, "", "klingon")
	if got.Language != English {
		t.Errorf("Language = %q, invalid hint should fall back to detection", got.Language)
	}
}

func TestAnalyzeArabicResume(t *testing.T) {
	a := newTestAnalyzer(t)
	text := `أحمد محمد
مهندس برمجيات
ahmed@example.com | +966 555 123 456

المهارات
- بايثون، قواعد البيانات

الخبرة
- طورت أنظمة معالجة البيانات وزادت الكفاءة بنسبة 30%
- قدت فريقاً من 4 مهندسين

التعليم
- بكالوريوس علوم الحاسب`

	got := a.Analyze(text, "", "")
	if !got.Success {
		t.Fatalf("Success = false, error %q", got.Error)
	}
	if got.Language != Arabic || got.Direction != "rtl" {
		t.Errorf("Language/Direction = %q/%q", got.Language, got.Direction)
	}
	if !contains(got.Keywords, "بايثون") {
		t.Errorf("Keywords = %v, missing بايثون", got.Keywords)
	}
	if got.Summary == "" {
		t.Error("Summary is empty")
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := newTestAnalyzer(t)
	got := a.Analyze("", "", "")
	if !got.Success {
		t.Fatalf("Success = false, error %q", got.Error)
	}
	if got.Language != English {
		t.Errorf("Language = %q, want en", got.Language)
	}
	if len(got.Keywords) == 0 {
		t.Error("Keywords not defaulted for empty text")
	}
	if len(got.Recommendations) < minRecommendations {
		t.Errorf("got %d recommendations, want at least %d", len(got.Recommendations), minRecommendations)
	}
}
