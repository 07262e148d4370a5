package analyses

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/enrich"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
)

const sampleResumeText = `John Doe
Software Engineer
john.doe@example.com | +1 (555) 123-4567 | linkedin.com/in/johndoe

Experience
- Developed Python services processing 2 million requests per day
- Built JavaScript dashboards and improved load time by 40%

Education
- BSc Computer Science

Skills
- Python, JavaScript, SQL, Docker
`

type fakeEnricher struct {
	insights enrich.Insights
	err      error
	called   bool
}

func (f *fakeEnricher) Enrich(ctx context.Context, resumeText, jobDescription string, lang scoring.Language) (enrich.Insights, error) {
	f.called = true
	return f.insights, f.err
}

type fakeStore struct {
	saved   map[string][]byte
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(ctx context.Context, reportID, fileName string, r io.Reader) (string, int64, string, error) {
	if f.failAll {
		return "", 0, "", errors.New("store down")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := reportID + "/" + fileName
	f.saved[key] = data
	return key, int64(len(data)), "application/octet-stream", nil
}

func (f *fakeStore) SaveDerived(ctx context.Context, storageKey, contentType string, r io.Reader) (int64, error) {
	if f.failAll {
		return 0, errors.New("store down")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.saved[storageKey] = data
	return int64(len(data)), nil
}

func (f *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := f.saved[storageKey]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func newTestService(t *testing.T) (*Service, *MemoryRepo, *fakeStore, *fakeEnricher) {
	t.Helper()
	analyzer, err := scoring.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	repo := NewMemoryRepo()
	store := newFakeStore()
	enricher := &fakeEnricher{
		insights: enrich.Insights{
			EducationComparison:  []string{"degree matches the role"},
			ExperienceComparison: []string{"backend experience is relevant"},
			Recommendations:      []string{"mention cloud platforms"},
		},
	}
	return &Service{Repo: repo, Analyzer: analyzer, Enricher: enricher, Store: store}, repo, store, enricher
}

func TestServiceAnalyze(t *testing.T) {
	svc, repo, store, enricher := newTestService(t)

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "Python engineer with Docker", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !record.Report.Success {
		t.Fatalf("report failed: %q", record.Report.Error)
	}
	if !enricher.called {
		t.Error("enricher was not called")
	}
	if record.Report.EducationComparison[0] != "degree matches the role" {
		t.Errorf("EducationComparison = %v", record.Report.EducationComparison)
	}
	found := false
	for _, rec := range record.Report.Recommendations {
		if rec == "mention cloud platforms" {
			found = true
		}
	}
	if !found {
		t.Errorf("Recommendations = %v, missing enrichment item", record.Report.Recommendations)
	}

	stored, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
	if stored.Score != record.Report.Score {
		t.Errorf("stored score %d != report score %d", stored.Score, record.Report.Score)
	}

	if _, ok := store.saved[record.StorageKey]; !ok {
		t.Errorf("upload not stored, keys: %v", storeKeys(store))
	}
	if _, ok := store.saved[record.StorageKey+".extracted.txt"]; !ok {
		t.Errorf("extracted text not stored, keys: %v", storeKeys(store))
	}
}

func TestServiceAnalyzeWithoutJobDescriptionSkipsEnrichment(t *testing.T) {
	svc, _, _, enricher := newTestService(t)

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if enricher.called {
		t.Error("enricher called without a job description")
	}
	if !record.Report.Success {
		t.Fatalf("report failed: %q", record.Report.Error)
	}
}

func TestServiceAnalyzeEnrichmentFailureDegrades(t *testing.T) {
	svc, repo, _, enricher := newTestService(t)
	enricher.err = enrich.ErrUnavailable
	enricher.insights = enrich.Insights{}

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "Python engineer", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !record.Report.Success {
		t.Fatalf("report failed: %q", record.Report.Error)
	}
	if len(record.Report.Recommendations) < 3 {
		t.Errorf("Recommendations = %v", record.Report.Recommendations)
	}
	if _, err := repo.GetByID(context.Background(), record.ID); err != nil {
		t.Errorf("record not persisted after enrichment failure: %v", err)
	}
}

func TestServiceAnalyzeStoreFailureDegrades(t *testing.T) {
	svc, repo, store, _ := newTestService(t)
	store.failAll = true

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if record.StorageKey != "" {
		t.Errorf("StorageKey = %q, want empty after store failure", record.StorageKey)
	}
	if _, err := repo.GetByID(context.Background(), record.ID); err != nil {
		t.Errorf("record not persisted after store failure: %v", err)
	}
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(text, jobDescription, languageHint string) scoring.AnalysisReport {
	return scoring.AnalysisReport{
		ID:           "rep-broken",
		Language:     scoring.English,
		Direction:    "ltr",
		AnalysisDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Success:      false,
		Error:        "analysis failed: boom",
	}
}

func TestServiceAnalyzeFailureReportIsFetchable(t *testing.T) {
	svc, repo, store, _ := newTestService(t)
	svc.Analyzer = failingAnalyzer{}

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if record.Report.Success {
		t.Fatal("expected a failure report")
	}

	stored, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("failure report not fetchable by id: %v", err)
	}
	if stored.Report.Success || stored.Report.Error == "" {
		t.Errorf("stored report = %+v", stored.Report)
	}
	if len(store.saved) != 0 {
		t.Errorf("no artifacts should be stored for a failed analysis, got %v", storeKeys(store))
	}
}

func TestServiceAnalyzeRejectsUnsupportedType(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Analyze(context.Background(), "cv.png", []byte("data"), "", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestServiceAnalyzeRejectsShortText(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Analyze(context.Background(), "cv.txt", []byte("too short"), "", "")
	if !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("err = %v, want ErrTextTooShort", err)
	}
}

func TestServiceAnalyzeLanguageHint(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	record, err := svc.Analyze(context.Background(), "cv.txt", []byte(sampleResumeText), "", "ar")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if record.Language != scoring.Arabic {
		t.Errorf("Language = %q, want ar", record.Language)
	}
}

func storeKeys(s *fakeStore) []string {
	keys := make([]string, 0, len(s.saved))
	for k := range s.saved {
		keys = append(keys, k)
	}
	return keys
}
