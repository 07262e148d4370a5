package analyses

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/enrich"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/extract"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/metrics"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/storage/object"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/telemetry"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/util"
)

// minExtractedRunes is the least extracted text worth analyzing. Shorter
// payloads are almost always scans or extraction failures.
const minExtractedRunes = 50

// Analyzer produces a report from extracted resume text.
type Analyzer interface {
	Analyze(text, jobDescription, languageHint string) scoring.AnalysisReport
}

// Service runs the analysis pipeline and persists the outcome.
// Enricher and Store are optional; a nil value disables that step.
type Service struct {
	Repo     Repo
	Analyzer Analyzer
	Enricher enrich.Enricher
	Store    object.ObjectStore

	// EnrichTimeout bounds the enrichment calls so a slow model cannot
	// stall the request. Zero means no extra deadline.
	EnrichTimeout time.Duration
}

// Analyze extracts text from the upload, scores it, enriches the report when
// a backend is available, and persists record and artifacts. Enrichment and
// object storage failures degrade to the heuristic result; repository
// failures do not.
func (s *Service) Analyze(ctx context.Context, fileName string, data []byte, jobDescription, languageHint string) (Record, error) {
	text, err := extract.FromBytes(data, fileName)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len([]rune(strings.TrimSpace(text))) < minExtractedRunes {
		return Record{}, ErrTextTooShort
	}

	report := s.Analyzer.Analyze(text, jobDescription, languageHint)
	if !report.Success {
		telemetry.Error("analysis.pipeline_failed", map[string]any{
			"analysis_id": report.ID,
			"file_name":   fileName,
			"err":         report.Error,
		})
		record := Record{ID: report.ID, FileName: fileName, Language: report.Language, Report: report, CreatedAt: report.AnalysisDate}
		// The client receives this id, so the failure report must stay
		// fetchable through GET /results.
		if err := s.Repo.Create(ctx, record); err != nil {
			telemetry.Error("analysis.persist_failed", map[string]any{
				"analysis_id": report.ID,
				"err":         err.Error(),
			})
		}
		return record, nil
	}

	if s.Enricher != nil && strings.TrimSpace(jobDescription) != "" {
		s.enrichReport(ctx, &report, text, jobDescription)
	}

	storageKey := s.saveArtifacts(ctx, report.ID, fileName, data, text)

	record := Record{
		ID:         report.ID,
		FileName:   fileName,
		StorageKey: storageKey,
		Language:   report.Language,
		Score:      report.Score,
		Report:     report,
		CreatedAt:  report.AnalysisDate,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Record{}, fmt.Errorf("persist analysis %s: %w", report.ID, err)
	}

	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":  report.ID,
		"language":     report.Language,
		"score":        report.Score,
		"content_hash": util.HashContent(data),
	})
	return record, nil
}

// Get returns a stored record by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) enrichReport(ctx context.Context, report *scoring.AnalysisReport, text, jobDescription string) {
	if s.EnrichTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.EnrichTimeout)
		defer cancel()
	}

	insights, err := s.Enricher.Enrich(ctx, text, jobDescription, report.Language)
	if err != nil {
		metrics.IncEnrichmentFailed()
		telemetry.Error("analysis.enrich_failed", map[string]any{
			"analysis_id": report.ID,
			"err":         err.Error(),
		})
		return
	}

	if len(insights.EducationComparison) > 0 {
		report.EducationComparison = insights.EducationComparison
	}
	if len(insights.ExperienceComparison) > 0 {
		report.ExperienceComparison = insights.ExperienceComparison
	}
	for _, rec := range insights.Recommendations {
		if !containsString(report.Recommendations, rec) {
			report.Recommendations = append(report.Recommendations, rec)
		}
	}
}

// saveArtifacts stores the original upload plus the extracted text. Both are
// best effort; the analysis result does not depend on them.
func (s *Service) saveArtifacts(ctx context.Context, reportID, fileName string, data []byte, text string) string {
	if s.Store == nil {
		return ""
	}

	storageKey, _, _, err := s.Store.Save(ctx, reportID, fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("analysis.store_failed", map[string]any{
			"analysis_id": reportID,
			"err":         err.Error(),
		})
		return ""
	}

	extractedKey := storageKey + ".extracted.txt"
	if _, err := s.Store.SaveDerived(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Error("analysis.store_extracted_failed", map[string]any{
			"analysis_id": reportID,
			"err":         err.Error(),
		})
	}
	return storageKey
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
