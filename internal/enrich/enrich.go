package enrich

import (
	"context"
	"errors"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
)

// ErrUnavailable signals that no enrichment backend is configured or the
// backend could not produce a usable result. Callers fall back to the
// heuristic analysis alone.
var ErrUnavailable = errors.New("enrichment unavailable")

// Insights carries the qualitative review produced by a language model on top
// of the heuristic scoring.
type Insights struct {
	EducationComparison  []string
	ExperienceComparison []string
	Recommendations      []string
}

// Enricher reviews a resume against a job description.
type Enricher interface {
	Enrich(ctx context.Context, resumeText, jobDescription string, lang scoring.Language) (Insights, error)
}
