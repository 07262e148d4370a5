package analyses

import (
	"time"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
)

// Record is one stored analysis: the uploaded file's identity plus the full
// report produced for it.
type Record struct {
	ID         string
	FileName   string
	StorageKey string
	Language   scoring.Language
	Score      int
	Report     scoring.AnalysisReport
	CreatedAt  time.Time
}
