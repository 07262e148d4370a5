package health

import "time"

// Service encapsulates health-related checks.
type Service struct {
	version         string
	geminiAvailable bool
}

// NewService constructs a new health service.
func NewService(version string, geminiAvailable bool) *Service {
	if version == "" {
		version = "dev"
	}
	return &Service{version: version, geminiAvailable: geminiAvailable}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":           "healthy",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"version":          s.version,
		"gemini_available": s.geminiAvailable,
	}
}
