package scoring

import "math"

// MatchResult compares the keyword sets of a resume and a job description.
type MatchResult struct {
	Matching   []string
	Missing    []string
	Percentage float64
	Score      int
	Issues     []string
}

// Match computes the keyword overlap between the two sets. Keywords present
// in both land in Matching, job keywords absent from the resume in Missing,
// each in job-description order. An empty job set yields zero percent and no
// missing keywords.
func Match(resumeKeywords, jobKeywords []string, p *Profile) MatchResult {
	result := MatchResult{
		Matching: []string{},
		Missing:  []string{},
	}

	inResume := make(map[string]struct{}, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		inResume[kw] = struct{}{}
	}

	for _, kw := range jobKeywords {
		if _, ok := inResume[kw]; ok {
			result.Matching = append(result.Matching, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	if len(jobKeywords) > 0 {
		result.Percentage = 100 * float64(len(result.Matching)) / float64(len(jobKeywords))
	}
	result.Score = clampScore(int(math.Round(result.Percentage)))

	switch {
	case result.Percentage < 30:
		result.Issues = append(result.Issues, p.Messages.VeryLowKeywordMatch)
	case result.Percentage < 60:
		result.Issues = append(result.Issues, p.Messages.ModerateKeywordMatch)
	}

	return result
}

// clampScore bounds a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
