package scoring

// minRecommendations guarantees every report gives actionable feedback, even
// for a resume with no detected issues.
const minRecommendations = 3

// buildRecommendations collects scorer issues in scorer-then-signal order and
// tops up with generic advice from the profile pool, drawn without
// replacement, until the minimum count is reached.
func buildRecommendations(p *Profile, issueGroups ...[]string) []string {
	recommendations := []string{}
	for _, group := range issueGroups {
		recommendations = append(recommendations, group...)
	}

	for _, advice := range p.Messages.GenericAdvice {
		if len(recommendations) >= minRecommendations {
			break
		}
		if contains(recommendations, advice) {
			continue
		}
		recommendations = append(recommendations, advice)
	}
	return recommendations
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
