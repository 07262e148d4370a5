package scoring

// Aggregate combines the dimension scores into the overall score. With a job
// description the keyword match is the strongest signal of fit; without one,
// structure and substance dominate equally. The weighted sum is truncated to
// an integer and clamped to [0,100].
func Aggregate(format, content, readability, keywordScore int, hasJobDescription bool) int {
	var overall float64
	if hasJobDescription {
		overall = 0.35*float64(keywordScore) +
			0.25*float64(format) +
			0.25*float64(content) +
			0.15*float64(readability)
	} else {
		overall = 0.40*float64(format) +
			0.40*float64(content) +
			0.20*float64(readability)
	}
	return clampScore(int(overall))
}
