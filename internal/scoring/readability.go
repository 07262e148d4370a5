package scoring

import "strings"

// ScoreReadability rates how easily the resume text reads: word-count band
// (25/15/5), line-length consistency (25/15/5), complex-word ratio (25/15/5),
// and passive-voice ratio (25/15/5). Each band rewards the middle ground and
// penalizes extremes.
func ScoreReadability(text string, p *Profile) Dimension {
	var d Dimension

	words := strings.Fields(text)
	wordCount := len(words)

	switch {
	case wordCount >= 300 && wordCount <= 700:
		d.Score += 25
	case (wordCount >= 200 && wordCount < 300) || (wordCount > 700 && wordCount <= 1000):
		d.Score += 15
	default:
		d.Score += 5
	}
	switch {
	case wordCount < 200:
		d.Issues = append(d.Issues, p.Messages.TooShort)
	case wordCount > 1000:
		d.Issues = append(d.Issues, p.Messages.TooLong)
	}

	variation := averageLineVariation(text)
	switch {
	case variation < 30:
		d.Score += 25
	case variation < 50:
		d.Score += 15
	default:
		d.Score += 5
		d.Issues = append(d.Issues, p.Messages.InconsistentLineLengths)
	}

	complexCount := 0
	for _, w := range words {
		if len([]rune(w)) > 12 {
			complexCount++
		}
	}
	complexRatio := ratio(complexCount, wordCount)
	switch {
	case complexRatio < 0.05:
		d.Score += 25
	case complexRatio < 0.1:
		d.Score += 15
	default:
		d.Score += 5
		d.Issues = append(d.Issues, p.Messages.TooManyComplexWords)
	}

	passiveCount := 0
	for _, re := range p.PassivePatterns {
		passiveCount += len(re.FindAllString(text, -1))
	}
	passiveRatio := ratio(passiveCount, wordCount)
	switch {
	case passiveRatio < 0.05:
		d.Score += 25
	case passiveRatio < 0.1:
		d.Score += 15
	default:
		d.Score += 5
		d.Issues = append(d.Issues, p.Messages.TooMuchPassiveVoice)
	}

	d.Score = clampScore(d.Score)
	return d
}

// averageLineVariation measures the mean absolute length difference between
// consecutive non-blank lines, averaged over all lines.
func averageLineVariation(text string) float64 {
	lines := splitLines(text)
	if len(lines) == 0 {
		return 0
	}
	variation := 0
	prevLen := 0
	for i, line := range lines {
		if i > 0 && !isBlank(line) && prevLen > 0 {
			diff := len(line) - prevLen
			if diff < 0 {
				diff = -diff
			}
			variation += diff
		}
		if !isBlank(line) {
			prevLen = len(line)
		}
	}
	return float64(variation) / float64(len(lines))
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
