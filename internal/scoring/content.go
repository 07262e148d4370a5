package scoring

import (
	"regexp"
	"strings"
)

var (
	numberPattern   = regexp.MustCompile(`\b\d+%?\b`)
	sentenceSplitRE = regexp.MustCompile(`[.!?؟…]+|\n+`)
)

// ScoreContent rates the substance of the resume text: achievement verbs
// (3 points per occurrence up to 30), quantified results (5 per number up to
// 25), technical-term richness (1 per extracted keyword up to 25), and
// sentence quality (up to 20).
func ScoreContent(text string, keywords []string, p *Profile) Dimension {
	var d Dimension

	verbCount := 0
	for _, tok := range tokenize(text) {
		if _, ok := p.ActionVerbs[tok]; ok {
			verbCount++
		}
	}
	d.Score += capPoints(verbCount*3, 30)
	if verbCount < 5 {
		d.Issues = append(d.Issues, p.Messages.FewActionVerbs)
	}

	numbers := len(numberPattern.FindAllString(text, -1))
	d.Score += capPoints(numbers*5, 25)
	if numbers < 3 {
		d.Issues = append(d.Issues, p.Messages.FewNumbers)
	}

	d.Score += capPoints(len(keywords), 25)
	if len(keywords) < 10 {
		d.Issues = append(d.Issues, p.Messages.FewTechnicalTerms)
	}

	sentences := splitSentences(text)
	if len(sentences) > 0 {
		totalWords := 0
		lengths := make(map[int]struct{})
		for _, s := range sentences {
			n := len(strings.Fields(s))
			totalWords += n
			lengths[n] = struct{}{}
		}
		mean := float64(totalWords) / float64(len(sentences))

		if mean >= 8 && mean <= 20 {
			d.Score += 10
		}
		if len(lengths) >= 3 {
			d.Score += 10
		}

		switch {
		case mean > 25:
			d.Issues = append(d.Issues, p.Messages.SentencesTooLong)
		case mean < 5:
			d.Issues = append(d.Issues, p.Messages.SentencesTooShort)
		}
	}

	d.Score = clampScore(d.Score)
	return d
}

// splitSentences breaks text on terminal punctuation (Latin and Arabic) and
// line breaks, dropping empty fragments.
func splitSentences(text string) []string {
	parts := sentenceSplitRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
