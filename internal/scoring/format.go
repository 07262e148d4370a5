package scoring

import "regexp"

// Dimension is the outcome of one scoring dimension: a bounded score and the
// localized issues found while computing it, in signal order.
type Dimension struct {
	Score  int
	Issues []string
}

// Contact signals are language-independent.
var (
	emailPattern    = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`\+?[\d\s()\-]{7,}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/\S+`)

	bulletPattern = regexp.MustCompile(`(?m)^\s*(?:[•*\-–]|\d+[.)])\s*`)
)

// ScoreFormat rates the structural quality of the resume text: recognizable
// section headers (up to 30), bullet usage (20), consistent spacing (20),
// and contact information (up to 30).
func ScoreFormat(text string, p *Profile) Dimension {
	var d Dimension

	sections := 0
	for _, re := range p.SectionPatterns {
		if re.MatchString(text) {
			sections++
		}
	}
	d.Score += capPoints(sections*6, 30)
	if sections < 3 {
		d.Issues = append(d.Issues, p.Messages.SectionsMissing)
	}

	if bulletPattern.MatchString(text) {
		d.Score += 20
	} else {
		d.Issues = append(d.Issues, p.Messages.NoBullets)
	}

	if consistentSpacing(text) {
		d.Score += 20
	} else {
		d.Score += 10
		d.Issues = append(d.Issues, p.Messages.InconsistentSpacing)
	}

	contacts := 0
	for _, re := range []*regexp.Regexp{emailPattern, phonePattern, linkedinPattern} {
		if re.MatchString(text) {
			contacts++
		}
	}
	d.Score += capPoints(contacts*10, 30)
	if contacts < 2 {
		d.Issues = append(d.Issues, p.Messages.MissingContact)
	}

	d.Score = clampScore(d.Score)
	return d
}

// consistentSpacing reports whether the text avoids long runs of blank lines.
// More than three consecutive blank-line pairs counts as inconsistent.
func consistentSpacing(text string) bool {
	lines := splitLines(text)
	emptyPairs := 0
	for i := 1; i < len(lines); i++ {
		if isBlank(lines[i]) && isBlank(lines[i-1]) {
			emptyPairs++
			if emptyPairs > 3 {
				return false
			}
		}
	}
	return true
}

func capPoints(points, max int) int {
	if points > max {
		return max
	}
	return points
}
