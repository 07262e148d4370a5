package scoring

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// Extractor pulls salient terms out of text. English text is tokenized and
// part-of-speech tagged with prose, then reduced to dictionary lemmas; Arabic
// text keeps surface forms since no tagger is available for it.
//
// An Extractor is immutable after construction and safe for concurrent use.
type Extractor struct {
	lemmatizer *golem.Lemmatizer
}

// NewExtractor loads the English lemma dictionary.
func NewExtractor() (*Extractor, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &Extractor{lemmatizer: lem}, nil
}

// Keywords returns the deduplicated, normalized salient terms of text in
// first-seen order. Empty or whitespace-only input yields an empty result.
func (e *Extractor) Keywords(text string, p *Profile) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if p.Language == English {
		return e.englishKeywords(text, p)
	}
	return surfaceKeywords(text, p)
}

func (e *Extractor) englishKeywords(text string, p *Profile) []string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		// Tagger failure degrades to surface forms rather than failing the
		// whole analysis.
		return surfaceKeywords(text, p)
	}

	var keywords []string
	seen := make(map[string]struct{})
	for _, tok := range doc.Tokens() {
		if !salientTag(tok.Tag) {
			continue
		}
		if len([]rune(tok.Text)) < p.MinTokenRunes {
			continue
		}
		word := strings.ToLower(tok.Text)
		if _, stop := p.StopWords[word]; stop {
			continue
		}
		if !hasLetter(word) {
			continue
		}
		lemma := strings.ToLower(e.lemmatizer.Lemma(word))
		if lemma == "" {
			lemma = word
		}
		if _, stop := p.StopWords[lemma]; stop {
			continue
		}
		if _, dup := seen[lemma]; dup {
			continue
		}
		seen[lemma] = struct{}{}
		keywords = append(keywords, lemma)
	}
	return keywords
}

// surfaceKeywords filters plain word tokens against the profile without
// tagging or lemmatization.
func surfaceKeywords(text string, p *Profile) []string {
	var keywords []string
	seen := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		if len([]rune(tok)) < p.MinTokenRunes {
			continue
		}
		if _, stop := p.StopWords[tok]; stop {
			continue
		}
		if !hasLetter(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

// salientTag reports whether a Penn Treebank tag is a noun, proper noun,
// verb, or adjective.
func salientTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "VB") ||
		strings.HasPrefix(tag, "JJ")
}

// tokenize splits text into lower-cased runs of letters and digits.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
