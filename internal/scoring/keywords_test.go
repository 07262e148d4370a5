package scoring

import "testing"

func TestKeywordsEnglish(t *testing.T) {
	e, err := NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	p := ProfileFor(English)

	t.Run("salient terms extracted", func(t *testing.T) {
		got := e.Keywords("Experienced software engineer working with Python and JavaScript.", p)
		for _, want := range []string{"python", "javascript", "engineer"} {
			if !contains(got, want) {
				t.Errorf("Keywords = %v, missing %q", got, want)
			}
		}
	})

	t.Run("stop words excluded", func(t *testing.T) {
		got := e.Keywords("The team and the manager were there with them.", p)
		for _, kw := range got {
			if _, stop := p.StopWords[kw]; stop {
				t.Errorf("stop word %q leaked into keywords %v", kw, got)
			}
		}
	})

	t.Run("duplicates collapse to first occurrence", func(t *testing.T) {
		got := e.Keywords("Python developer. Python scripts. More Python.", p)
		count := 0
		for _, kw := range got {
			if kw == "python" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("python appears %d times in %v", count, got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := e.Keywords("   \n  ", p); len(got) != 0 {
			t.Errorf("Keywords = %v, want none", got)
		}
	})
}

func TestKeywordsArabic(t *testing.T) {
	e, err := NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	p := ProfileFor(Arabic)

	got := e.Keywords("مهندس برمجيات يعمل في تطوير الأنظمة من خلال الخبرة", p)
	for _, want := range []string{"مهندس", "برمجيات"} {
		if !contains(got, want) {
			t.Errorf("Keywords = %v, missing %q", got, want)
		}
	}
	for _, kw := range got {
		if _, stop := p.StopWords[kw]; stop {
			t.Errorf("stop word %q leaked into keywords %v", kw, got)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Built REST-APIs, 3 services; Go/SQL!")
	want := map[string]bool{"built": true, "rest": true, "apis": true, "3": true, "services": true, "go": true, "sql": true}
	if len(got) != len(want) {
		t.Fatalf("tokenize = %v, want %d tokens", got, len(want))
	}
	for _, tok := range got {
		if !want[tok] {
			t.Errorf("unexpected token %q in %v", tok, got)
		}
	}
}
