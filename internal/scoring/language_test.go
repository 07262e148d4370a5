package scoring

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Language
	}{
		{"english", "Software engineer with five years of experience", English},
		{"arabic", "مهندس برمجيات لديه خمس سنوات من الخبرة", Arabic},
		{"mixed mostly arabic", "مهندس برمجيات Python خبرة واسعة في تطوير الأنظمة", Arabic},
		{"mixed mostly english", "Senior software engineer, مهندس", English},
		{"empty", "", English},
		{"whitespace", "   \n\t  ", English},
		{"digits and punctuation", "123 456 !!!", English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	if lang, ok := ParseLanguage("ar"); !ok || lang != Arabic {
		t.Errorf("ParseLanguage(ar) = %q, %v", lang, ok)
	}
	if lang, ok := ParseLanguage("en"); !ok || lang != English {
		t.Errorf("ParseLanguage(en) = %q, %v", lang, ok)
	}
	if _, ok := ParseLanguage("fr"); ok {
		t.Error("ParseLanguage(fr) accepted an unsupported language")
	}
	if _, ok := ParseLanguage(""); ok {
		t.Error("ParseLanguage(\"\") accepted an empty hint")
	}
}

func TestDirection(t *testing.T) {
	if got := Arabic.Direction(); got != "rtl" {
		t.Errorf("Arabic.Direction() = %q, want rtl", got)
	}
	if got := English.Direction(); got != "ltr" {
		t.Errorf("English.Direction() = %q, want ltr", got)
	}
}
