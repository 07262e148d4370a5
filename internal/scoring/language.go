package scoring

// Language identifies a supported analysis language.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage validates a client-supplied language hint.
func ParseLanguage(raw string) (Language, bool) {
	switch Language(raw) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	default:
		return "", false
	}
}

// Direction returns the text direction for the language.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// DetectLanguage classifies text as Arabic or English by counting characters
// in the Arabic Unicode blocks against Latin letters. Ties (including empty
// text) resolve to English.
func DetectLanguage(text string) Language {
	var arabic, latin int
	for _, r := range text {
		switch {
		case isArabicRune(r):
			arabic++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	if arabic > latin {
		return Arabic
	}
	return English
}

func isArabicRune(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF)
}
