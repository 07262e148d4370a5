package scoring

import "regexp"

// Profile bundles everything language-specific the analysis needs: section
// header patterns, achievement verbs, passive-voice patterns, stop-words,
// token length limits, and the localized message catalog. Scorers take a
// profile parameter instead of branching on language internally.
type Profile struct {
	Language        Language
	SectionPatterns []*regexp.Regexp
	ActionVerbs     map[string]struct{}
	PassivePatterns []*regexp.Regexp
	StopWords       map[string]struct{}
	// MinTokenRunes is the shortest token kept as a keyword. Arabic roots
	// carry meaning at shorter lengths than English words.
	MinTokenRunes int
	Messages      Catalog
}

// Catalog holds every user-visible string for one language. Parallel fields
// across catalogs carry equivalent content; which entry fires is decided by
// language-independent logic.
type Catalog struct {
	SectionsMissing         string
	NoBullets               string
	InconsistentSpacing     string
	MissingContact          string
	FewActionVerbs          string
	FewNumbers              string
	FewTechnicalTerms       string
	SentencesTooLong        string
	SentencesTooShort       string
	TooShort                string
	TooLong                 string
	InconsistentLineLengths string
	TooManyComplexWords     string
	TooMuchPassiveVoice     string
	VeryLowKeywordMatch     string
	ModerateKeywordMatch    string

	// Summary templates take the extracted keyword count.
	SummaryExcellent string
	SummaryGood      string
	SummaryNeedsWork string
	SummaryDefault   string

	GenericAdvice          []string
	DefaultKeywords        []string
	DefaultRecommendations []string
	EducationNotes         []string
	ExperienceNotes        []string
	SearchabilityNotes     []string
}

// ProfileFor returns the profile for the given language. Unknown values fall
// back to English.
func ProfileFor(lang Language) *Profile {
	if lang == Arabic {
		return &profileAR
	}
	return &profileEN
}

var profileEN = Profile{
	Language: English,
	SectionPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(education|academic|qualification|degree)\b`),
		regexp.MustCompile(`(?i)\b(experience|employment|work history|professional background)\b`),
		regexp.MustCompile(`(?i)\b(skills|abilities|competencies|expertise)\b`),
		regexp.MustCompile(`(?i)\b(projects|portfolio|achievements)\b`),
		regexp.MustCompile(`(?i)\b(contact|information|profile)\b`),
	},
	ActionVerbs: toSet([]string{
		"achieved", "improved", "developed", "managed", "created", "implemented",
		"increased", "decreased", "negotiated", "led", "coordinated", "designed",
		"launched", "built", "delivered", "generated", "reduced", "resolved",
	}),
	PassivePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w+ed\b`),
		regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w+en\b`),
	},
	StopWords:     toSet(stopWordsEN),
	MinTokenRunes: 3,
	Messages: Catalog{
		SectionsMissing:         "CV lacks clear sections. Add headers like 'Education', 'Experience', 'Skills'.",
		NoBullets:               "Use bullet points to better organize information, especially in experience and skills sections.",
		InconsistentSpacing:     "Inconsistent formatting. Avoid multiple consecutive empty spaces.",
		MissingContact:          "Insufficient contact information. Add email, phone number, and LinkedIn profile.",
		FewActionVerbs:          "Use more action verbs like 'achieved', 'developed', 'managed' to showcase your accomplishments.",
		FewNumbers:              "Add specific numbers to quantify your achievements (e.g., increased sales by 20%).",
		FewTechnicalTerms:       "Add more technical terms and skills relevant to your field.",
		SentencesTooLong:        "Sentences are too long. Use shorter, more impactful sentences.",
		SentencesTooShort:       "Sentences are too short. Develop your ideas more completely.",
		TooShort:                "CV is too short. Add more details about your experiences and skills.",
		TooLong:                 "CV is too long. Condense content to focus on the most important information.",
		InconsistentLineLengths: "Inconsistent formatting. Use similar line lengths for similar content.",
		TooManyComplexWords:     "Excessive use of complex terms. Use simpler, more direct language.",
		TooMuchPassiveVoice:     "Excessive use of passive voice. Use active voice to show ownership of your achievements.",
		VeryLowKeywordMatch:     "Very low keyword match. Add more keywords from the job description.",
		ModerateKeywordMatch:    "Moderate keyword match. Try to include more specific terms from the job description.",

		SummaryExcellent: "Excellent CV with good formatting and strong content. Contains %d industry-relevant keywords.",
		SummaryGood:      "Good CV with some areas for improvement. Contains %d industry-relevant keywords.",
		SummaryNeedsWork: "CV needs significant improvements in formatting and content. Contains %d industry-relevant keywords.",
		SummaryDefault:   "Analysis of your CV. Please review the recommendations to improve your chances.",

		GenericAdvice: []string{
			"Tailor your CV for each job you apply to.",
			"Use clean, easy-to-read formatting.",
			"Focus on achievements rather than just listing responsibilities.",
			"Ensure your CV is free of spelling and grammatical errors.",
			"Use keywords relevant to your field.",
		},
		DefaultKeywords: []string{"skill", "experience", "education", "project", "achievement"},
		DefaultRecommendations: []string{
			"Add more job-relevant keywords",
			"Organize your CV with clear, professional formatting",
			"Focus on achievements rather than just listing responsibilities",
		},
		EducationNotes: []string{
			"Educational qualifications are clearly mentioned.",
			"Could add more details about relevant academic projects.",
		},
		ExperienceNotes: []string{
			"Work experience is well documented.",
			"Could focus more on measurable achievements in each role.",
		},
		SearchabilityNotes: []string{
			"Ensure you use a standard format that can be read by ATS systems.",
			"Avoid using complex graphics or tables that may not be parsed correctly.",
		},
	},
}

var profileAR = Profile{
	Language: Arabic,
	SectionPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(التعليم|المؤهلات|الشهادات)`),
		regexp.MustCompile(`(الخبرة|العمل|التاريخ المهني)`),
		regexp.MustCompile(`(المهارات|القدرات|الكفاءات)`),
		regexp.MustCompile(`(المشاريع|الإنجازات)`),
		regexp.MustCompile(`(معلومات الاتصال|الملف الشخصي)`),
	},
	ActionVerbs: toSet([]string{
		"حققت", "طورت", "أدرت", "أنشأت", "نفذت", "زادت", "قللت", "تفاوضت",
		"قدت", "نسقت", "صممت", "أطلقت", "بنيت", "سلمت", "أنتجت", "خفضت", "حللت",
	}),
	PassivePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(تم|يتم)\s+\S+`),
		regexp.MustCompile(`(كان|كانت|يكون)\s+\S+`),
	},
	StopWords:     toSet(stopWordsAR),
	MinTokenRunes: 2,
	Messages: Catalog{
		SectionsMissing:         "يفتقر السيرة الذاتية إلى أقسام واضحة. أضف عناوين مثل 'التعليم'، 'الخبرة'، 'المهارات'.",
		NoBullets:               "استخدم النقاط لتنظيم المعلومات بشكل أفضل، خاصة في أقسام الخبرة والمهارات.",
		InconsistentSpacing:     "تنسيق غير متناسق. تجنب المساحات الفارغة المتعددة المتتالية.",
		MissingContact:          "معلومات الاتصال غير كافية. أضف البريد الإلكتروني ورقم الهاتف وملف LinkedIn.",
		FewActionVerbs:          "استخدم المزيد من الأفعال النشطة مثل 'حققت'، 'طورت'، 'أدرت' لإظهار إنجازاتك.",
		FewNumbers:              "أضف أرقاماً محددة لتوضيح إنجازاتك (مثل: زيادة المبيعات بنسبة 20%).",
		FewTechnicalTerms:       "أضف المزيد من المصطلحات التقنية والمهارات المتعلقة بمجالك.",
		SentencesTooLong:        "الجمل طويلة جداً. استخدم جملاً أقصر وأكثر تأثيراً.",
		SentencesTooShort:       "الجمل قصيرة جداً. قم بتطوير أفكارك بشكل أكثر اكتمالاً.",
		TooShort:                "السيرة الذاتية قصيرة جداً. أضف المزيد من التفاصيل حول خبراتك ومهاراتك.",
		TooLong:                 "السيرة الذاتية طويلة جداً. اختصر المحتوى للتركيز على أهم المعلومات.",
		InconsistentLineLengths: "تنسيق غير متناسق. استخدم أطوال سطور متشابهة للمحتوى المماثل.",
		TooManyComplexWords:     "استخدام مفرط للمصطلحات المعقدة. استخدم لغة أبسط وأكثر مباشرة.",
		TooMuchPassiveVoice:     "استخدام مفرط للصيغة المبنية للمجهول. استخدم الصيغة المبنية للمعلوم لإظهار مسؤوليتك.",
		VeryLowKeywordMatch:     "تطابق منخفض جداً للكلمات الرئيسية. أضف المزيد من الكلمات الرئيسية من الوصف الوظيفي.",
		ModerateKeywordMatch:    "تطابق متوسط للكلمات الرئيسية. حاول تضمين المزيد من المصطلحات المحددة من الوصف الوظيفي.",

		SummaryExcellent: "سيرة ذاتية ممتازة مع تنسيق جيد ومحتوى قوي. تم العثور على %d كلمة رئيسية ذات صلة بالصناعة.",
		SummaryGood:      "سيرة ذاتية جيدة مع بعض المجالات التي تحتاج إلى تحسين. تم العثور على %d كلمة رئيسية ذات صلة بالصناعة.",
		SummaryNeedsWork: "سيرة ذاتية تحتاج إلى تحسينات كبيرة في التنسيق والمحتوى. تم العثور على %d كلمة رئيسية ذات صلة بالصناعة.",
		SummaryDefault:   "تحليل السيرة الذاتية الخاصة بك. يرجى مراجعة التوصيات لتحسين فرصك.",

		GenericAdvice: []string{
			"قم بتخصيص سيرتك الذاتية لكل وظيفة تتقدم لها.",
			"استخدم تنسيقاً نظيفاً وسهل القراءة.",
			"ركز على إنجازاتك بدلاً من مجرد سرد المسؤوليات.",
			"تأكد من خلو سيرتك الذاتية من الأخطاء الإملائية والنحوية.",
			"استخدم الكلمات الرئيسية ذات الصلة بمجالك.",
		},
		DefaultKeywords: []string{"مهارة", "خبرة", "تعليم", "مشروع", "إنجاز"},
		DefaultRecommendations: []string{
			"أضف المزيد من الكلمات الرئيسية ذات الصلة بالوظيفة",
			"قم بتنظيم سيرتك الذاتية بتنسيق واضح ومهني",
			"ركز على إنجازاتك بدلاً من مجرد سرد المسؤوليات",
		},
		EducationNotes: []string{
			"تم ذكر المؤهلات التعليمية بشكل واضح.",
			"يمكن إضافة المزيد من التفاصيل حول المشاريع الأكاديمية ذات الصلة.",
		},
		ExperienceNotes: []string{
			"تم توثيق الخبرة العملية بشكل جيد.",
			"يمكن التركيز أكثر على الإنجازات القابلة للقياس في كل دور.",
		},
		SearchabilityNotes: []string{
			"تأكد من استخدام تنسيق قياسي يمكن قراءته بواسطة أنظمة تتبع المتقدمين.",
			"تجنب استخدام الرسومات المعقدة أو الجداول التي قد لا يتم تحليلها بشكل صحيح.",
		},
	},
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var stopWordsEN = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does",
	"doing", "down", "during", "each", "few", "for", "from", "further", "had",
	"has", "have", "having", "he", "her", "here", "hers", "him", "his", "how",
	"i", "if", "in", "into", "is", "it", "its", "just", "me", "more", "most",
	"my", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "out", "over", "own", "same", "she", "should",
	"so", "some", "such", "than", "that", "the", "their", "theirs", "them",
	"then", "there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "your", "yours",
}

var stopWordsAR = []string{
	"من", "في", "على", "إلى", "عن", "مع", "هذا", "هذه", "ذلك", "تلك",
	"التي", "الذي", "الذين", "ما", "لا", "لم", "لن", "إن", "أن", "كان",
	"كانت", "يكون", "هو", "هي", "هم", "هن", "أنا", "نحن", "أنت", "و",
	"أو", "ثم", "بل", "قد", "كل", "بعض", "غير", "بين", "عند", "حتى",
	"إذا", "كما", "لكن", "منذ", "خلال", "بعد", "قبل", "حيث", "فيها", "فيه",
	"لها", "له", "لهم", "بها", "به", "عليها", "عليه", "إلا", "أي", "أيضا",
}
