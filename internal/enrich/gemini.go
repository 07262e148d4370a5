package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
)

const defaultModel = "gemini-2.5-flash"

// GeminiEnricher reviews resumes with the Gemini API. It runs two prompts:
// a free-form HR review, then a structured extraction of that review into
// lists the report can carry.
type GeminiEnricher struct {
	client    *genai.Client
	modelName string
}

// NewGeminiEnricher builds an enricher for the Gemini API backend.
func NewGeminiEnricher(ctx context.Context, apiKey, model string) (*GeminiEnricher, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &GeminiEnricher{client: client, modelName: model}, nil
}

// Enrich produces qualitative insights for the resume. Failures of either
// model call are wrapped as ErrUnavailable so callers can degrade.
func (g *GeminiEnricher) Enrich(ctx context.Context, resumeText, jobDescription string, lang scoring.Language) (Insights, error) {
	if g == nil || g.client == nil {
		return Insights{}, ErrUnavailable
	}

	review, err := g.generate(ctx, reviewPrompt(resumeText, jobDescription, lang))
	if err != nil {
		return Insights{}, fmt.Errorf("%w: review: %v", ErrUnavailable, err)
	}

	raw, err := g.generate(ctx, extractionPrompt(review, lang))
	if err != nil {
		return Insights{}, fmt.Errorf("%w: extraction: %v", ErrUnavailable, err)
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return Insights{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return insights, nil
}

func (g *GeminiEnricher) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

func reviewPrompt(resumeText, jobDescription string, lang scoring.Language) string {
	if lang == scoring.Arabic {
		return fmt.Sprintf(`أنت مدير موارد بشرية تقني ذو خبرة. مهمتك هي:
1. مراجعة السيرة الذاتية المقدمة مقابل الوصف الوظيفي
2. تقييم مؤهلات وخبرة المرشح
3. تسليط الضوء على نقاط القوة الرئيسية والمجالات المحتملة للتحسين
4. تقديم توصيات محددة لتحسين التوافق مع الدور
يرجى تقديم تحليل مفصل ومهني باللغة العربية.

السيرة الذاتية:
%s

وصف الوظيفة:
%s`, resumeText, jobDescription)
	}
	return fmt.Sprintf(`You are an experienced Technical Human Resource Manager. Your task is to:
1. Review the provided resume against the job description
2. Evaluate the candidate's qualifications and experience
3. Highlight key strengths and potential areas for improvement
4. Provide specific recommendations for better alignment with the role
Please provide a detailed, professional analysis in English.

Resume:
%s

Job Description:
%s`, resumeText, jobDescription)
}

func extractionPrompt(review string, lang scoring.Language) string {
	if lang == scoring.Arabic {
		return fmt.Sprintf(`قم بتحليل النص التالي وإستخراج المعلومات التالية:
1. مقارنة التعليم: قائمة بالنقاط المتعلقة بتعليم المرشح
2. مقارنة الخبرة: قائمة بالنقاط المتعلقة بخبرة المرشح
3. التوصيات: قائمة بالتوصيات لتحسين السيرة الذاتية

قم بتنسيق الإجابة كـ JSON بالتنسيق التالي:
{
  "education_comparison": ["نقطة 1", "نقطة 2"],
  "experience_comparison": ["نقطة 1", "نقطة 2"],
  "recommendations": ["توصية 1", "توصية 2"]
}

النص للتحليل:
%s`, review)
	}
	return fmt.Sprintf(`Analyze the following text and extract these pieces of information:
1. Education Comparison: List of points related to the candidate's education
2. Experience Comparison: List of points related to the candidate's experience
3. Recommendations: List of recommendations for improving the resume

Format the answer as JSON in the following format:
{
  "education_comparison": ["point 1", "point 2"],
  "experience_comparison": ["point 1", "point 2"],
  "recommendations": ["recommendation 1", "recommendation 2"]
}

Text to analyze:
%s`, review)
}

var jsonObjectRE = regexp.MustCompile(`(?s)\{.*\}`)

// parseInsights pulls the first JSON object out of a model response, which
// often wraps it in prose or a code fence.
func parseInsights(raw string) (Insights, error) {
	match := jsonObjectRE.FindString(raw)
	if match == "" {
		return Insights{}, errors.New("no json object in model response")
	}

	var payload struct {
		EducationComparison  []string `json:"education_comparison"`
		ExperienceComparison []string `json:"experience_comparison"`
		Recommendations      []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return Insights{}, fmt.Errorf("decode insights: %w", err)
	}
	return Insights{
		EducationComparison:  payload.EducationComparison,
		ExperienceComparison: payload.ExperienceComparison,
		Recommendations:      payload.Recommendations,
	}, nil
}
