package symptoms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/02loveslollipop/aquahealth/services/api/models"
)

const systemPrompt = "You are a public-health assistant. You give basic, informational assessments and never a medical diagnosis."

const promptTemplate = `A person in a rural area with potential water contamination issues is experiencing the following symptoms: %s.
Based ONLY on these symptoms, provide a basic health assessment.
This is for informational purposes and not a medical diagnosis.
Focus on potential water-borne diseases like Cholera, Typhoid, and Diarrhea.
The response must be a JSON object with the keys "severity" (one of Mild, Moderate, Severe),
"possibleConditions" (a list of possible conditions, focusing on water-borne illnesses) and
"recommendations" (a list of recommended actions, such as home care tips and when to see a doctor).`

// AIChecker calls an OpenAI-compatible chat completion endpoint.
type AIChecker struct {
	client *openai.Client
	model  string
}

func NewAIChecker(apiKey, baseURL, model string) *AIChecker {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &AIChecker{client: openai.NewClientWithConfig(cfg), model: model}
}

// Prompt builds the user message for a symptom list.
func Prompt(symptoms []string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(symptoms, ", "))
}

func (a *AIChecker) Check(ctx context.Context, symptoms []string) (*models.SymptomCheckResult, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: Prompt(symptoms)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion: no choices returned")
	}
	return ParseAssessment(resp.Choices[0].Message.Content)
}

// ParseAssessment decodes the model's JSON answer. Markdown code fences are
// tolerated, unknown severities become Unknown and missing lists are empty.
func ParseAssessment(content string) (*models.SymptomCheckResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw struct {
		Severity           string   `json:"severity"`
		PossibleConditions []string `json:"possibleConditions"`
		Recommendations    []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("decode assessment: %w", err)
	}

	res := &models.SymptomCheckResult{
		Severity:           models.NormalizeSeverity(raw.Severity),
		PossibleConditions: raw.PossibleConditions,
		Recommendations:    raw.Recommendations,
	}
	if res.PossibleConditions == nil {
		res.PossibleConditions = []string{}
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	return res, nil
}
