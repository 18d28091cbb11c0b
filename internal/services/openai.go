package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"duesseldorf-family-adventures/internal/models"
)

// PlanGenerator produces structured activity plans via the OpenAI chat
// completion API. It satisfies the plan.Generator contract; callers fall
// back to the template builder when it errors out.
type PlanGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	retryConfig RetryConfig
}

// NewPlanGenerator creates a generator from the environment.
func NewPlanGenerator() (*PlanGenerator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &PlanGenerator{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: 0.4,
		maxTokens:   2000,
		retryConfig: DefaultRetryConfig(),
	}, nil
}

// generatedPlan is the strict JSON document the model must return.
type generatedPlan struct {
	Title              string   `json:"title"`
	Summary            string   `json:"summary"`
	Steps              []string `json:"steps"`
	SafetyNotes        []string `json:"safety_notes"`
	ParentChildPrompts []struct {
		Say string `json:"say"`
		Do  string `json:"do"`
	} `json:"parent_child_prompts"`
	Variants []string `json:"variants"`
	Supports []string `json:"supports"`
}

// GeneratePlan asks the model for a structured plan and converts it to
// the internal representation. Transient upstream failures are retried
// with exponential backoff before the error is surfaced.
func (g *PlanGenerator) GeneratePlan(ctx context.Context, adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary, request *models.ActivityRequest) (*models.ActivityPlan, error) {
	systemPrompt := g.buildSystemPrompt()
	userPrompt, err := g.buildUserPrompt(adventure, criteria, weather, request)
	if err != nil {
		return nil, err
	}

	var resp openai.ChatCompletionResponse
	err = withRetries(ctx, g.retryConfig, "OPENAI", isTransientError, func() error {
		var callErr error
		resp, callErr = g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       g.model,
			Temperature: g.temperature,
			MaxTokens:   g.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from OpenAI")
	}

	cleaned := cleanJSONResponse(resp.Choices[0].Message.Content)

	var doc generatedPlan
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		log.Printf("[OPENAI] Failed to parse plan JSON: %v", err)
		return nil, fmt.Errorf("failed to parse generated plan: %w", err)
	}

	return g.toActivityPlan(&doc), nil
}

func (g *PlanGenerator) toActivityPlan(doc *generatedPlan) *models.ActivityPlan {
	prompts := make([]models.ParentChildPrompt, 0, len(doc.ParentChildPrompts))
	for _, p := range doc.ParentChildPrompts {
		prompts = append(prompts, models.ParentChildPrompt{Say: p.Say, Do: p.Do})
	}

	var supports []models.DevelopmentDomain
	for _, s := range doc.Supports {
		domain := models.DevelopmentDomain(s)
		if models.ValidDevelopmentDomain(domain) {
			supports = append(supports, domain)
		}
	}

	return &models.ActivityPlan{
		Title:       doc.Title,
		Summary:     doc.Summary,
		Steps:       doc.Steps,
		SafetyNotes: doc.SafetyNotes,
		Prompts:     prompts,
		Variants:    doc.Variants,
		Supports:    supports,
	}
}

func (g *PlanGenerator) buildSystemPrompt() string {
	return `Du bist ein zuverlässiger, vorsichtiger Planer für Eltern-Kind-Aktivitäten mit Kleinkindern in Düsseldorf (Fokus: Volksgarten/Südpark).

Regeln:
- Keine erfundenen Fakten, keine gefährlichen Aktivitäten.
- Kein offenes Feuer, keine Klingen, keine verschluckbaren Kleinteile für Kinder unter drei Jahren.
- Schreibe kindgerecht, konkret und knapp, auf Deutsch.
- Antworte AUSSCHLIESSLICH mit einem JSON-Objekt in exakt diesem Schema:
{
  "title": "string",
  "summary": "string",
  "steps": ["string"],
  "safety_notes": ["string"],
  "parent_child_prompts": [{"say": "string", "do": "string"}],
  "variants": ["string"],
  "supports": ["string"]
}
- "supports" nennt geförderte Entwicklungsbereiche aus: Grobmotorik, Feinmotorik, Sprache, Sozial-emotional, Sensorik, Kognitiv.
- Kein Markdown, keine Code-Blöcke, kein Text außerhalb des JSON.`
}

func (g *PlanGenerator) buildUserPrompt(adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary, request *models.ActivityRequest) (string, error) {
	adventureJSON, err := json.Marshal(adventure)
	if err != nil {
		return "", fmt.Errorf("failed to encode adventure: %w", err)
	}
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	weatherBlock := "Wetterlage / Weather: unknown"
	if weather != nil {
		weatherJSON, err := json.Marshal(weather)
		if err != nil {
			return "", fmt.Errorf("failed to encode weather: %w", err)
		}
		weatherBlock = "Wetterlage / Weather:\n" + string(weatherJSON)
	}

	var b strings.Builder
	b.WriteString("Erstelle einen konkreten Aktivitätsplan für dieses Mikroabenteuer.\n\n")
	b.WriteString("Abenteuer:\n")
	b.Write(adventureJSON)
	b.WriteString("\n\nAnfrage (Alter, Dauer, Materialien, Ziele):\n")
	b.Write(requestJSON)
	b.WriteString("\n\n")
	b.WriteString(weatherBlock)
	b.WriteString("\n\nRegeln:\n")
	fmt.Fprintf(&b, "- Zeitbudget: maximal %d Minuten.\n", request.DurationMinutes)
	fmt.Fprintf(&b, "- Budget: maximal %.0f EUR.\n", criteria.BudgetEurMax)
	if len(request.Materials) > 0 {
		fmt.Fprintf(&b, "- Verwende nur diese Materialien: %s.\n", strings.Join(request.Materials, ", "))
	}
	if len(request.Constraints) > 0 {
		fmt.Fprintf(&b, "- Beachte diese Einschränkungen: %s.\n", strings.Join(request.Constraints, ", "))
	}
	b.WriteString("- 3 bis 6 parent_child_prompts, jeweils mit konkretem Satz (say) und konkreter Handlung (do).\n")
	b.WriteString("- Varianten für: weniger Energie, mehr Energie, Indoor-Wechsel, ohne Material.\n")
	return b.String(), nil
}

// cleanJSONResponse strips markdown code fences some models wrap around
// JSON output.
func cleanJSONResponse(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
