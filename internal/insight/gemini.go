package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// DefaultModel is the hosted model used for both operations.
const DefaultModel = "gemini-2.5-flash"

// Gemini is the Gateway implementation backed by the Gemini API.
type Gemini struct {
	client     *genai.Client
	model      string
	sampleSize int
	logger     *log.Logger
}

// NewGemini builds the Gemini-backed gateway. An empty model or sample size
// selects the defaults.
func NewGemini(ctx context.Context, apiKey, model string, sampleSize int, logger *log.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	if sampleSize <= 0 {
		sampleSize = SampleSize
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentInsight)
	}
	return &Gemini{client: client, model: model, sampleSize: sampleSize, logger: logger}, nil
}

// insightSchema constrains the analysis response to the documented shape.
var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "A 2-3 sentence summary of financial health",
		},
		"tips": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3 actionable saving tips",
		},
	},
	Required: []string{"summary", "tips"},
}

// Analyze implements Gateway. Transport failures surface as wrapped errors;
// schema-level failures degrade to the fallback summary.
func (g *Gemini) Analyze(ctx context.Context, ts []core.Transaction) (Insight, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(analyzePrompt(ts, g.sampleSize)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightSchema,
		})
	if err != nil {
		g.logger.ErrorContext(ctx, "analysis request failed", log.FieldError, err)
		return Insight{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := parseInsight(resp.Text())
	g.logger.InfoContext(ctx, "analysis completed",
		log.FieldSampleSize, min(len(ts), g.sampleSize),
		log.FieldTipCount, len(out.Tips))
	return out, nil
}

// SuggestCategory implements Gateway. Any failure degrades to the default
// category; the error return stays nil by contract.
func (g *Gemini) SuggestCategory(ctx context.Context, title string, amount core.Money) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(suggestPrompt(title, amount)), nil)
	if err != nil {
		g.logger.WarnContext(ctx, "category suggestion failed, using default",
			log.FieldError, err)
		return core.DefaultCategory, nil
	}
	return parseCategory(resp.Text()), nil
}
