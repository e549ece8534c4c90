package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/pkg/genai"
)

// Normalized is the fixed shape every analysis is coerced into.
type Normalized struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	Conflicts   []string `json:"conflicts"`
	Score       float64  `json:"score"`
	Guidelines  []string `json:"guidelines"`
}

const normalizePromptFormat = `You are the response agent for responding to the analysis of previous agents.

Re-express the analysis below as JSON with EXACTLY this shape and nothing else:
{"summary": string, "suggestions": [string], "conflicts": [string], "score": number, "guidelines": [string]}

"conflicts" lists the guideline violations found, "suggestions" lists concrete improvements, "score" is the 0-100 compliance score from the analysis, and "guidelines" lists the individual guideline items that were applied.

Guidelines used:
%s

Analysis:
%s`

type Normalizer struct {
	client genai.Client
}

func NewNormalizer(client genai.Client) *Normalizer {
	return &Normalizer{client: client}
}

// Normalize issues the second model call and parses its output. A response
// that does not fit the shape, including a missing or non-numeric score, is a
// normalization error.
func (n *Normalizer) Normalize(ctx context.Context, raw, guidelines string) (*Normalized, error) {
	prompt := fmt.Sprintf(normalizePromptFormat, guidelines, raw)

	text, err := n.client.GenerateContent(ctx, []genai.Part{genai.TextPart(prompt)})
	if err != nil {
		return nil, serverutils.NewInvocationError("formatting call failed", err)
	}

	return ParseNormalized(text)
}

// ParseNormalized validates free text against the fixed response shape.
func ParseNormalized(text string) (*Normalized, error) {
	cleaned := stripCodeFences([]byte(text))

	var parsed struct {
		Summary     string   `json:"summary"`
		Suggestions []string `json:"suggestions"`
		Conflicts   []string `json:"conflicts"`
		Score       *float64 `json:"score"`
		Guidelines  []string `json:"guidelines"`
	}
	if err := json.Unmarshal(cleaned, &parsed); err != nil {
		return nil, serverutils.NewNormalizationError("model response does not fit the expected shape", err)
	}
	if parsed.Score == nil {
		return nil, serverutils.NewNormalizationError("model response is missing a numeric score", nil)
	}

	score := *parsed.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Normalized{
		Summary:     parsed.Summary,
		Suggestions: emptyIfNil(parsed.Suggestions),
		Conflicts:   emptyIfNil(parsed.Conflicts),
		Score:       score,
		Guidelines:  emptyIfNil(parsed.Guidelines),
	}, nil
}

func stripCodeFences(b []byte) []byte {
	b = bytes.TrimSpace(b)
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
