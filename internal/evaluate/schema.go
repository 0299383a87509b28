package evaluate

import "github.com/abhisek/promptquest/internal/llm"

// EvaluationSchema defines the JSON shape a grading reply must carry to
// count as parsed. Replies that fail it get the degraded fallback result
// instead of an error.
var EvaluationSchema = &llm.Schema{
	Name:        "prompt-evaluation",
	Description: "Scored critique of a submitted prompt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Total score out of 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Specific feedback on the submitted prompt",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the prompt did well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete ways to improve the prompt",
			},
		},
		"required": []any{"score", "feedback"},
	},
}
