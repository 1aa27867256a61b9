package pathgen

import "github.com/learnloop/learnloop/internal/llm"

// ModulesSchema validates the extracted module-template payload.
var ModulesSchema = &llm.PayloadSchema{
	Name: "learning-modules",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type":        "string",
					"description": "Main topic name in kebab-case, e.g. deployment-basics",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why this module comes at this position",
				},
				"order": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"description": "Sequential position starting from 1",
				},
			},
			"required":             []any{"topic", "explanation", "order"},
			"additionalProperties": false,
		},
	},
}
