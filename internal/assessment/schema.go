package assessment

import "github.com/learnloop/learnloop/internal/llm"

// QuestionsSchema validates the extracted question battery payload.
var QuestionsSchema = &llm.PayloadSchema{
	Name: "assessment-questions",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Short question id like q1",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "Open-ended question shown to the learner",
				},
				"topicArea": map[string]any{
					"type":        "string",
					"description": "Prerequisite topic this question probes",
				},
			},
			"required":             []any{"id", "question", "topicArea"},
			"additionalProperties": false,
		},
	},
}

// EvaluationSchema validates the extracted answer-scoring payload.
var EvaluationSchema = &llm.PayloadSchema{
	Name: "answer-evaluation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type": "string",
				"enum": []any{"none", "basic", "intermediate", "advanced"},
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"required":             []any{"level", "confidence"},
		"additionalProperties": false,
	},
}
