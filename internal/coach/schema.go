package coach

import "inkmentor/internal/llm"

// ValidationSchema is the JSON schema for soundness reviews. The review
// path requests schema validation so a malformed judgement surfaces as an
// invalid-response error, which the service converts to the fail-open
// result. Question and perspective generation deliberately pass no
// schema: their parsers fill in missing fields element by element, so
// they must see the raw output.
var ValidationSchema = &llm.Schema{
	Name:        "response-validation",
	Description: "Educational soundness judgement of a mentoring response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_educationally_sound": map[string]any{
				"type":        "boolean",
				"description": "Whether the response teaches rather than tells",
			},
			"contains_answers": map[string]any{
				"type":        "boolean",
				"description": "Whether the response hands the student content they could submit",
			},
			"provides_questions": map[string]any{
				"type":        "boolean",
				"description": "Whether the response asks questions of the student",
			},
			"aligns_with_learning_objectives": map[string]any{
				"type":        "boolean",
				"description": "Whether the response serves the stated objectives",
			},
			"appropriate_complexity": map[string]any{
				"type":        "boolean",
				"description": "Whether the difficulty fits the student's level",
			},
			"issues": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Problems found, empty when sound",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "How the response could be improved",
			},
		},
		"required": []any{
			"is_educationally_sound", "contains_answers", "provides_questions",
			"aligns_with_learning_objectives", "appropriate_complexity",
			"issues", "suggestions",
		},
		"additionalProperties": false,
	},
}
