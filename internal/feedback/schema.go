package feedback

// modelSchema is the JSON Schema a feedback model file must satisfy.
var modelSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"checkpoints": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"description": map[string]any{
						"type":        "string",
						"description": "What the learner should understand",
					},
					"criteria": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Short phrases describing when the checkpoint is understood",
					},
					"verification": map[string]any{
						"type":        "string",
						"description": "How understanding is verified, e.g. teach back",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The learner's free-text answer",
					},
				},
				"required":             []any{"description", "criteria", "verification"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"checkpoints"},
	"additionalProperties": false,
}
