package recommend

import "github.com/abhisek/skilleval/internal/llm"

// ResourcesSchema defines the personalized resource payload.
var ResourcesSchema = &llm.Schema{
	Name:        "personalized-resources",
	Description: "Prioritized learning resources, a three-horizon study plan and practice areas",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resources": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":          map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string", "description": "Why this resource helps"},
						"type":           map[string]any{"type": "string", "description": "article, video, course, documentation, practice or book"},
						"url":            map[string]any{"type": "string"},
						"priority":       map[string]any{"type": "string", "enum": []any{"high", "medium", "low"}},
						"estimatedTime":  map[string]any{"type": "string"},
						"difficulty":     map[string]any{"type": "string"},
						"targetWeakness": map[string]any{"type": "string"},
					},
					"required": []any{"title", "description", "type", "priority"},
				},
			},
			"studyPlan": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"immediate": map[string]any{"type": "string"},
					"shortTerm": map[string]any{"type": "string"},
					"longTerm":  map[string]any{"type": "string"},
				},
				"required": []any{"immediate", "shortTerm", "longTerm"},
			},
			"practiceAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"resources", "studyPlan"},
	},
}

// StudySchema defines the study recommendation payload.
var StudySchema = &llm.Schema{
	Name:        "study-recommendations",
	Description: "Priority areas, a study strategy, practice types and a weakness breakdown",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"priorityAreas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"area":    map[string]any{"type": "string"},
						"urgency": map[string]any{"type": "string", "enum": []any{"high", "medium", "low"}},
						"reason":  map[string]any{"type": "string"},
					},
					"required": []any{"area", "urgency"},
				},
			},
			"studyStrategy": map[string]any{"type": "string"},
			"practiceRecommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required": []any{"type", "description"},
				},
			},
			"weaknessBreakdown": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"conceptual":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"practical":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"foundational": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"required": []any{"priorityAreas", "studyStrategy"},
	},
}
