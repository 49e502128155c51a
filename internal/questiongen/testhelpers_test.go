package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/skilleval/internal/llm"
)

// batchJSON builds a valid reply of n questions for tier.
func batchJSON(tier string, n int) json.RawMessage {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"question":      fmt.Sprintf("%s question %d?", tier, i),
			"options":       []string{"alpha", "beta", "gamma", "delta"},
			"correctAnswer": "beta",
			"conceptTag":    "golang",
			"explanation":   "beta is right.",
		}
	}
	data, _ := json.Marshal(items)
	return data
}

// tierOf extracts the requested tier from a batch prompt.
func tierOf(req llm.Request) string {
	for _, tier := range []string{"EASY", "MEDIUM", "HARD"} {
		if strings.Contains(req.Messages[0].Content, "Difficulty: "+tier) {
			return tier
		}
	}
	return ""
}

// tierResponder answers every tier with a valid batch unless override
// returns a reply for it.
func tierResponder(override func(tier string) (llm.MockResponse, bool)) llm.MockResponder {
	return func(req llm.Request) llm.MockResponse {
		tier := tierOf(req)
		if override != nil {
			if resp, ok := override(tier); ok {
				return resp
			}
		}
		return llm.MockResponse{Content: batchJSON(tier, 10)}
	}
}
