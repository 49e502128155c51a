package llm

import "context"

type purposeKey struct{}

// Purpose labels used by evaluator callers. They show up in the request
// event log and in traces.
const (
	PurposeQuestionBatch = "question-batch"
	PurposeResources     = "resources"
	PurposeStudyPlan     = "study-plan"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
