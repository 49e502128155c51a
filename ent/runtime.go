// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skilleval/ent/answer"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/concept"
	"github.com/abhisek/skilleval/ent/llmrequestevent"
	"github.com/abhisek/skilleval/ent/question"
	"github.com/abhisek/skilleval/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[7].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptMixinFields0[0].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescUpdatedAt is the schema descriptor for updated_at field.
	attemptDescUpdatedAt := attemptMixinFields0[1].Descriptor()
	// attempt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attempt.DefaultUpdatedAt = attemptDescUpdatedAt.Default.(func() time.Time)
	// attempt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attempt.UpdateDefaultUpdatedAt = attemptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescCompleted is the schema descriptor for completed field.
	attemptDescCompleted := attemptFields[3].Descriptor()
	// attempt.DefaultCompleted holds the default value on creation for the completed field.
	attempt.DefaultCompleted = attemptDescCompleted.Default.(bool)
	// attemptDescEasyScore is the schema descriptor for easy_score field.
	attemptDescEasyScore := attemptFields[4].Descriptor()
	// attempt.DefaultEasyScore holds the default value on creation for the easy_score field.
	attempt.DefaultEasyScore = attemptDescEasyScore.Default.(int)
	// attempt.EasyScoreValidator is a validator for the "easy_score" field. It is called by the builders before save.
	attempt.EasyScoreValidator = func() func(int) error {
		validators := attemptDescEasyScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(easy_score int) error {
			for _, fn := range fns {
				if err := fn(easy_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescMediumScore is the schema descriptor for medium_score field.
	attemptDescMediumScore := attemptFields[5].Descriptor()
	// attempt.DefaultMediumScore holds the default value on creation for the medium_score field.
	attempt.DefaultMediumScore = attemptDescMediumScore.Default.(int)
	// attempt.MediumScoreValidator is a validator for the "medium_score" field. It is called by the builders before save.
	attempt.MediumScoreValidator = func() func(int) error {
		validators := attemptDescMediumScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(medium_score int) error {
			for _, fn := range fns {
				if err := fn(medium_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescHardScore is the schema descriptor for hard_score field.
	attemptDescHardScore := attemptFields[6].Descriptor()
	// attempt.DefaultHardScore holds the default value on creation for the hard_score field.
	attempt.DefaultHardScore = attemptDescHardScore.Default.(int)
	// attempt.HardScoreValidator is a validator for the "hard_score" field. It is called by the builders before save.
	attempt.HardScoreValidator = func() func(int) error {
		validators := attemptDescHardScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(hard_score int) error {
			for _, fn := range fns {
				if err := fn(hard_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescTotalScore is the schema descriptor for total_score field.
	attemptDescTotalScore := attemptFields[7].Descriptor()
	// attempt.DefaultTotalScore holds the default value on creation for the total_score field.
	attempt.DefaultTotalScore = attemptDescTotalScore.Default.(int)
	// attempt.TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	attempt.TotalScoreValidator = func() func(int) error {
		validators := attemptDescTotalScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(total_score int) error {
			for _, fn := range fns {
				if err := fn(total_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescPercentage is the schema descriptor for percentage field.
	attemptDescPercentage := attemptFields[8].Descriptor()
	// attempt.DefaultPercentage holds the default value on creation for the percentage field.
	attempt.DefaultPercentage = attemptDescPercentage.Default.(int)
	// attempt.PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	attempt.PercentageValidator = func() func(int) error {
		validators := attemptDescPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(percentage int) error {
			for _, fn := range fns {
				if err := fn(percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescBand is the schema descriptor for band field.
	attemptDescBand := attemptFields[9].Descriptor()
	// attempt.DefaultBand holds the default value on creation for the band field.
	attempt.DefaultBand = attemptDescBand.Default.(string)
	// attemptDescTimeLimitMinutes is the schema descriptor for time_limit_minutes field.
	attemptDescTimeLimitMinutes := attemptFields[11].Descriptor()
	// attempt.DefaultTimeLimitMinutes holds the default value on creation for the time_limit_minutes field.
	attempt.DefaultTimeLimitMinutes = attemptDescTimeLimitMinutes.Default.(int)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() uuid.UUID)
	conceptMixin := schema.Concept{}.Mixin()
	conceptMixinFields0 := conceptMixin[0].Fields()
	_ = conceptMixinFields0
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescCreatedAt is the schema descriptor for created_at field.
	conceptDescCreatedAt := conceptMixinFields0[0].Descriptor()
	// concept.DefaultCreatedAt holds the default value on creation for the created_at field.
	concept.DefaultCreatedAt = conceptDescCreatedAt.Default.(func() time.Time)
	// conceptDescUpdatedAt is the schema descriptor for updated_at field.
	conceptDescUpdatedAt := conceptMixinFields0[1].Descriptor()
	// concept.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	concept.DefaultUpdatedAt = conceptDescUpdatedAt.Default.(func() time.Time)
	// concept.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	concept.UpdateDefaultUpdatedAt = conceptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conceptDescKey is the schema descriptor for key field.
	conceptDescKey := conceptFields[0].Descriptor()
	// concept.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	concept.KeyValidator = conceptDescKey.Validators[0].(func(string) error)
	// conceptDescDescription is the schema descriptor for description field.
	conceptDescDescription := conceptFields[1].Descriptor()
	// concept.DefaultDescription holds the default value on creation for the description field.
	concept.DefaultDescription = conceptDescDescription.Default.(string)
	// conceptDescActive is the schema descriptor for active field.
	conceptDescActive := conceptFields[2].Descriptor()
	// concept.DefaultActive holds the default value on creation for the active field.
	concept.DefaultActive = conceptDescActive.Default.(bool)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[1].Descriptor()
	// question.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	question.PositionValidator = questionDescPosition.Validators[0].(func(int) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[4].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescConceptTag is the schema descriptor for concept_tag field.
	questionDescConceptTag := questionFields[6].Descriptor()
	// question.ConceptTagValidator is a validator for the "concept_tag" field. It is called by the builders before save.
	question.ConceptTagValidator = questionDescConceptTag.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[7].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
}
