package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilleval/ent"
	"github.com/abhisek/skilleval/ent/answer"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/question"
	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) ReplaceActive(ctx context.Context, in NewAttempt) (*Attempt, error) {
	a, err := r.replaceActive(ctx, in)
	if ent.IsConstraintError(err) {
		// Another start for the same pair committed between our delete and
		// insert. Replace its attempt once more; last writer wins.
		a, err = r.replaceActive(ctx, in)
	}
	if err != nil {
		return nil, fmt.Errorf("replace active attempt: %w", err)
	}
	return a, nil
}

func (r *attemptRepo) replaceActive(ctx context.Context, in NewAttempt) (*Attempt, error) {
	var out *Attempt
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		stale, err := tx.Attempt.Query().
			Where(
				attempt.UserID(in.UserID),
				attempt.ConceptID(in.ConceptID),
				attempt.Completed(false),
			).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("query active attempts: %w", err)
		}
		if len(stale) > 0 {
			if _, err := tx.Answer.Delete().Where(answer.AttemptIDIn(stale...)).Exec(ctx); err != nil {
				return fmt.Errorf("delete answers: %w", err)
			}
			if _, err := tx.Question.Delete().Where(question.AttemptIDIn(stale...)).Exec(ctx); err != nil {
				return fmt.Errorf("delete questions: %w", err)
			}
			if _, err := tx.Attempt.Delete().Where(attempt.IDIn(stale...)).Exec(ctx); err != nil {
				return fmt.Errorf("delete attempts: %w", err)
			}
		}

		create := tx.Attempt.Create().
			SetUserID(in.UserID).
			SetConceptID(in.ConceptID)
		if in.TimeLimitMinutes > 0 {
			create.SetTimeLimitMinutes(in.TimeLimitMinutes)
		}
		a, err := create.Save(ctx)
		if err != nil {
			return err
		}

		builders := make([]*ent.QuestionCreate, len(in.Questions))
		for i, q := range in.Questions {
			builders[i] = tx.Question.Create().
				SetAttemptID(a.ID).
				SetPosition(q.Position).
				SetText(q.Text).
				SetOptions(q.Options).
				SetCorrectAnswer(q.CorrectAnswer).
				SetDifficulty(question.Difficulty(q.Difficulty)).
				SetConceptTag(q.ConceptTag).
				SetExplanation(q.Explanation)
		}
		questions, err := tx.Question.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return fmt.Errorf("create questions: %w", err)
		}

		out = entAttemptToAttempt(a)
		out.Questions = make([]Question, len(questions))
		for i, q := range questions {
			out.Questions[i] = entQuestionToQuestion(q)
		}
		return nil
	})
	return out, err
}

func (r *attemptRepo) Get(ctx context.Context, id uuid.UUID) (*Attempt, error) {
	a, err := r.client.Attempt.Query().
		Where(attempt.ID(id)).
		WithConcept().
		WithQuestions(func(q *ent.QuestionQuery) {
			q.Order(ent.Asc(question.FieldPosition))
		}).
		WithAnswers(func(q *ent.AnswerQuery) {
			q.Order(ent.Asc(answer.FieldID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query attempt %s: %w", id, err)
	}
	return entAttemptToAttempt(a), nil
}

func (r *attemptRepo) ActiveForUser(ctx context.Context, userID string) (*Attempt, error) {
	a, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID), attempt.Completed(false)).
		Order(ent.Desc(attempt.FieldCreatedAt)).
		WithConcept().
		WithQuestions(func(q *ent.QuestionQuery) {
			q.Order(ent.Asc(question.FieldPosition))
		}).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active attempt: %w", err)
	}
	return entAttemptToAttempt(a), nil
}

func (r *attemptRepo) ListCompleted(ctx context.Context, userID string) ([]Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID), attempt.Completed(true)).
		Order(ent.Desc(attempt.FieldCompletedAt)).
		WithConcept().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed attempts: %w", err)
	}
	return entAttemptsToAttempts(rows), nil
}

func (r *attemptRepo) Complete(ctx context.Context, id uuid.UUID, c Completion) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		// The completed=false guard makes a racing second submit update
		// nothing instead of overwriting the first.
		n, err := tx.Attempt.Update().
			Where(attempt.ID(id), attempt.Completed(false)).
			SetCompleted(true).
			SetEasyScore(c.EasyScore).
			SetMediumScore(c.MediumScore).
			SetHardScore(c.HardScore).
			SetTotalScore(c.TotalScore).
			SetPercentage(c.Percentage).
			SetBand(c.Band).
			SetWeakAreas(c.WeakAreas).
			SetCompletedAt(c.CompletedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("complete attempt: %w", err)
		}
		if n == 0 {
			exists, err := tx.Attempt.Query().Where(attempt.ID(id)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("query attempt %s: %w", id, err)
			}
			if exists {
				return ErrAlreadyCompleted
			}
			return ErrNotFound
		}

		if len(c.Answers) == 0 {
			return nil
		}
		builders := make([]*ent.AnswerCreate, len(c.Answers))
		for i, a := range c.Answers {
			builders[i] = tx.Answer.Create().
				SetAttemptID(id).
				SetQuestionID(a.QuestionID).
				SetUserAnswer(a.UserAnswer).
				SetIsCorrect(a.IsCorrect).
				SetDifficulty(answer.Difficulty(a.Difficulty)).
				SetConceptTag(a.ConceptTag).
				SetNillableTimeSpent(a.TimeSpent)
			if !c.CompletedAt.IsZero() {
				builders[i].SetCreatedAt(c.CompletedAt)
			}
		}
		if _, err := tx.Answer.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("create answers: %w", err)
		}
		return nil
	})
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func entAttemptsToAttempts(rows []*ent.Attempt) []Attempt {
	out := make([]Attempt, len(rows))
	for i, a := range rows {
		out[i] = *entAttemptToAttempt(a)
	}
	return out
}

func entAttemptToAttempt(a *ent.Attempt) *Attempt {
	out := &Attempt{
		ID:               a.ID,
		UserID:           a.UserID,
		ConceptID:        a.ConceptID,
		Completed:        a.Completed,
		EasyScore:        a.EasyScore,
		MediumScore:      a.MediumScore,
		HardScore:        a.HardScore,
		TotalScore:       a.TotalScore,
		Percentage:       a.Percentage,
		Band:             a.Band,
		WeakAreas:        a.WeakAreas,
		TimeLimitMinutes: a.TimeLimitMinutes,
		CreatedAt:        a.CreatedAt,
		CompletedAt:      a.CompletedAt,
	}
	if c := a.Edges.Concept; c != nil {
		out.ConceptKey = c.Key
	}
	if qs := a.Edges.Questions; qs != nil {
		out.Questions = make([]Question, len(qs))
		for i, q := range qs {
			out.Questions[i] = entQuestionToQuestion(q)
		}
	}
	if as := a.Edges.Answers; as != nil {
		out.Answers = make([]Answer, len(as))
		for i, an := range as {
			out.Answers[i] = entAnswerToAnswer(an)
		}
	}
	return out
}

func entQuestionToQuestion(q *ent.Question) Question {
	return Question{
		ID:            q.ID,
		Position:      q.Position,
		Text:          q.Text,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    Difficulty(q.Difficulty),
		ConceptTag:    q.ConceptTag,
		Explanation:   q.Explanation,
	}
}

func entAnswerToAnswer(a *ent.Answer) Answer {
	return Answer{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		UserAnswer: a.UserAnswer,
		IsCorrect:  a.IsCorrect,
		Difficulty: Difficulty(a.Difficulty),
		ConceptTag: a.ConceptTag,
		TimeSpent:  a.TimeSpent,
		CreatedAt:  a.CreatedAt,
	}
}
