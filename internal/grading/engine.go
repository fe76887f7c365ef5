// Package grading scores a set of selected answers against an answer key.
// It performs no I/O and is deterministic for a given input.
package grading

import "github.com/google/uuid"

type Option struct {
	ID        uuid.UUID
	IsCorrect bool
}

type Question struct {
	ID              uuid.UUID
	CorrectOptionID *uuid.UUID
	Options         []Option
}

type Verdict struct {
	QuestionID       uuid.UUID  `json:"question_id"`
	SelectedOptionID *uuid.UUID `json:"selected_option_id"`
	CorrectOptionID  *uuid.UUID `json:"correct_option_id"`
	IsCorrect        bool       `json:"is_correct"`
}

type Result struct {
	Score   int       `json:"score"`
	Correct int       `json:"correct"`
	Total   int       `json:"total"`
	Details []Verdict `json:"details"`
}

// Grade produces one verdict per question, in the order given, and the
// rounded percentage score. Answers keyed by a question id that is not in
// questions are ignored.
func Grade(questions []Question, answers map[uuid.UUID]uuid.UUID) Result {
	res := Result{
		Total:   len(questions),
		Details: make([]Verdict, 0, len(questions)),
	}

	for _, q := range questions {
		v := Verdict{
			QuestionID:      q.ID,
			CorrectOptionID: CorrectOption(q),
		}

		if selected, ok := answers[q.ID]; ok {
			sel := selected
			v.SelectedOptionID = &sel
		}

		v.IsCorrect = v.SelectedOptionID != nil &&
			v.CorrectOptionID != nil &&
			*v.SelectedOptionID == *v.CorrectOptionID

		if v.IsCorrect {
			res.Correct++
		}
		res.Details = append(res.Details, v)
	}

	res.Score = Score(res.Correct, res.Total)
	return res
}

// Score is round-half-up(100 * correct / total), 0 when total is 0.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// CorrectOption resolves a question's answer key. The designated
// CorrectOptionID wins when it names one of the question's options;
// otherwise the first option flagged correct is used.
func CorrectOption(q Question) *uuid.UUID {
	if q.CorrectOptionID != nil {
		for _, o := range q.Options {
			if o.ID == *q.CorrectOptionID {
				id := o.ID
				return &id
			}
		}
	}
	for _, o := range q.Options {
		if o.IsCorrect {
			id := o.ID
			return &id
		}
	}
	return nil
}

// Unkeyed returns the ids of questions without a resolvable answer key.
// Such questions are always graded incorrect.
func Unkeyed(questions []Question) []uuid.UUID {
	var out []uuid.UUID
	for _, q := range questions {
		if CorrectOption(q) == nil {
			out = append(out, q.ID)
		}
	}
	return out
}
