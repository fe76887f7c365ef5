package assignment

import (
	"github.com/google/uuid"
	util "github.com/saulo-duarte/grader-lambda/internal/utils"
)

type SetCorrectOptionDTO struct {
	OptionID string `json:"option_id" validate:"required,uuid"`
}

type OptionView struct {
	ID         uuid.UUID `json:"id"`
	OptionText string    `json:"option_text"`
}

type QuestionView struct {
	ID           uuid.UUID    `json:"id"`
	QuestionText string       `json:"question_text"`
	Options      []OptionView `json:"options"`
}

// AssignmentView is what a student sees before submitting: no answer keys.
type AssignmentView struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Deadline    util.LocalDateTime `json:"deadline"`
	Questions   []QuestionView     `json:"questions"`
}

type ReadinessReport struct {
	AssignmentID     uuid.UUID   `json:"assignment_id"`
	IsPublished      bool        `json:"is_published"`
	QuestionCount    int         `json:"question_count"`
	UnkeyedQuestions []uuid.UUID `json:"unkeyed_questions"`
}

func toView(a *Assignment, questions []Question) *AssignmentView {
	view := &AssignmentView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Deadline:    a.Deadline,
		Questions:   make([]QuestionView, 0, len(questions)),
	}
	for _, q := range questions {
		qv := QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      make([]OptionView, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, OptionView{ID: o.ID, OptionText: o.OptionText})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}
