package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/grading"
)

type AnswerDTO struct {
	QuestionID       string `json:"question_id" validate:"required,uuid"`
	SelectedOptionID string `json:"selected_option_id" validate:"omitempty,uuid"`
}

type SubmitDTO struct {
	Answers []AnswerDTO `json:"answers" validate:"dive"`
}

// Answer is one selected option. A zero SelectedOptionID means unanswered.
type Answer struct {
	QuestionID       uuid.UUID
	SelectedOptionID uuid.UUID
}

type SubmitResult struct {
	SubmissionID uuid.UUID           `json:"submission_id"`
	Score        int                 `json:"score"`
	Grade        grading.LetterGrade `json:"grade"`
	Correct      int                 `json:"correct"`
	Total        int                 `json:"total"`
	SubmittedAt  time.Time           `json:"submitted_at"`
	Details      []grading.Verdict   `json:"details"`
}

type SubmissionResponse struct {
	ID           uuid.UUID           `json:"id"`
	AssignmentID uuid.UUID           `json:"assignment_id"`
	Score        int                 `json:"score"`
	Grade        grading.LetterGrade `json:"grade"`
	SubmittedAt  time.Time           `json:"submitted_at"`
	Answers      []StudentAnswer     `json:"answers"`
}

type StatsResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	ScoreStats
}

func (d SubmitDTO) toAnswers() []Answer {
	out := make([]Answer, 0, len(d.Answers))
	for _, a := range d.Answers {
		ans := Answer{QuestionID: uuid.MustParse(a.QuestionID)}
		if a.SelectedOptionID != "" {
			ans.SelectedOptionID = uuid.MustParse(a.SelectedOptionID)
		}
		out = append(out, ans)
	}
	return out
}

func toResponse(s *Submission) *SubmissionResponse {
	answers := s.Answers
	if answers == nil {
		answers = []StudentAnswer{}
	}
	return &SubmissionResponse{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		Score:        s.Score,
		Grade:        grading.ToLetterGrade(s.Score),
		SubmittedAt:  s.SubmittedAt,
		Answers:      answers,
	}
}
