package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
)

// Submission is written once per (assignment, student) and never updated.
type Submission struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_assignment_student,priority:1" json:"assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_assignment_student,priority:2;index" json:"student_id"`
	Score        int       `gorm:"not null;check:chk_submissions_score,score >= 0 AND score <= 100" json:"score"`
	SubmittedAt  time.Time `gorm:"type:timestamptz;not null" json:"submitted_at"`

	Assignment *assignment.Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	Answers    []StudentAnswer        `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

type StudentAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubmissionID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_answers_submission_question,priority:1" json:"submission_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_answers_submission_question,priority:2" json:"question_id"`
	SelectedOptionID uuid.UUID `gorm:"type:uuid;not null" json:"selected_option_id"`
}

type ScoreStats struct {
	Total   int `json:"total"`
	Average int `json:"average"`
	Highest int `json:"highest"`
	Lowest  int `json:"lowest"`
}
