package assignment

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/grading"
	util "github.com/saulo-duarte/grader-lambda/internal/utils"
)

type Assignment struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string             `gorm:"type:text;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	IsPublished bool               `gorm:"not null;default:false" json:"is_published"`
	Deadline    util.LocalDateTime `gorm:"type:timestamptz" json:"deadline"`
	CourseID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"course_id"`
	ClassID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"class_id"`
	SemesterID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"semester_id"`
	CategoryID  *uuid.UUID         `gorm:"type:uuid" json:"category_id,omitempty"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
}

type Question struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"assignment_id"`
	QuestionText    string     `gorm:"type:text;not null" json:"question_text"`
	CorrectOptionID *uuid.UUID `gorm:"type:uuid" json:"correct_option_id,omitempty"`
	OrderIndex      int        `gorm:"not null;default:0" json:"order_index"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Options []AnswerOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

type AnswerOption struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_answer_options_one_correct,where:is_correct = true" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
}

func (q Question) HasOption(optionID uuid.UUID) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

func (q Question) ToGrading() grading.Question {
	gq := grading.Question{
		ID:              q.ID,
		CorrectOptionID: q.CorrectOptionID,
		Options:         make([]grading.Option, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		gq.Options = append(gq.Options, grading.Option{ID: o.ID, IsCorrect: o.IsCorrect})
	}
	return gq
}

func ToGrading(questions []Question) []grading.Question {
	out := make([]grading.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ToGrading())
	}
	return out
}
