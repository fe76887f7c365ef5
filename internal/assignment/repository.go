package assignment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotPublished       = errors.New("assignment not published")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrOptionMismatch     = errors.New("option does not belong to question")
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Assignment, error)
	ListQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error)
	SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AssignmentRepository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	var a Assignment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]Question, error) {
	var questions []Question
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Where("assignment_id = ?", assignmentID).
		Order("order_index ASC, created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	err := r.db.WithContext(ctx).
		Preload("Options").
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Clear before set: the partial unique index on is_correct is checked per row.
		if err := tx.Model(&AnswerOption{}).
			Where("question_id = ? AND id <> ? AND is_correct", questionID, optionID).
			Update("is_correct", false).Error; err != nil {
			return err
		}

		res := tx.Model(&AnswerOption{}).
			Where("question_id = ? AND id = ?", questionID, optionID).
			Update("is_correct", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOptionMismatch
		}

		res = tx.Model(&Question{}).
			Where("id = ?", questionID).
			Update("correct_option_id", optionID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return nil
	})
}

func (r *repository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	res := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("id = ?", id).
		Update("is_published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Assignment{}, &Question{}, &AnswerOption{})
}
