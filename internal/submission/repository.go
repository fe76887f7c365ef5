package submission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	uniqueViolation     = "23505"
	submissionPairIndex = "idx_submissions_assignment_student"
)

// Store is the data access the submission flow depends on.
type Store interface {
	// GetPublishedAssignment fails with ErrAssignmentNotFound or ErrNotPublished.
	GetPublishedAssignment(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
	GetQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]assignment.Question, error)
	// FindSubmission fails with ErrSubmissionNotFound.
	FindSubmission(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error)
	// InsertSubmissionAtomic writes the submission and its answers in one
	// transaction. A second row for the same pair fails with ErrAlreadySubmitted.
	InsertSubmissionAtomic(ctx context.Context, sub *Submission) error
	ScoreStats(ctx context.Context, assignmentID uuid.UUID) (ScoreStats, error)
}

type store struct {
	db          *gorm.DB
	assignments assignment.AssignmentRepository
}

func NewStore(db *gorm.DB, assignments assignment.AssignmentRepository) Store {
	return &store{db: db, assignments: assignments}
}

func (s *store) GetPublishedAssignment(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished {
		return nil, ErrNotPublished
	}
	return a, nil
}

func (s *store) GetQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]assignment.Question, error) {
	return s.assignments.ListQuestionsWithOptions(ctx, assignmentID)
}

func (s *store) FindSubmission(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	var sub Submission
	err := s.db.WithContext(ctx).
		Preload("Answers").
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *store) InsertSubmissionAtomic(ctx context.Context, sub *Submission) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(sub).Error; err != nil {
			return err
		}

		if len(sub.Answers) == 0 {
			return nil
		}
		for i := range sub.Answers {
			sub.Answers[i].SubmissionID = sub.ID
		}
		return tx.Create(&sub.Answers).Error
	})
	if isDuplicateSubmission(err) {
		return ErrAlreadySubmitted
	}
	return err
}

func (s *store) ScoreStats(ctx context.Context, assignmentID uuid.UUID) (ScoreStats, error) {
	var stats ScoreStats
	err := s.db.WithContext(ctx).
		Model(&Submission{}).
		Select(`COUNT(*) AS total,
			COALESCE(ROUND(AVG(score)), 0)::int AS average,
			COALESCE(MAX(score), 0) AS highest,
			COALESCE(MIN(score), 0) AS lowest`).
		Where("assignment_id = ?", assignmentID).
		Scan(&stats).Error
	return stats, err
}

// isDuplicateSubmission matches only the (assignment, student) index so a
// violation elsewhere is not mistaken for a retry.
func isDuplicateSubmission(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == submissionPairIndex
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Submission{}, &StudentAnswer{})
}
