package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/grading"
	"github.com/sirupsen/logrus"
)

type AssignmentService interface {
	GetForStudent(ctx context.Context, id uuid.UUID) (*AssignmentView, error)
	SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) (*ReadinessReport, error)
}

type assignmentService struct {
	repo    AssignmentRepository
	timeout time.Duration
}

func NewService(repo AssignmentRepository, timeout time.Duration) AssignmentService {
	return &assignmentService{repo: repo, timeout: timeout}
}

func (s *assignmentService) GetForStudent(ctx context.Context, id uuid.UUID) (*AssignmentView, error) {
	log := config.WithContext(ctx).WithField("assignment_id", id)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished {
		log.Warn("Student requested an unpublished assignment")
		return nil, ErrNotPublished
	}

	questions, err := s.repo.ListQuestionsWithOptions(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	return toView(a, questions), nil
}

func (s *assignmentService) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"question_id": questionID,
		"option_id":   optionID,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	if !q.HasOption(optionID) {
		log.Warn("Option does not belong to question")
		return ErrOptionMismatch
	}

	if err := s.repo.SetCorrectOption(ctx, questionID, optionID); err != nil {
		log.WithError(err).Error("Failed to set correct option")
		return err
	}

	log.Info("Correct option updated")
	return nil
}

// Publish makes the assignment visible to students. Questions without an
// answer key are reported, not rejected: they grade as incorrect.
func (s *assignmentService) Publish(ctx context.Context, id uuid.UUID) (*ReadinessReport, error) {
	log := config.WithContext(ctx).WithField("assignment_id", id)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	questions, err := s.repo.ListQuestionsWithOptions(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	if err := s.repo.SetPublished(ctx, id, true); err != nil {
		return nil, err
	}

	unkeyed := grading.Unkeyed(ToGrading(questions))
	if unkeyed == nil {
		unkeyed = []uuid.UUID{}
	}
	if len(unkeyed) > 0 || len(questions) == 0 {
		log.WithFields(logrus.Fields{
			"question_count": len(questions),
			"unkeyed_count":  len(unkeyed),
		}).Warn("Published assignment is not fully keyed")
	} else {
		log.Info("Assignment published")
	}

	return &ReadinessReport{
		AssignmentID:     id,
		IsPublished:      true,
		QuestionCount:    len(questions),
		UnkeyedQuestions: unkeyed,
	}, nil
}
