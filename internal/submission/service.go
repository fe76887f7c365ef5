package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/grading"
	"github.com/sirupsen/logrus"
)

var (
	ErrAssignmentNotFound = assignment.ErrAssignmentNotFound
	ErrNotPublished       = assignment.ErrNotPublished
	ErrAlreadySubmitted   = errors.New("assignment already submitted")
	ErrNoQuestions        = errors.New("assignment has no questions")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

type SubmissionService interface {
	Submit(ctx context.Context, assignmentID, studentID uuid.UUID, answers []Answer) (*SubmitResult, error)
	GetResult(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error)
	Stats(ctx context.Context, assignmentID uuid.UUID) (*StatsResponse, error)
}

type submissionService struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
}

func NewService(store Store, timeout time.Duration) SubmissionService {
	return &submissionService{
		store:   store,
		timeout: timeout,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Submit grades the answers and records exactly one submission for the
// (assignment, student) pair. Nothing is written unless every check passes,
// and a failed write leaves no rows behind.
func (s *submissionService) Submit(ctx context.Context, assignmentID, studentID uuid.UUID, answers []Answer) (*SubmitResult, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"assignment_id": assignmentID,
		"student_id":    studentID,
	})

	if _, err := s.getPublishedAssignment(ctx, assignmentID); err != nil {
		if errors.Is(err, ErrAssignmentNotFound) || errors.Is(err, ErrNotPublished) {
			log.WithError(err).Warn("Submission rejected")
		} else {
			log.WithError(err).Error("Failed to load assignment")
		}
		return nil, err
	}

	existing, err := s.findSubmission(ctx, assignmentID, studentID)
	switch {
	case err == nil && existing != nil:
		log.WithField("submission_id", existing.ID).Info("Assignment already submitted")
		return nil, ErrAlreadySubmitted
	case err != nil && !errors.Is(err, ErrSubmissionNotFound):
		log.WithError(err).Error("Failed to look up existing submission")
		return nil, err
	}

	questions, err := s.getQuestions(ctx, assignmentID)
	if err != nil {
		log.WithError(err).Error("Failed to load questions")
		return nil, err
	}
	if len(questions) == 0 {
		log.Warn("Submission rejected: assignment has no questions")
		return nil, ErrNoQuestions
	}

	key := assignment.ToGrading(questions)
	selected := selections(answers)
	graded := grading.Grade(key, selected)

	if unkeyed := grading.Unkeyed(key); len(unkeyed) > 0 {
		log.WithField("unkeyed_questions", unkeyed).Warn("Grading assignment with questions that have no correct option")
	}

	sub := &Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Score:        graded.Score,
		SubmittedAt:  s.now(),
		Answers:      studentAnswers(questions, selected),
	}

	if err := s.insert(ctx, sub); err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			log.Info("Concurrent duplicate submission rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to persist submission")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"submission_id": sub.ID,
		"score":         graded.Score,
	}).Info("Submission graded")

	return &SubmitResult{
		SubmissionID: sub.ID,
		Score:        graded.Score,
		Grade:        grading.ToLetterGrade(graded.Score),
		Correct:      graded.Correct,
		Total:        graded.Total,
		SubmittedAt:  sub.SubmittedAt,
		Details:      graded.Details,
	}, nil
}

func (s *submissionService) GetResult(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	sub, err := s.findSubmission(ctx, assignmentID, studentID)
	if err != nil {
		if !errors.Is(err, ErrSubmissionNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to load submission")
		}
		return nil, err
	}
	return sub, nil
}

func (s *submissionService) Stats(ctx context.Context, assignmentID uuid.UUID) (*StatsResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.store.ScoreStats(callCtx, assignmentID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to compute score stats")
		return nil, storeErr(err)
	}
	return &StatsResponse{AssignmentID: assignmentID, ScoreStats: stats}, nil
}

func (s *submissionService) getPublishedAssignment(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	a, err := s.store.GetPublishedAssignment(callCtx, id)
	return a, storeErr(err)
}

func (s *submissionService) findSubmission(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sub, err := s.store.FindSubmission(callCtx, assignmentID, studentID)
	return sub, storeErr(err)
}

func (s *submissionService) getQuestions(ctx context.Context, assignmentID uuid.UUID) ([]assignment.Question, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	qs, err := s.store.GetQuestionsWithOptions(callCtx, assignmentID)
	return qs, storeErr(err)
}

func (s *submissionService) insert(ctx context.Context, sub *Submission) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return storeErr(s.store.InsertSubmissionAtomic(callCtx, sub))
}

// storeErr passes domain errors through and folds everything else,
// timeouts included, into ErrStoreUnavailable.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAssignmentNotFound),
		errors.Is(err, ErrNotPublished),
		errors.Is(err, ErrAlreadySubmitted),
		errors.Is(err, ErrSubmissionNotFound):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

// selections keeps the last option chosen per question and drops blanks.
func selections(answers []Answer) map[uuid.UUID]uuid.UUID {
	out := make(map[uuid.UUID]uuid.UUID, len(answers))
	for _, a := range answers {
		if a.SelectedOptionID == uuid.Nil {
			delete(out, a.QuestionID)
			continue
		}
		out[a.QuestionID] = a.SelectedOptionID
	}
	return out
}

func studentAnswers(questions []assignment.Question, selected map[uuid.UUID]uuid.UUID) []StudentAnswer {
	out := make([]StudentAnswer, 0, len(selected))
	for _, q := range questions {
		opt, ok := selected[q.ID]
		if !ok {
			continue
		}
		out = append(out, StudentAnswer{QuestionID: q.ID, SelectedOptionID: opt})
	}
	return out
}
