package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
)

type pairKey struct {
	assignmentID uuid.UUID
	studentID    uuid.UUID
}

// memStore mirrors the postgres store: the unique (assignment, student)
// check happens inside InsertSubmissionAtomic under one lock.
type memStore struct {
	mu          sync.Mutex
	assignments map[uuid.UUID]*assignment.Assignment
	questions   map[uuid.UUID][]assignment.Question
	submissions map[pairKey]*Submission

	insertErr error
	block     bool
	inserts   int
}

func newMemStore() *memStore {
	return &memStore{
		assignments: map[uuid.UUID]*assignment.Assignment{},
		questions:   map[uuid.UUID][]assignment.Question{},
		submissions: map[pairKey]*Submission{},
	}
}

func (m *memStore) wait(ctx context.Context) error {
	if !m.block {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *memStore) GetPublishedAssignment(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.assignments[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	if !a.IsPublished {
		return nil, ErrNotPublished
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) GetQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]assignment.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.questions[assignmentID], nil
}

func (m *memStore) FindSubmission(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.submissions[pairKey{assignmentID, studentID}]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	cp := *sub
	return &cp, nil
}

func (m *memStore) InsertSubmissionAtomic(ctx context.Context, sub *Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return m.insertErr
	}
	key := pairKey{sub.AssignmentID, sub.StudentID}
	if _, ok := m.submissions[key]; ok {
		return ErrAlreadySubmitted
	}

	sub.ID = uuid.New()
	for i := range sub.Answers {
		sub.Answers[i].ID = uuid.New()
		sub.Answers[i].SubmissionID = sub.ID
	}
	cp := *sub
	cp.Answers = append([]StudentAnswer(nil), sub.Answers...)
	m.submissions[key] = &cp
	m.inserts++
	return nil
}

func (m *memStore) ScoreStats(ctx context.Context, assignmentID uuid.UUID) (ScoreStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats ScoreStats
	sum := 0
	for key, sub := range m.submissions {
		if key.assignmentID != assignmentID {
			continue
		}
		if stats.Total == 0 || sub.Score > stats.Highest {
			stats.Highest = sub.Score
		}
		if stats.Total == 0 || sub.Score < stats.Lowest {
			stats.Lowest = sub.Score
		}
		sum += sub.Score
		stats.Total++
	}
	if stats.Total > 0 {
		stats.Average = (2*sum + stats.Total) / (2 * stats.Total)
	}
	return stats, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.submissions)
}

func (m *memStore) stored(assignmentID, studentID uuid.UUID) *Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions[pairKey{assignmentID, studentID}]
}
