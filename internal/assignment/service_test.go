package assignment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	assignments map[uuid.UUID]*Assignment
	questions   map[uuid.UUID][]Question
	setCalls    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		assignments: map[uuid.UUID]*Assignment{},
		questions:   map[uuid.UUID][]Question{},
	}
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListQuestionsWithOptions(ctx context.Context, assignmentID uuid.UUID) ([]Question, error) {
	return f.questions[assignmentID], nil
}

func (f *fakeRepo) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	for _, qs := range f.questions {
		for i := range qs {
			if qs[i].ID == id {
				return &qs[i], nil
			}
		}
	}
	return nil, ErrQuestionNotFound
}

func (f *fakeRepo) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	f.setCalls++
	q, err := f.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	for i := range q.Options {
		q.Options[i].IsCorrect = q.Options[i].ID == optionID
	}
	q.CorrectOptionID = &optionID
	return nil
}

func (f *fakeRepo) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	a, ok := f.assignments[id]
	if !ok {
		return ErrAssignmentNotFound
	}
	a.IsPublished = published
	return nil
}

func seed(repo *fakeRepo, published bool) (uuid.UUID, Question, Question) {
	id := uuid.New()
	repo.assignments[id] = &Assignment{ID: id, Title: "Quiz 1", IsPublished: published}

	keyedOpt := uuid.New()
	keyedQ := Question{
		ID: uuid.New(), AssignmentID: id, QuestionText: "keyed", CorrectOptionID: &keyedOpt,
		Options: []AnswerOption{{ID: keyedOpt, OptionText: "yes", IsCorrect: true}, {ID: uuid.New(), OptionText: "no"}},
	}
	bareQ := Question{
		ID: uuid.New(), AssignmentID: id, QuestionText: "bare",
		Options: []AnswerOption{{ID: uuid.New(), OptionText: "a"}, {ID: uuid.New(), OptionText: "b"}},
	}
	repo.questions[id] = []Question{keyedQ, bareQ}
	return id, keyedQ, bareQ
}

func TestPublish_ReportsUnkeyedQuestions(t *testing.T) {
	repo := newFakeRepo()
	id, _, bare := seed(repo, false)
	svc := NewService(repo, time.Second)

	report, err := svc.Publish(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, report.IsPublished)
	assert.True(t, repo.assignments[id].IsPublished)
	assert.Equal(t, 2, report.QuestionCount)
	assert.Equal(t, []uuid.UUID{bare.ID}, report.UnkeyedQuestions)
}

func TestPublish_UnknownAssignment(t *testing.T) {
	svc := NewService(newFakeRepo(), time.Second)

	_, err := svc.Publish(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestSetCorrectOption(t *testing.T) {
	repo := newFakeRepo()
	_, _, bare := seed(repo, true)
	svc := NewService(repo, time.Second)

	t.Run("OptionFromAnotherQuestion", func(t *testing.T) {
		err := svc.SetCorrectOption(context.Background(), bare.ID, uuid.New())

		assert.ErrorIs(t, err, ErrOptionMismatch)
		assert.Zero(t, repo.setCalls)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		err := svc.SetCorrectOption(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("MarksExactlyOne", func(t *testing.T) {
		target := bare.Options[1].ID
		require.NoError(t, svc.SetCorrectOption(context.Background(), bare.ID, target))

		q, err := repo.GetQuestion(context.Background(), bare.ID)
		require.NoError(t, err)
		assert.Equal(t, &target, q.CorrectOptionID)
		assert.False(t, q.Options[0].IsCorrect)
		assert.True(t, q.Options[1].IsCorrect)
	})
}

func TestGetForStudent_HidesAnswerKey(t *testing.T) {
	repo := newFakeRepo()
	id, keyed, _ := seed(repo, true)
	svc := NewService(repo, time.Second)

	view, err := svc.GetForStudent(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, view.Questions, 2)
	assert.Equal(t, keyed.ID, view.Questions[0].ID)
	assert.Len(t, view.Questions[0].Options, 2)

	hidden, _, _ := seed(repo, false)
	_, err = svc.GetForStudent(context.Background(), hidden)
	assert.ErrorIs(t, err, ErrNotPublished)
}

func TestHandler_SetCorrectOption(t *testing.T) {
	repo := newFakeRepo()
	_, keyed, _ := seed(repo, true)
	h := NewHandler(NewService(repo, time.Second))

	r := chi.NewRouter()
	AdminRoutes(r, h)

	cases := []struct {
		name string
		path string
		body string
		want int
	}{
		{"OK", "/questions/" + keyed.ID.String() + "/correct-option", `{"option_id":"` + keyed.Options[1].ID.String() + `"}`, http.StatusNoContent},
		{"UppercaseOptionID", "/questions/" + keyed.ID.String() + "/correct-option", `{"option_id":"` + strings.ToUpper(keyed.Options[0].ID.String()) + `"}`, http.StatusNoContent},
		{"Mismatch", "/questions/" + keyed.ID.String() + "/correct-option", `{"option_id":"` + uuid.NewString() + `"}`, http.StatusUnprocessableEntity},
		{"MissingOption", "/questions/" + keyed.ID.String() + "/correct-option", `{}`, http.StatusBadRequest},
		{"UnknownQuestion", "/questions/" + uuid.NewString() + "/correct-option", `{"option_id":"` + uuid.NewString() + `"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
