package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"github.com/saulo-duarte/grader-lambda/internal/auth"
	"github.com/saulo-duarte/grader-lambda/internal/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSubmissions struct {
	calls int
}

func (s *countingSubmissions) Submit(ctx context.Context, assignmentID, studentID uuid.UUID, answers []submission.Answer) (*submission.SubmitResult, error) {
	s.calls++
	return &submission.SubmitResult{Score: 100}, nil
}

func (s *countingSubmissions) GetResult(ctx context.Context, assignmentID, studentID uuid.UUID) (*submission.Submission, error) {
	s.calls++
	return &submission.Submission{AssignmentID: assignmentID, StudentID: studentID}, nil
}

func (s *countingSubmissions) Stats(ctx context.Context, assignmentID uuid.UUID) (*submission.StatsResponse, error) {
	s.calls++
	return &submission.StatsResponse{AssignmentID: assignmentID}, nil
}

type noopAssignments struct{}

func (noopAssignments) GetForStudent(ctx context.Context, id uuid.UUID) (*assignment.AssignmentView, error) {
	return &assignment.AssignmentView{ID: id}, nil
}

func (noopAssignments) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	return nil
}

func (noopAssignments) Publish(ctx context.Context, id uuid.UUID) (*assignment.ReadinessReport, error) {
	return &assignment.ReadinessReport{AssignmentID: id, IsPublished: true}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *countingSubmissions) {
	t.Helper()
	auth.Init("router-test-secret")

	subs := &countingSubmissions{}
	h := New(RouterConfig{
		AssignmentHandler: assignment.NewHandler(noopAssignments{}),
		SubmissionHandler: submission.NewHandler(subs),
	})
	return h, subs
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := auth.GenerateJWT(uuid.NewString(), role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(h http.Handler, method, path, tok, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_StudentRoutesRequireStudentRole(t *testing.T) {
	assignmentID := uuid.New()
	submitPath := fmt.Sprintf("/assignments/%s/submit", assignmentID)

	t.Run("AdminCannotSubmit", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodPost, submitPath, token(t, auth.RoleAdmin), `{"answers":[]}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, subs.calls)
	})

	t.Run("AdminCannotReadStudentSubmission", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodGet, fmt.Sprintf("/assignments/%s/submission", assignmentID), token(t, auth.RoleAdmin), "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, subs.calls)
	})

	t.Run("StudentSubmits", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodPost, submitPath, token(t, auth.RoleStudent), `{"answers":[]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, subs.calls)
	})

	t.Run("MissingToken", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodPost, submitPath, "", `{"answers":[]}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, subs.calls)
	})
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	statsPath := fmt.Sprintf("/admin/assignments/%s/stats", uuid.New())

	t.Run("StudentForbidden", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodGet, statsPath, token(t, auth.RoleStudent), "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, subs.calls)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		h, subs := newTestRouter(t)

		rec := do(h, http.MethodGet, statsPath, token(t, auth.RoleAdmin), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, subs.calls)
	})
}

func TestRouter_SwaggerDoc(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/swagger/doc.json", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/assignments/{id}/submit"`)
	assert.Contains(t, rec.Body.String(), `"Grader API"`)
}
