package submission

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/auth"
	"github.com/saulo-duarte/grader-lambda/internal/config"
)

type Handler struct {
	service SubmissionService
}

func NewHandler(s SubmissionService) *Handler {
	return &Handler{service: s}
}

// Submit godoc
// @Summary      Submit answers for grading
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string     true  "Assignment ID"
// @Param        body  body      SubmitDTO  true  "Selected options"
// @Success      200   {object}  SubmitResult
// @Failure      400,401,403,404,409,422,503  {object}  map[string]string
// @Router       /assignments/{id}/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromContext(w, r)
	if !ok {
		return
	}

	assignmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	var dto SubmitDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid submission body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Submit(r.Context(), assignmentID, studentID, dto.toAnswers())
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

// GetMine godoc
// @Summary      Get the caller's submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment ID"
// @Success      200  {object}  SubmissionResponse
// @Failure      400,401,403,404  {object}  map[string]string
// @Router       /assignments/{id}/submission [get]
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentFromContext(w, r)
	if !ok {
		return
	}

	assignmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	sub, err := h.service.GetResult(r.Context(), assignmentID, studentID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, toResponse(sub))
}

// Stats godoc
// @Summary      Score statistics for an assignment
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment ID"
// @Success      200  {object}  StatsResponse
// @Failure      400,401,403,503  {object}  map[string]string
// @Router       /admin/assignments/{id}/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	stats, err := h.service.Stats(r.Context(), assignmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func studentFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Token carries a malformed user id")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAssignmentNotFound),
		errors.Is(err, ErrNotPublished),
		errors.Is(err, ErrSubmissionNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadySubmitted):
		config.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNoQuestions):
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		config.Error(w, http.StatusServiceUnavailable, ErrStoreUnavailable.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
