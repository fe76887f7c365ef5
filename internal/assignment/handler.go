package assignment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/grader-lambda/internal/config"
)

type Handler struct {
	service AssignmentService
}

func NewHandler(s AssignmentService) *Handler {
	return &Handler{service: s}
}

// GetAssignment godoc
// @Summary      Get a published assignment without answer keys
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment ID"
// @Success      200  {object}  AssignmentView
// @Failure      400,401,403,404  {object}  map[string]string
// @Router       /assignments/{id} [get]
func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	view, err := h.service.GetForStudent(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

// SetCorrectOption godoc
// @Summary      Mark the correct option of a question
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "Question ID"
// @Param        body  body  SetCorrectOptionDTO  true  "Option"
// @Success      204
// @Failure      400,401,403,404,422  {object}  map[string]string
// @Router       /admin/questions/{id}/correct-option [put]
func (h *Handler) SetCorrectOption(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var dto SetCorrectOptionDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetCorrectOption(r.Context(), questionID, uuid.MustParse(dto.OptionID)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Publish godoc
// @Summary      Publish an assignment
// @Description  Never blocked by missing answer keys; unkeyed questions are listed in the report.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment ID"
// @Success      200  {object}  ReadinessReport
// @Failure      400,401,403,404  {object}  map[string]string
// @Router       /admin/assignments/{id}/publish [post]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	report, err := h.service.Publish(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, report)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrAssignmentNotFound), errors.Is(err, ErrNotPublished):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrQuestionNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrOptionMismatch):
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		config.WithContext(r.Context()).WithError(err).Error("Assignment request failed")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
