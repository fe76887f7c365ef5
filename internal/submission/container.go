package submission

import (
	"time"

	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"gorm.io/gorm"
)

type SubmissionContainer struct {
	Handler *Handler
	Service SubmissionService
}

func NewSubmissionContainer(db *gorm.DB, assignments assignment.AssignmentRepository, timeout time.Duration) *SubmissionContainer {
	store := NewStore(db, assignments)
	service := NewService(store, timeout)
	handler := NewHandler(service)

	return &SubmissionContainer{
		Handler: handler,
		Service: service,
	}
}
