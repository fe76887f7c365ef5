package assignment

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentContainer struct {
	Handler *Handler
	Repo    AssignmentRepository
}

func NewAssignmentContainer(db *gorm.DB, timeout time.Duration) *AssignmentContainer {
	repo := NewRepository(db)
	service := NewService(repo, timeout)
	handler := NewHandler(service)

	return &AssignmentContainer{
		Handler: handler,
		Repo:    repo,
	}
}
