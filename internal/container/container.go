package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"github.com/saulo-duarte/grader-lambda/internal/auth"
	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/router"
	"github.com/saulo-duarte/grader-lambda/internal/submission"
)

type Container struct {
	Settings            config.Settings
	AssignmentContainer *assignment.AssignmentContainer
	SubmissionContainer *submission.SubmissionContainer
}

func New(ctx context.Context, s config.Settings) (*Container, error) {
	config.Init(s)
	auth.Init(s.JWTSecret)

	if err := config.Connect(ctx, s.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("connect to DB: %w", err)
	}

	assignmentContainer := assignment.NewAssignmentContainer(config.DB, s.StoreTimeout)
	submissionContainer := submission.NewSubmissionContainer(config.DB, assignmentContainer.Repo, s.StoreTimeout)

	return &Container{
		Settings:            s,
		AssignmentContainer: assignmentContainer,
		SubmissionContainer: submissionContainer,
	}, nil
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		AssignmentHandler: c.AssignmentContainer.Handler,
		SubmissionHandler: c.SubmissionContainer.Handler,
		CorsOrigins:       c.Settings.CorsOrigins,
	})
}
