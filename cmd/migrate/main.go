package main

import (
	"context"

	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/submission"
)

func main() {
	ctx := context.Background()
	settings := config.Load()
	config.Init(settings)
	log := config.WithContext(ctx)

	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		log.WithError(err).Fatal("Failed to connect to DB")
	}

	if err := assignment.AutoMigrate(config.DB); err != nil {
		log.WithError(err).Fatal("Failed to migrate assignment tables")
	}
	if err := submission.AutoMigrate(config.DB); err != nil {
		log.WithError(err).Fatal("Failed to migrate submission tables")
	}

	log.Info("Migrations applied")
}
