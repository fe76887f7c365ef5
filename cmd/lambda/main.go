package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	c, err := container.New(context.Background(), config.Load())
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	adapter = httpadapter.New(c.Handler())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
