// Package main implements the users Lambda function, serving CRUD and the
// role-filtered lookup for user records.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/bgmirko/aws-lambda-books-app/infrastructure/config"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/di"
)

var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func main() {
	defer container.Logger.Sync()
	lambda.Start(container.UserHandler.Handle)
}
