// Package main implements the books Lambda function, serving CRUD and
// owner-scoped listing for book records.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/bgmirko/aws-lambda-books-app/infrastructure/config"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/di"
)

// container holds the dependency injection container for the Lambda lifetime
var container *di.Container

// init runs during cold start
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
	lambda.Start(container.BookHandler.Handle)
}
