// Package main implements the login Lambda function, exchanging user
// credentials for Cognito tokens.
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
	if err := cfg.ValidateIdentity(); err != nil {
		log.Fatalf("Invalid identity configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func main() {
	defer container.Logger.Sync()
	lambda.Start(container.LoginHandler.Handle)
}
