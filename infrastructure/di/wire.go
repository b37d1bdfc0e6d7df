//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/bgmirko/aws-lambda-books-app/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideCognitoClient,
	ProvideSNSClient,
	ProvideBookRepository,
	ProvideUserRepository,
	ProvideIdentityProvider,
	ProvideNotificationPublisher,
	ProvideBookService,
	ProvideUserService,
	ProvideAuthService,
	ProvideRegistrationService,
	ProvideBookHandler,
	ProvideUserHandler,
	ProvideLoginHandler,
	ProvidePostConfirmationHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
