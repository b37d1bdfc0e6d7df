package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/application/services"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/config"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/identity/cognito"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/messaging/sns"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/persistence/dynamodb"
	"github.com/bgmirko/aws-lambda-books-app/interfaces/lambda/handlers"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every
// SDK client built from it reports X-Ray subsegments.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideCognitoClient creates a Cognito identity provider client
func ProvideCognitoClient(awsCfg aws.Config) *awscognito.Client {
	return awscognito.NewFromConfig(awsCfg)
}

// ProvideSNSClient creates an SNS client
func ProvideSNSClient(awsCfg aws.Config) *awssns.Client {
	return awssns.NewFromConfig(awsCfg)
}

// ProvideBookRepository creates a book repository
func ProvideBookRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.BookRepository {
	return dynamodb.NewBookRepository(client, cfg.BooksTable, cfg.OwnerIndexName, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.UserRepository {
	return dynamodb.NewUserRepository(client, cfg.UserTable, logger)
}

// ProvideIdentityProvider creates the Cognito-backed identity provider
func ProvideIdentityProvider(client *awscognito.Client, cfg *config.Config, logger *zap.Logger) ports.IdentityProvider {
	return cognito.NewClient(client, cfg.UserPoolID, cfg.ClientID, cfg.AuthFlow, logger)
}

// ProvideNotificationPublisher creates the book-created topic publisher
func ProvideNotificationPublisher(client *awssns.Client, cfg *config.Config, logger *zap.Logger) ports.NotificationPublisher {
	return sns.NewTopicPublisher(client, cfg.AWSRegion, cfg.AccountID, cfg.BookCreatedTopic, logger)
}

// ProvideBookService creates the book service
func ProvideBookService(
	books ports.BookRepository,
	users ports.UserRepository,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *services.BookService {
	return services.NewBookService(books, users, notifier, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(users ports.UserRepository, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, logger)
}

// ProvideAuthService creates the auth service
func ProvideAuthService(identity ports.IdentityProvider, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(identity, logger)
}

// ProvideRegistrationService creates the registration service
func ProvideRegistrationService(users ports.UserRepository, logger *zap.Logger) *services.RegistrationService {
	return services.NewRegistrationService(users, logger)
}

// ProvideBookHandler creates the book Lambda handler
func ProvideBookHandler(service *services.BookService, logger *zap.Logger) *handlers.BookHandler {
	return handlers.NewBookHandler(service, logger)
}

// ProvideUserHandler creates the user Lambda handler
func ProvideUserHandler(service *services.UserService, logger *zap.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(service, logger)
}

// ProvideLoginHandler creates the login Lambda handler
func ProvideLoginHandler(service *services.AuthService, logger *zap.Logger) *handlers.LoginHandler {
	return handlers.NewLoginHandler(service, logger)
}

// ProvidePostConfirmationHandler creates the post-confirmation handler
func ProvidePostConfirmationHandler(service *services.RegistrationService, logger *zap.Logger) *handlers.PostConfirmationHandler {
	return handlers.NewPostConfirmationHandler(service, logger)
}
