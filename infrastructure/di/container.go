package di

import (
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/infrastructure/config"
	"github.com/bgmirko/aws-lambda-books-app/interfaces/lambda/handlers"
)

// Container holds all application dependencies. Every Lambda binary builds
// one container during cold start and picks the handler it serves.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	BookRepo ports.BookRepository
	UserRepo ports.UserRepository
	Identity ports.IdentityProvider
	Notifier ports.NotificationPublisher

	BookHandler             *handlers.BookHandler
	UserHandler             *handlers.UserHandler
	LoginHandler            *handlers.LoginHandler
	PostConfirmationHandler *handlers.PostConfirmationHandler
}
