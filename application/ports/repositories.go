// Package ports defines the interfaces the application services depend on.
// Implementations live under infrastructure; tests substitute mocks.
package ports

import (
	"context"

	"github.com/bgmirko/aws-lambda-books-app/domain"
)

// BookRepository provides item-level access to the books table.
type BookRepository interface {
	// Put writes the full record as a new item.
	Put(ctx context.Context, book domain.Record) error

	// GetByID loads a book by primary key. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, bookUUID string) (domain.Record, error)

	// ListByOwner queries the owner GSI. Returns an empty slice when no
	// books match.
	ListByOwner(ctx context.Context, ownerUUID string) ([]domain.Record, error)

	// Delete removes a book by primary key.
	Delete(ctx context.Context, bookUUID string) error

	// Update sets exactly the given fields on an existing item.
	Update(ctx context.Context, bookUUID string, fields domain.Record) error
}

// UserRepository provides item-level access to the user table.
type UserRepository interface {
	Put(ctx context.Context, user domain.Record) error

	// GetByID loads a user by primary key. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, uuid string) (domain.Record, error)

	// List scans the whole table.
	List(ctx context.Context) ([]domain.Record, error)

	// QueryByRole queries by primary key with an additional substring
	// filter on the role attribute.
	QueryByRole(ctx context.Context, uuid, role string) ([]domain.Record, error)

	Delete(ctx context.Context, uuid string) error
	Update(ctx context.Context, uuid string, fields domain.Record) error
}

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	AccessToken string
	IDToken     string
}

// IdentityProvider exchanges credentials for tokens with the managed
// identity service.
type IdentityProvider interface {
	ExchangeCredentials(ctx context.Context, username, password string) (*TokenPair, error)
}

// NotificationPublisher publishes a fire-and-forget message to the
// configured topic.
type NotificationPublisher interface {
	Publish(ctx context.Context, message string) error
}
