// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/domain"
)

// MockBookRepository is a mock implementation of ports.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Put(ctx context.Context, book domain.Record) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) GetByID(ctx context.Context, bookUUID string) (domain.Record, error) {
	args := m.Called(ctx, bookUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Record), args.Error(1)
}

func (m *MockBookRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]domain.Record, error) {
	args := m.Called(ctx, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, bookUUID string) error {
	args := m.Called(ctx, bookUUID)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, bookUUID string, fields domain.Record) error {
	args := m.Called(ctx, bookUUID, fields)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Put(ctx context.Context, user domain.Record) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, uuid string) (domain.Record, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Record), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockUserRepository) QueryByRole(ctx context.Context, uuid, role string) ([]domain.Record, error) {
	args := m.Called(ctx, uuid, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, uuid string, fields domain.Record) error {
	args := m.Called(ctx, uuid, fields)
	return args.Error(0)
}

// MockIdentityProvider is a mock implementation of ports.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) ExchangeCredentials(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TokenPair), args.Error(1)
}

// MockNotificationPublisher is a mock implementation of
// ports.NotificationPublisher
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
