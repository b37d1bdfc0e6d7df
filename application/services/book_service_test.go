package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/domain"
	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
	"github.com/bgmirko/aws-lambda-books-app/tests/mocks"
)

func newBookService(books *mocks.MockBookRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotificationPublisher) *BookService {
	return NewBookService(books, users, notifier, zap.NewNop())
}

func TestBookService_Create_GeneratesIdentifier(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("Put", ctx, mock.AnythingOfType("domain.Record")).Return(nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("string")).Return(nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	created, err := service.Create(ctx, domain.Record{
		"title":    "Clean Architecture",
		"userUuid": "u1",
		"bookUuid": "caller-supplied",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.String(domain.BookIDAttribute))
	assert.NotEqual(t, "caller-supplied", created.String(domain.BookIDAttribute))
	assert.Equal(t, "u1", created.String(domain.BookOwnerAttribute))
	mockBooks.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookService_Create_NotificationFailureIsSwallowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("Put", ctx, mock.AnythingOfType("domain.Record")).Return(nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("string")).Return(errors.New("topic unavailable"))

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	created, err := service.Create(ctx, domain.Record{"title": "X"})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.String(domain.BookIDAttribute))
	mockNotifier.AssertExpectations(t)
}

func TestBookService_Create_StoreFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("Put", ctx, mock.AnythingOfType("domain.Record")).Return(errors.New("throttled"))

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	_, err := service.Create(ctx, domain.Record{"title": "X"})

	// Assert
	assert.Error(t, err)
	mockNotifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookService_Delete_OwnerAuthorPasses(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("GetByID", ctx, "b1").Return(domain.Record{"bookUuid": "b1", "userUuid": "u1"}, nil)
	mockUsers.On("GetByID", ctx, "u1").Return(domain.Record{"uuid": "u1", "role": "Author"}, nil)
	mockBooks.On("Delete", ctx, "b1").Return(nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Delete(ctx, "b1", "u1")

	// Assert
	assert.NoError(t, err)
	mockBooks.AssertExpectations(t)
}

func TestBookService_Delete_ForeignAuthorForbidden(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("GetByID", ctx, "b1").Return(domain.Record{"bookUuid": "b1", "userUuid": "u1"}, nil)
	mockUsers.On("GetByID", ctx, "u2").Return(domain.Record{"uuid": "u2", "role": "Author"}, nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Delete(ctx, "b1", "u2")

	// Assert
	assert.True(t, apperrors.IsForbidden(err))
	mockBooks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookService_Delete_NonAuthorRolePasses(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	// An Admin may delete anyone's book
	mockBooks.On("GetByID", ctx, "b1").Return(domain.Record{"bookUuid": "b1", "userUuid": "u1"}, nil)
	mockUsers.On("GetByID", ctx, "admin").Return(domain.Record{"uuid": "admin", "role": "Admin"}, nil)
	mockBooks.On("Delete", ctx, "b1").Return(nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Delete(ctx, "b1", "admin")

	// Assert
	assert.NoError(t, err)
	mockBooks.AssertExpectations(t)
}

func TestBookService_Delete_MissingBookNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("GetByID", ctx, "missing").Return(nil, nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Delete(ctx, "missing", "u1")

	// Assert
	assert.True(t, apperrors.IsNotFound(err))
	mockBooks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockUsers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBookService_Update_SetsExactlySuppliedFields(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	fields := domain.Record{"title": "Updated", "year": float64(2024)}

	mockBooks.On("GetByID", ctx, "b1").Return(domain.Record{"bookUuid": "b1", "userUuid": "u1"}, nil)
	mockUsers.On("GetByID", ctx, "u1").Return(domain.Record{"uuid": "u1", "role": "Reader"}, nil)
	mockBooks.On("Update", ctx, "b1", fields).Return(nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Update(ctx, "b1", "u1", fields)

	// Assert
	assert.NoError(t, err)
	mockBooks.AssertExpectations(t)
}

func TestBookService_Update_ForeignAuthorForbidden(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("GetByID", ctx, "b1").Return(domain.Record{"bookUuid": "b1", "userUuid": "u1"}, nil)
	mockUsers.On("GetByID", ctx, "u2").Return(domain.Record{"uuid": "u2", "role": "Author"}, nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	err := service.Update(ctx, "b1", "u2", domain.Record{"title": "Hijack"})

	// Assert
	assert.True(t, apperrors.IsForbidden(err))
	mockBooks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookService_ListByOwner_EmptyResult(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBooks := new(mocks.MockBookRepository)
	mockUsers := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotificationPublisher)

	mockBooks.On("ListByOwner", ctx, "nobody").Return([]domain.Record{}, nil)

	service := newBookService(mockBooks, mockUsers, mockNotifier)

	// Act
	books, err := service.ListByOwner(ctx, "nobody")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotNil(t, books)
}
