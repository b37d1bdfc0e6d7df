package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/domain"
	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
	"github.com/bgmirko/aws-lambda-books-app/tests/mocks"
)

func TestRegistrationService_MirrorConfirmedUser_WritesSubjectKeyedRecord(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := new(mocks.MockUserRepository)
	expected := domain.Record{"uuid": "sub-123", "email": "a@b.com"}
	mockUsers.On("Put", ctx, expected).Return(nil)

	service := NewRegistrationService(mockUsers, zap.NewNop())

	// Act
	err := service.MirrorConfirmedUser(ctx, "sub-123", "a@b.com")

	// Assert
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestRegistrationService_MirrorConfirmedUser_EmptySubjectRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := new(mocks.MockUserRepository)

	service := NewRegistrationService(mockUsers, zap.NewNop())

	// Act
	err := service.MirrorConfirmedUser(ctx, "", "a@b.com")

	// Assert
	assert.True(t, apperrors.IsValidation(err))
	mockUsers.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestRegistrationService_MirrorConfirmedUser_StoreFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := new(mocks.MockUserRepository)
	mockUsers.On("Put", ctx, mock.AnythingOfType("domain.Record")).Return(errors.New("table missing"))

	service := NewRegistrationService(mockUsers, zap.NewNop())

	// Act
	err := service.MirrorConfirmedUser(ctx, "sub-123", "a@b.com")

	// Assert
	assert.Error(t, err)
}
