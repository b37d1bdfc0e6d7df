package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/domain"
	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
)

// bookCreatedNotification is the message body published on every creation.
var bookCreatedNotification = mustJSON(map[string]string{"message": "New Book Created"})

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// BookService implements book CRUD with ownership authorization
type BookService struct {
	books    ports.BookRepository
	users    ports.UserRepository
	notifier ports.NotificationPublisher
	logger   *zap.Logger
}

// NewBookService creates a new BookService
func NewBookService(
	books ports.BookRepository,
	users ports.UserRepository,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *BookService {
	return &BookService{
		books:    books,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Create stores a new book under a freshly generated identifier. A
// caller-supplied bookUuid is always overwritten. The creation notification
// is best-effort: a publish failure is logged and the create still
// succeeds.
func (s *BookService) Create(ctx context.Context, attributes domain.Record) (domain.Record, error) {
	if attributes == nil {
		attributes = domain.Record{}
	}
	attributes[domain.BookIDAttribute] = uuid.NewString()

	if err := s.books.Put(ctx, attributes); err != nil {
		return nil, err
	}

	s.logger.Info("Book created",
		zap.String("bookUuid", attributes.String(domain.BookIDAttribute)),
		zap.String("userUuid", attributes.String(domain.BookOwnerAttribute)),
	)

	if err := s.notifier.Publish(ctx, bookCreatedNotification); err != nil {
		s.logger.Warn("Failed to publish book created notification", zap.Error(err))
	}

	return attributes, nil
}

// ListByOwner returns all books belonging to a user, empty slice if none.
func (s *BookService) ListByOwner(ctx context.Context, ownerUUID string) ([]domain.Record, error) {
	return s.books.ListByOwner(ctx, ownerUUID)
}

// Delete removes a book after the ownership check passes.
func (s *BookService) Delete(ctx context.Context, bookUUID, callerUUID string) error {
	if err := s.authorizeOwnerAction(ctx, bookUUID, callerUUID); err != nil {
		return err
	}
	return s.books.Delete(ctx, bookUUID)
}

// Update applies a partial field set after the ownership check passes.
func (s *BookService) Update(ctx context.Context, bookUUID, callerUUID string, fields domain.Record) error {
	if err := s.authorizeOwnerAction(ctx, bookUUID, callerUUID); err != nil {
		return err
	}
	return s.books.Update(ctx, bookUUID, fields)
}

// authorizeOwnerAction decides whether the caller may mutate the book. A
// caller with role "Author" may only touch their own books; any other role,
// or a matching identity, passes. Ownership is checked lazily here, never
// at write time.
func (s *BookService) authorizeOwnerAction(ctx context.Context, bookUUID, callerUUID string) error {
	book, err := s.books.GetByID(ctx, bookUUID)
	if err != nil {
		return err
	}
	if book == nil {
		return apperrors.NewNotFoundError("Book")
	}

	caller, err := s.users.GetByID(ctx, callerUUID)
	if err != nil {
		return err
	}
	if caller == nil {
		return apperrors.NewInternalError("caller user record not found")
	}

	if caller.String(domain.UserRoleAttribute) == domain.RoleAuthor &&
		caller.String(domain.UserIDAttribute) != book.String(domain.BookOwnerAttribute) {
		s.logger.Info("Book mutation rejected",
			zap.String("bookUuid", bookUUID),
			zap.String("callerUuid", callerUUID),
			zap.String("ownerUuid", book.String(domain.BookOwnerAttribute)),
		)
		return apperrors.NewForbiddenError("You are not allowed to delete book of other author")
	}

	return nil
}
