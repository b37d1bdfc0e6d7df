package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/domain"
)

// BookRepository implements ports.BookRepository using DynamoDB
type BookRepository struct {
	client         *dynamodb.Client
	tableName      string
	ownerIndexName string
	logger         *zap.Logger
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(client *dynamodb.Client, tableName, ownerIndexName string, logger *zap.Logger) ports.BookRepository {
	return &BookRepository{
		client:         client,
		tableName:      tableName,
		ownerIndexName: ownerIndexName,
		logger:         logger,
	}
}

// Put writes the full record as a new item.
func (r *BookRepository) Put(ctx context.Context, book domain.Record) error {
	av, err := attributevalue.MarshalMap(book)
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save book to DynamoDB",
			zap.Error(err),
			zap.String("bookUuid", book.String(domain.BookIDAttribute)),
		)
		return fmt.Errorf("failed to save book: %w", err)
	}

	r.logger.Debug("Book saved",
		zap.String("bookUuid", book.String(domain.BookIDAttribute)),
		zap.String("userUuid", book.String(domain.BookOwnerAttribute)),
	)

	return nil
}

// GetByID loads a book by primary key. Returns (nil, nil) when absent.
func (r *BookRepository) GetByID(ctx context.Context, bookUUID string) (domain.Record, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			domain.BookIDAttribute: &types.AttributeValueMemberS{Value: bookUUID},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if len(result.Item) == 0 {
		return nil, nil
	}

	var book domain.Record
	if err := attributevalue.UnmarshalMap(result.Item, &book); err != nil {
		return nil, fmt.Errorf("failed to unmarshal book: %w", err)
	}

	return book, nil
}

// ListByOwner queries the owner GSI for all books belonging to a user.
func (r *BookRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]domain.Record, error) {
	keyCond := expression.Key(domain.BookOwnerAttribute).Equal(expression.Value(ownerUUID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.ownerIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by owner: %w", err)
	}

	books := make([]domain.Record, 0, len(result.Items))
	for _, item := range result.Items {
		var book domain.Record
		if err := attributevalue.UnmarshalMap(item, &book); err != nil {
			r.logger.Warn("Failed to unmarshal book item", zap.Error(err))
			continue
		}
		books = append(books, book)
	}

	return books, nil
}

// Delete removes a book by primary key.
func (r *BookRepository) Delete(ctx context.Context, bookUUID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			domain.BookIDAttribute: &types.AttributeValueMemberS{Value: bookUUID},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	r.logger.Debug("Book deleted", zap.String("bookUuid", bookUUID))

	return nil
}

// Update sets exactly the given fields, leaving everything else untouched.
// The expression builder generates name/value placeholders, so arbitrary
// client-supplied attribute names never collide with reserved words.
func (r *BookRepository) Update(ctx context.Context, bookUUID string, fields domain.Record) error {
	update, err := buildFieldUpdate(fields)
	if err != nil {
		return err
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			domain.BookIDAttribute: &types.AttributeValueMemberS{Value: bookUUID},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		r.logger.Error("Failed to update book",
			zap.Error(err),
			zap.String("bookUuid", bookUUID),
		)
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

// buildFieldUpdate maps a partial field set to a SET update expression.
func buildFieldUpdate(fields domain.Record) (expression.UpdateBuilder, error) {
	if len(fields) == 0 {
		return expression.UpdateBuilder{}, fmt.Errorf("no fields to update")
	}

	var update expression.UpdateBuilder
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}
	return update, nil
}
