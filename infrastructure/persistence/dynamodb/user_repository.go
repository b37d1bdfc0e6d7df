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

// UserRepository implements ports.UserRepository using DynamoDB
type UserRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.UserRepository {
	return &UserRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put writes the full record as a new item.
func (r *UserRepository) Put(ctx context.Context, user domain.Record) error {
	av, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save user to DynamoDB",
			zap.Error(err),
			zap.String("uuid", user.String(domain.UserIDAttribute)),
		)
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetByID loads a user by primary key. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, uuid string) (domain.Record, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			domain.UserIDAttribute: &types.AttributeValueMemberS{Value: uuid},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(result.Item) == 0 {
		return nil, nil
	}

	var user domain.Record
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return user, nil
}

// List scans the whole user table.
func (r *UserRepository) List(ctx context.Context) ([]domain.Record, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	users := make([]domain.Record, 0, len(result.Items))
	for _, item := range result.Items {
		var user domain.Record
		if err := attributevalue.UnmarshalMap(item, &user); err != nil {
			r.logger.Warn("Failed to unmarshal user item", zap.Error(err))
			continue
		}
		users = append(users, user)
	}

	return users, nil
}

// QueryByRole queries by primary key with a substring filter on the role
// attribute. The key condition already narrows to at most one item; the
// filter is kept as the callers expect it.
func (r *UserRepository) QueryByRole(ctx context.Context, uuid, role string) ([]domain.Record, error) {
	keyCond := expression.Key(domain.UserIDAttribute).Equal(expression.Value(uuid))
	filter := expression.Name(domain.UserRoleAttribute).Contains(role)

	expr, err := expression.NewBuilder().
		WithKeyCondition(keyCond).
		WithFilter(filter).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build role query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}

	users := make([]domain.Record, 0, len(result.Items))
	for _, item := range result.Items {
		var user domain.Record
		if err := attributevalue.UnmarshalMap(item, &user); err != nil {
			r.logger.Warn("Failed to unmarshal user item", zap.Error(err))
			continue
		}
		users = append(users, user)
	}

	return users, nil
}

// Delete removes a user by primary key.
func (r *UserRepository) Delete(ctx context.Context, uuid string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			domain.UserIDAttribute: &types.AttributeValueMemberS{Value: uuid},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Debug("User deleted", zap.String("uuid", uuid))

	return nil
}

// Update sets exactly the given fields, same technique as the book table.
func (r *UserRepository) Update(ctx context.Context, uuid string, fields domain.Record) error {
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
			domain.UserIDAttribute: &types.AttributeValueMemberS{Value: uuid},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		r.logger.Error("Failed to update user",
			zap.Error(err),
			zap.String("uuid", uuid),
		)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
