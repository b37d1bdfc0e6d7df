// Package handlers contains the Lambda event handlers. Each handler
// dispatches on the incoming trigger payload, delegates to an application
// service and shapes the response envelope; errors never escape as Lambda
// invocation failures.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/services"
	"github.com/bgmirko/aws-lambda-books-app/domain"
	"github.com/bgmirko/aws-lambda-books-app/pkg/auth"
	"github.com/bgmirko/aws-lambda-books-app/pkg/common"
)

// defaultBody is returned for requests that match no operation, such as a
// GET without a path parameter.
const defaultBody = "Hello from Lambda!"

// BookHandler serves the /books API Gateway routes
type BookHandler struct {
	service *services.BookService
	logger  *zap.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(service *services.BookService, logger *zap.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		logger:  logger,
	}
}

// Handle dispatches a book request on its HTTP method.
func (h *BookHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var result interface{} = defaultBody
	var err error

	switch req.HTTPMethod {
	case http.MethodGet:
		if id := req.PathParameters["id"]; id != "" {
			result, err = h.service.ListByOwner(ctx, id)
		}
	case http.MethodPost:
		result, err = h.create(ctx, req)
	case http.MethodDelete:
		result, err = h.delete(ctx, req)
	case http.MethodPatch:
		result, err = h.update(ctx, req)
	default:
		err = fmt.Errorf("http method not supported: %q", req.HTTPMethod)
	}

	if err != nil {
		h.logger.Error("Book operation failed",
			zap.String("method", req.HTTPMethod),
			zap.Error(err),
		)
		return common.FromError(err), nil
	}

	return common.Success(req.HTTPMethod, result), nil
}

func (h *BookHandler) create(ctx context.Context, req events.APIGatewayProxyRequest) (domain.Record, error) {
	var attributes domain.Record
	if err := json.Unmarshal([]byte(req.Body), &attributes); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}
	return h.service.Create(ctx, attributes)
}

func (h *BookHandler) delete(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
	claims, err := callerClaims(req)
	if err != nil {
		return nil, err
	}

	bookUUID := req.PathParameters["id"]
	if err := h.service.Delete(ctx, bookUUID, claims.UserID); err != nil {
		return nil, err
	}

	return domain.Record{domain.BookIDAttribute: bookUUID}, nil
}

func (h *BookHandler) update(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
	claims, err := callerClaims(req)
	if err != nil {
		return nil, err
	}

	var fields domain.Record
	if err := json.Unmarshal([]byte(req.Body), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	bookUUID := req.PathParameters["id"]
	if err := h.service.Update(ctx, bookUUID, claims.UserID, fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// callerClaims decodes the caller identity from the Authorization header.
func callerClaims(req events.APIGatewayProxyRequest) (*auth.Claims, error) {
	token, err := auth.BearerToken(req.Headers)
	if err != nil {
		return nil, err
	}
	return auth.DecodeClaims(token)
}
