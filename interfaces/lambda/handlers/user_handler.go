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
	"github.com/bgmirko/aws-lambda-books-app/pkg/common"
)

// UserHandler serves the /users API Gateway routes
type UserHandler struct {
	service *services.UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Handle dispatches a user request on its HTTP method. GET serves three
// shapes: role-filtered lookup when a query string is present, point lookup
// with a path id, full listing otherwise.
func (h *UserHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var result interface{}
	var err error

	switch req.HTTPMethod {
	case http.MethodGet:
		switch {
		case req.QueryStringParameters != nil:
			result, err = h.service.GetByRole(ctx, req.PathParameters["id"], req.QueryStringParameters["role"])
		case req.PathParameters["id"] != "":
			result, err = h.service.Get(ctx, req.PathParameters["id"])
		default:
			result, err = h.service.List(ctx)
		}
	case http.MethodPost:
		result, err = h.create(ctx, req)
	case http.MethodDelete:
		err = h.service.Delete(ctx, req.PathParameters["id"])
		result = domain.Record{domain.UserIDAttribute: req.PathParameters["id"]}
	case http.MethodPatch:
		result, err = h.update(ctx, req)
	default:
		err = fmt.Errorf("unsupported route: %q", req.HTTPMethod)
	}

	if err != nil {
		h.logger.Error("User operation failed",
			zap.String("method", req.HTTPMethod),
			zap.Error(err),
		)
		return common.FromError(err), nil
	}

	return common.Success(req.HTTPMethod, result), nil
}

func (h *UserHandler) create(ctx context.Context, req events.APIGatewayProxyRequest) (domain.Record, error) {
	var attributes domain.Record
	if err := json.Unmarshal([]byte(req.Body), &attributes); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}
	return h.service.Create(ctx, attributes)
}

func (h *UserHandler) update(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
	var fields domain.Record
	if err := json.Unmarshal([]byte(req.Body), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	userUUID := req.PathParameters["id"]
	if err := h.service.Update(ctx, userUUID, fields); err != nil {
		return nil, err
	}

	return fields, nil
}
