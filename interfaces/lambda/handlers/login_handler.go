package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/services"
	"github.com/bgmirko/aws-lambda-books-app/pkg/common"
	"github.com/bgmirko/aws-lambda-books-app/pkg/utils"
)

// LoginRequest is the credential payload for the login route
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse mirrors the token field names the frontend consumes.
type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"AccessToken"`
	IDToken     string `json:"IdToken"`
}

// LoginHandler serves the login API Gateway route
type LoginHandler struct {
	service *services.AuthService
	logger  *zap.Logger
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(service *services.AuthService, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{
		service: service,
		logger:  logger,
	}
}

// Handle exchanges the posted credentials for tokens. Any failure, from a
// malformed body through provider rejection, answers with a bare 401; no
// detail about the account or the failure reason leaks to the caller.
func (h *LoginHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var login LoginRequest
	if err := json.Unmarshal([]byte(req.Body), &login); err != nil {
		h.logger.Warn("Malformed login request", zap.Error(err))
		return common.Message(http.StatusUnauthorized, "Login failed"), nil
	}

	if err := utils.ValidateStruct(login); err != nil {
		h.logger.Warn("Invalid login request", zap.Error(err))
		return common.Message(http.StatusUnauthorized, "Login failed"), nil
	}

	tokens, err := h.service.Login(ctx, login.Username, login.Password)
	if err != nil {
		return common.Message(http.StatusUnauthorized, "Login failed"), nil
	}

	return common.JSON(http.StatusOK, loginResponse{
		Message:     "Login successful",
		AccessToken: tokens.AccessToken,
		IDToken:     tokens.IDToken,
	}), nil
}
