package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/services"
)

// PostConfirmationHandler serves the Cognito post-confirmation trigger
type PostConfirmationHandler struct {
	service *services.RegistrationService
	logger  *zap.Logger
}

// NewPostConfirmationHandler creates a new PostConfirmationHandler
func NewPostConfirmationHandler(service *services.RegistrationService, logger *zap.Logger) *PostConfirmationHandler {
	return &PostConfirmationHandler{
		service: service,
		logger:  logger,
	}
}

// Handle mirrors the confirmed identity into the user table. Cognito
// requires the trigger to hand the event back unchanged for the sign-up
// flow to proceed, so a mirror failure is logged but the event is still
// returned with no error; blocking confirmation over a missing mirror row
// would strand the account.
func (h *PostConfirmationHandler) Handle(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	attributes := event.Request.UserAttributes

	err := h.service.MirrorConfirmedUser(ctx, attributes["sub"], attributes["email"])
	if err != nil {
		h.logger.Error("User registration mirror failed",
			zap.String("sub", attributes["sub"]),
			zap.Error(err),
		)
	}

	return event, nil
}
