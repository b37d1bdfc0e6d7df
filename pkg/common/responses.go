package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
)

// OperationResponse is the envelope returned for successful book and user
// operations.
type OperationResponse struct {
	Message string      `json:"message"`
	Body    interface{} `json:"body"`
}

// FailureResponse is the envelope returned for generic operation failures.
type FailureResponse struct {
	Message  string `json:"message"`
	ErrorMsg string `json:"errorMsg"`
}

// MessageResponse carries a bare message, used for authorization outcomes
// and login failures.
type MessageResponse struct {
	Message string `json:"message"`
}

const failureMessage = "Failed to perform operation"

// Success wraps an operation result in the standard 200 envelope.
func Success(method string, payload interface{}) events.APIGatewayProxyResponse {
	return JSON(http.StatusOK, OperationResponse{
		Message: fmt.Sprintf("Successfully finished operation: %q", method),
		Body:    payload,
	})
}

// Failure returns the generic 500 envelope with the error message attached.
func Failure(err error) events.APIGatewayProxyResponse {
	return JSON(http.StatusInternalServerError, FailureResponse{
		Message:  failureMessage,
		ErrorMsg: err.Error(),
	})
}

// Message returns a bare-message response with the given status code.
func Message(status int, message string) events.APIGatewayProxyResponse {
	return JSON(status, MessageResponse{Message: message})
}

// FromError maps a typed application error to its response. Not-found,
// forbidden and unauthorized errors keep their status and message; anything
// else collapses into the generic 500 envelope.
func FromError(err error) events.APIGatewayProxyResponse {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.HTTPStatus {
		case http.StatusNotFound, http.StatusForbidden, http.StatusUnauthorized:
			return Message(appErr.HTTPStatus, appErr.Message)
		}
	}
	return Failure(err)
}

// JSON builds an API Gateway response with a JSON-encoded body.
func JSON(status int, payload interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Failed to encode response"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
