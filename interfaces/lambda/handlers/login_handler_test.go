package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/application/services"
	"github.com/bgmirko/aws-lambda-books-app/pkg/common"
	"github.com/bgmirko/aws-lambda-books-app/tests/mocks"
)

func newLoginHandlerFixture() (*LoginHandler, *mocks.MockIdentityProvider) {
	identity := new(mocks.MockIdentityProvider)
	logger := zap.NewNop()
	service := services.NewAuthService(identity, logger)
	return NewLoginHandler(service, logger), identity
}

func TestLoginHandler_SuccessReturnsTokens(t *testing.T) {
	// Arrange
	handler, identity := newLoginHandlerFixture()
	identity.On("ExchangeCredentials", mock.Anything, "alice", "secret").
		Return(&ports.TokenPair{AccessToken: "access-token", IDToken: "id-token"}, nil)

	req := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"username":"alice","password":"secret"}`,
	}

	// Act
	resp, err := handler.Handle(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "access-token", body["AccessToken"])
	assert.Equal(t, "id-token", body["IdToken"])
}

func TestLoginHandler_RejectedCredentialsGet401(t *testing.T) {
	// Arrange
	handler, identity := newLoginHandlerFixture()
	identity.On("ExchangeCredentials", mock.Anything, "alice", "wrong").
		Return(nil, errors.New("NotAuthorizedException"))

	req := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"username":"alice","password":"wrong"}`,
	}

	// Act
	resp, err := handler.Handle(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var envelope common.MessageResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &envelope))
	assert.Equal(t, "Login failed", envelope.Message)
}

func TestLoginHandler_MalformedBodyGets401(t *testing.T) {
	// Arrange
	handler, identity := newLoginHandlerFixture()

	req := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{not json`,
	}

	// Act
	resp, err := handler.Handle(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	identity.AssertNotCalled(t, "ExchangeCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_MissingCredentialsGet401(t *testing.T) {
	// Arrange
	handler, identity := newLoginHandlerFixture()

	req := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"username":"alice"}`,
	}

	// Act
	resp, err := handler.Handle(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	identity.AssertNotCalled(t, "ExchangeCredentials", mock.Anything, mock.Anything, mock.Anything)
}
