// Package cognito implements the identity provider port on top of the
// Cognito user pools API.
package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
)

// Client exchanges credentials through AdminInitiateAuth
type Client struct {
	api        *cognitoidentityprovider.Client
	userPoolID string
	clientID   string
	authFlow   string
	logger     *zap.Logger
}

// NewClient creates a new Cognito identity client
func NewClient(api *cognitoidentityprovider.Client, userPoolID, clientID, authFlow string, logger *zap.Logger) ports.IdentityProvider {
	return &Client{
		api:        api,
		userPoolID: userPoolID,
		clientID:   clientID,
		authFlow:   authFlow,
		logger:     logger,
	}
}

// ExchangeCredentials performs the configured auth flow and returns the
// access and identity tokens.
func (c *Client) ExchangeCredentials(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	input := &cognitoidentityprovider.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowType(c.authFlow),
		UserPoolId: aws.String(c.userPoolID),
		ClientId:   aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	}

	result, err := c.api.AdminInitiateAuth(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			c.logger.Warn("Cognito auth rejected",
				zap.String("username", username),
				zap.String("errorCode", apiErr.ErrorCode()),
			)
		} else {
			c.logger.Error("Cognito auth call failed",
				zap.String("username", username),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("credential exchange failed: %w", err)
	}

	auth := result.AuthenticationResult
	if auth == nil || auth.AccessToken == nil || auth.IdToken == nil {
		// Challenge responses (MFA, password reset) land here; the login
		// contract has no follow-up step, so they count as failures.
		return nil, fmt.Errorf("credential exchange returned no tokens")
	}

	return &ports.TokenPair{
		AccessToken: aws.ToString(auth.AccessToken),
		IDToken:     aws.ToString(auth.IdToken),
	}, nil
}
