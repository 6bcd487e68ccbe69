/*
Copyright 2026 the Foody API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthenticatedClient logs in once with the configured credentials and
// returns a client that attaches the resulting bearer token to every
// subsequent request.  The token is never refreshed.
func NewAuthenticatedClient(ctx context.Context, config *TestConfig, options ...Option) (*APIClient, error) {
	client, err := NewAPIClientWithConfig(config, options...)
	if err != nil {
		return nil, err
	}

	token, err := client.Authenticate(ctx, AuthenticationRequest{
		UserName: config.Username,
		Password: config.Password,
	})
	if err != nil {
		return nil, err
	}

	logToken(client.log, token)

	client.SetAuthToken(token)

	return client, nil
}

// TokenInfo is what the harness can tell about an access token without
// holding the signing key.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that has passed.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// InspectToken decodes the claims of a JWT without verifying its signature.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parsing access token: %w", err)
	}

	var info TokenInfo

	if subject, err := claims.GetSubject(); err == nil {
		info.Subject = subject
	}

	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		info.ExpiresAt = expiry.Time
	}

	return info, nil
}

func logToken(log logr.Logger, token string) {
	info, err := InspectToken(token)
	if err != nil {
		// Tokens are opaque as far as the service contract goes.
		log.V(1).Info("access token is not a JWT", "error", err.Error())
		return
	}

	if info.Expired(time.Now()) {
		log.Info("access token has already expired", "subject", info.Subject, "expiresAt", info.ExpiresAt)
		return
	}

	log.Info("authenticated", "subject", info.Subject, "expiresAt", info.ExpiresAt)
}
