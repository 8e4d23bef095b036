package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
	"google.golang.org/api/idtoken"
)

type GoogleVerifier struct{}

func NewVerifier() ports.TokenVerifier {
	return &GoogleVerifier{}
}

// Verify validates a Google ID token against the client ID and extracts the
// identity claims used to find or create the user.
func (v *GoogleVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate id token: %w", err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email not found in claims")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email not verified")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}
	return &ports.TokenPayload{Email: email, Name: name}, nil
}
