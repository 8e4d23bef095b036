package ports

//go:generate mockgen -source=auth_ports.go -destination=mocks/auth_ports.go -package=mocks

import (
	"context"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

type TokenPayload struct {
	Email string
	Name  string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type AuthService interface {
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)      // returns access_token, refresh_token, error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) // returns new access_token and the refresh token to keep
	Logout(ctx context.Context, refreshToken string) error
	// Authenticate resolves an access token into the calling actor.
	Authenticate(ctx context.Context, accessToken string) (domain.Actor, error)
}
