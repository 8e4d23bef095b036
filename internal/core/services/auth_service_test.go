package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports/mocks"
)

const testSecret = "unit-test-secret"

type authDeps struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockAuthRepository
	verifier *mocks.MockTokenVerifier
}

func newTestAuthService(t *testing.T) (*AuthService, authDeps) {
	ctrl := gomock.NewController(t)
	deps := authDeps{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockAuthRepository(ctrl),
		verifier: mocks.NewMockTokenVerifier(ctrl),
	}
	svc := NewAuthService(deps.users, deps.tokens, deps.verifier, AuthConfig{
		JWTSecret:      testSecret,
		GoogleClientID: "client-id",
	}, discardLogger())
	return svc, deps
}

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthService_LoginCreatesStudent(t *testing.T) {
	svc, deps := newTestAuthService(t)
	email := gofakeit.Email()
	userID := uuid.New()

	deps.verifier.EXPECT().Verify(gomock.Any(), "google-token", "client-id").Return(&ports.TokenPayload{Email: email, Name: "Ada"}, nil)
	deps.users.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
	deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		assert.Equal(t, domain.RoleStudent, u.Role)
		assert.Equal(t, "Ada", u.Name)
		u.ID = userID
		return nil
	})
	deps.tokens.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rt *domain.RefreshToken) error {
		assert.Equal(t, userID, rt.UserID)
		assert.Len(t, rt.TokenHash, 64)
		assert.True(t, rt.ExpiresAt.After(time.Now()))
		return nil
	})

	access, refresh, err := svc.LoginWithGoogle(context.Background(), "google-token")
	require.NoError(t, err)
	assert.NotEmpty(t, refresh)

	// The issued token authenticates as the stored user with the current role.
	deps.users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: email, Role: domain.RoleProfessor}, nil)

	actor, err := svc.Authenticate(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: userID, Role: domain.RoleProfessor}, actor)
}

func TestAuthService_LoginRejectsBadGoogleToken(t *testing.T) {
	svc, deps := newTestAuthService(t)
	deps.verifier.EXPECT().Verify(gomock.Any(), "bad", "client-id").Return(nil, errors.New("invalid"))

	_, _, err := svc.LoginWithGoogle(context.Background(), "bad")
	assert.Error(t, err)
}

func TestAuthService_AuthenticateRejects(t *testing.T) {
	userID := uuid.New()
	valid := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
		kind  error
	}{
		{
			name:  "empty",
			token: func(*testing.T) string { return "" },
			kind:  domain.ErrUnauthenticated,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "abc.def.ghi" },
			kind:  domain.ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, []byte("other"), valid)
			},
			kind: domain.ErrInvalidToken,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid)
			},
			kind: domain.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"sub": userID.String(),
					"exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
			kind: domain.ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": userID.String()})
			},
			kind: domain.ErrInvalidToken,
		},
		{
			name: "subject not a uuid",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"sub": "42",
					"exp": time.Now().Add(time.Minute).Unix(),
				})
			},
			kind: domain.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)
			_, err := svc.Authenticate(context.Background(), tt.token(t))
			assert.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestAuthService_AuthenticateDeletedUser(t *testing.T) {
	svc, deps := newTestAuthService(t)
	userID := uuid.New()
	token := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	deps.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

	_, err := svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		svc, deps := newTestAuthService(t)
		deps.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), svc.hashToken("rt")).Return(&domain.RefreshToken{
			ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		deps.users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleStudent}, nil)

		access, refresh, err := svc.RefreshAccessToken(context.Background(), "rt")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.Equal(t, "rt", refresh)
	})

	t.Run("revoked", func(t *testing.T) {
		svc, deps := newTestAuthService(t)
		deps.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&domain.RefreshToken{
			UserID: userID, ExpiresAt: time.Now().Add(time.Hour), Revoked: true,
		}, nil)

		_, _, err := svc.RefreshAccessToken(context.Background(), "rt")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		svc, deps := newTestAuthService(t)
		deps.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&domain.RefreshToken{
			UserID: userID, ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

		_, _, err := svc.RefreshAccessToken(context.Background(), "rt")
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		svc, deps := newTestAuthService(t)
		deps.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, _, err := svc.RefreshAccessToken(context.Background(), "rt")
		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, deps := newTestAuthService(t)
	tokenID := uuid.New()

	deps.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), svc.hashToken("rt")).Return(&domain.RefreshToken{ID: tokenID}, nil)
	deps.tokens.EXPECT().RevokeRefreshToken(gomock.Any(), tokenID.String()).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "rt"))
}
