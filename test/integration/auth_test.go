package integration

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

// MockVerifier for testing
type MockVerifier struct {
	email string
	name  string
}

func (v *MockVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	if token == "valid_token" && v.email != "" {
		return &ports.TokenPayload{Email: v.email, Name: v.name}, nil
	}
	return nil, assert.AnError
}

func cookieValue(resp *http.Response, name string) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, &MockVerifier{email: "test@example.com", name: "Test User"})
	defer app.Teardown(t)

	// 1. Callback with Valid Credential
	form := url.Values{}
	form.Add("credential", "valid_token")

	// Configure client to NOT follow redirects to check cookies and location
	app.Client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := app.Client.PostForm(app.Server.URL+"/oauth/callback", form)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, testRedirectURL, location.String())

	accessToken := cookieValue(resp, "access_token")
	refreshToken := cookieValue(resp, "refresh_token")
	assert.NotEmpty(t, accessToken, "access_token cookie should be set")
	assert.NotEmpty(t, refreshToken, "refresh_token cookie should be set")

	// New accounts start as students.
	var role string
	require.NoError(t, app.DB.QueryRow("SELECT role FROM users WHERE email = $1", "test@example.com").Scan(&role))
	assert.Equal(t, string(domain.RoleStudent), role)

	resp = app.do(t, http.MethodGet, "/api/me", accessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[domain.User](t, resp)
	assert.Equal(t, "test@example.com", me.Email)
	assert.Equal(t, "Test User", me.Name)

	// 2. Refresh Token
	// iat has second precision; wait so the new token differs
	time.Sleep(1200 * time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/oauth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	newAccessToken := cookieValue(resp, "access_token")
	assert.NotEmpty(t, newAccessToken, "new access_token should be returned")
	assert.NotEqual(t, accessToken, newAccessToken, "access token should be different (rotated/new)")

	// 3. Logout revokes the refresh token
	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/oauth/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/oauth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthFlow_Invalid(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, &MockVerifier{email: "test@example.com"})
	defer app.Teardown(t)

	// Invalid Credential
	form := url.Values{}
	form.Add("credential", "bad_token")

	resp, err := app.Client.PostForm(app.Server.URL+"/oauth/callback", form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Invalid Refresh Token
	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/oauth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "garbage"})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Forged access token
	resp = app.do(t, http.MethodGet, "/api/me", "not.a.jwt", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
