package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/academic-polls/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/academic-polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
	"github.com/vncsmyrnk/academic-polls/internal/core/services"
)

const (
	testJWTSecret   = "test-secret"
	testRedirectURL = "https://example.com/redirect"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	SummarySvc  ports.SummaryService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

// setupTestApp starts Postgres, applies the embedded migrations and serves the
// full router. The verifier is only reached by the oauth routes.
func setupTestApp(t *testing.T, verifier ports.TokenVerifier) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.MigrateUp(dbURL))

	db, err := repo.Open(ctx, dbURL)
	require.NoError(t, err)

	if verifier == nil {
		verifier = &MockVerifier{}
	}

	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)
	pollRepo := repo.NewPollRepository(db)
	responseRepo := repo.NewResponseRepository(db)
	resultRepo := repo.NewPollResultRepository(db)
	auditRepo := repo.NewAuditRepository(db)

	authSvc := services.NewAuthService(userRepo, authRepo, verifier, services.AuthConfig{JWTSecret: testJWTSecret}, nil)
	pollSvc := services.NewPollService(pollRepo, responseRepo, auditRepo, nil)
	responseSvc := services.NewResponseService(pollRepo, responseRepo, auditRepo, nil)
	resultSvc := services.NewResultService(pollRepo, responseRepo)
	userSvc := services.NewUserService(userRepo, auditRepo, nil)
	summarySvc := services.NewSummaryService(pollRepo, resultRepo, 4, nil)

	router := handler.NewHandler(handler.Handlers{
		Auth: handler.NewAuthHandler(authSvc, testRedirectURL, handler.CookieConfig{
			SameSite:        http.SameSiteLaxMode,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		}),
		Polls:     handler.NewPollHandler(pollSvc, resultSvc),
		Responses: handler.NewResponseHandler(responseSvc),
		Users:     handler.NewUserHandler(userSvc),
	}, authSvc, handler.RouterConfig{AllowedOrigins: []string{"*"}})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		SummarySvc:  summarySvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createUserAndToken inserts a user with the role and signs an access token for it.
func (app *TestApp) createUserAndToken(t *testing.T, role domain.Role) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("%s-%s", userID, gofakeit.Email())
	_, err := app.DB.Exec("INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)", userID, email, gofakeit.Name(), string(role))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signedToken
}

func (app *TestApp) createBatch(t *testing.T, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := app.DB.QueryRow("INSERT INTO batches (name, degree, department) VALUES ($1, 'BSc', 'CS') RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// assignBatch puts an existing user into a batch directly in the database.
func (app *TestApp) assignBatch(t *testing.T, userID, batchID uuid.UUID) {
	t.Helper()

	_, err := app.DB.Exec("UPDATE users SET batch_id = $2 WHERE id = $1", userID, batchID)
	require.NoError(t, err)
}

// do sends a JSON request authenticated with the access_token cookie.
func (app *TestApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	resp, err := app.send(method, path, token, body)
	require.NoError(t, err)
	return resp
}

// send is do without assertions, safe to call from other goroutines.
func (app *TestApp) send(method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}

	return app.Client.Do(req)
}

// createPoll creates a poll through the API and fails the test on any error.
func (app *TestApp) createPoll(t *testing.T, token string, payload map[string]any) domain.Poll {
	t.Helper()

	resp := app.do(t, http.MethodPost, "/api/polls", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, readBody(resp))
	return decode[domain.Poll](t, resp)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// readBody drains the body for assertion messages.
func readBody(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return string(raw)
}

func pollPayload(options ...string) map[string]any {
	return map[string]any{
		"title":    gofakeit.Word() + " poll",
		"question": gofakeit.Question(),
		"options":  options,
	}
}
