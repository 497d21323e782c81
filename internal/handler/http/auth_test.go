package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/auth"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/jwt"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/oauth"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
	authService "github.com/Muhammedsajid10/spaBackend/internal/service/auth"
)

var testHandlerDB *database.DB

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testHandlerDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

// requireHandlerDB skips tests that need a live database when none is configured
func requireHandlerDB(t *testing.T) {
	if testHandlerDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncateHandlerTables(t *testing.T, ctx context.Context) {
	tables := []string{"users", "employees"}

	for _, table := range tables {
		_, err := testHandlerDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createHandlerTestUser(t *testing.T, ctx context.Context, email string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'Client', $1, $2, 'client', true, true, NOW(), NOW())
		RETURNING id
	`, email, hashedStr).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createTestAuthHandler(t *testing.T) AuthHandler {
	userRepo := postgresql.NewUserRepository(testHandlerDB)
	employeeRepo := postgresql.NewEmployeeRepository(testHandlerDB)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	// Real GoogleService - OAuth endpoints will fail but that's OK for handler tests
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:3000/callback", []string{"email"})

	authSvc := authService.NewAuthService(testHandlerDB, userRepo, employeeRepo, jwtSvc, googleSvc)
	return NewAuthHandler(jwtSvc, authSvc, googleSvc)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	handler := createTestAuthHandler(t)

	testEmail := fmt.Sprintf("register-%d@example.com", time.Now().UnixNano())
	registerReq := auth.RegisterRequest{
		FirstName: "Amel",
		LastName:  "George",
		Email:     testEmail,
		Password:  "SecurePass123!",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp["success"].(bool))
	assert.NotNil(t, resp["data"])

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["accessToken"])
	assert.Equal(t, "Bearer", data["tokenType"])

	userData := data["user"].(map[string]interface{})
	assert.Equal(t, testEmail, userData["email"])
	assert.Equal(t, "client", userData["role"])

	// Refresh token travels as an httpOnly cookie, not in the body
	cookies := w.Result().Cookies()
	var foundRefresh bool
	for _, c := range cookies {
		if c.Name == "refresh_token" {
			foundRefresh = true
			assert.True(t, c.HttpOnly)
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, foundRefresh)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	handler := createTestAuthHandler(t)

	registerReq := auth.RegisterRequest{
		FirstName: "Amel",
		LastName:  "George",
		Email:     "short@example.com",
		Password:  "short",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	testEmail := fmt.Sprintf("dupe-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, testEmail)

	handler := createTestAuthHandler(t)

	registerReq := auth.RegisterRequest{
		FirstName: "Amel",
		LastName:  "George",
		Email:     testEmail,
		Password:  "SecurePass123!",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	testEmail := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, testEmail)

	handler := createTestAuthHandler(t)

	loginReq := auth.LoginRequest{Email: testEmail, Password: "password123"}
	body, _ := json.Marshal(loginReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["accessToken"])
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	testEmail := fmt.Sprintf("wrongpass-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, testEmail)

	handler := createTestAuthHandler(t)

	loginReq := auth.LoginRequest{Email: testEmail, Password: "not-the-password"}
	body, _ := json.Marshal(loginReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	requireHandlerDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx)

	handler := createTestAuthHandler(t)

	loginReq := auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}
	body, _ := json.Marshal(loginReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
