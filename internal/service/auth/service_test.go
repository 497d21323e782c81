package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/auth"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/jwt"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/oauth"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
)

var testAuthDB *database.DB

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

func requireAuthDB(t *testing.T) {
	if testAuthDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	tables := []string{"users", "employees"}

	for _, table := range tables {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createAuthTestUser(t *testing.T, ctx context.Context, email string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	err := testAuthDB.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'Client', $1, $2, 'client', true, true, NOW(), NOW())
		RETURNING id
	`, email, hashedStr).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestAuthService(t *testing.T) auth.Service {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	employeeRepo := postgresql.NewEmployeeRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	googleService := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:3000/callback", []string{"email"})
	return NewAuthService(testAuthDB, userRepo, employeeRepo, jwtService, googleService)
}

func TestAuthService_Register_Success(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	svc := newTestAuthService(t)

	email := fmt.Sprintf("register-%d@example.com", time.Now().UnixNano())
	resp, err := svc.Register(ctx, auth.RegisterRequest{
		FirstName: "Nadia",
		LastName:  "Rahman",
		Email:     email,
		Password:  "SecurePass123!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, email, resp.User.Email)
	assert.Equal(t, "client", string(resp.User.Role))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	email := fmt.Sprintf("dupe-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, email)

	svc := newTestAuthService(t)

	_, err := svc.Register(ctx, auth.RegisterRequest{
		FirstName: "Nadia",
		LastName:  "Rahman",
		Email:     email,
		Password:  "SecurePass123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	email := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, email)

	svc := newTestAuthService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, email, resp.User.Email)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	email := fmt.Sprintf("invalidpass-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, email)

	svc := newTestAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "wrong-password"})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	svc := newTestAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshRoundTrip(t *testing.T) {
	requireAuthDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	email := fmt.Sprintf("refresh-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, email)

	svc := newTestAuthService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, email, refreshed.User.Email)
}
