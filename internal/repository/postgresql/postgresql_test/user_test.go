package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
)

var testDB *database.DB

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

// requireDB skips tests that need a live database when none is configured
func requireDB(t *testing.T) {
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func setupTestData(t *testing.T) {
	ctx := context.Background()
	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	err = tx.Commit(ctx)
	require.NoError(t, err)
}

func createTestUser(t *testing.T, ctx context.Context, email string) user.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	var newUser user.User
	err := testDB.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'Client', $1, $2, 'client', true, true, NOW(), NOW())
		RETURNING id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at
	`, email, hashedStr).Scan(
		&newUser.ID, &newUser.FirstName, &newUser.LastName, &newUser.Email, &newUser.PasswordHash,
		&newUser.Role, &newUser.EmailVerified, &newUser.IsActive,
		&newUser.CreatedAt, &newUser.UpdatedAt,
	)
	require.NoError(t, err)
	return newUser
}

func TestUserRepository_Create(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	created, err := repo.Create(ctx, user.User{
		FirstName:    "Sara",
		LastName:     "Thomas",
		Email:        "sara@example.com",
		PasswordHash: &hash,
		Role:         user.RoleClient,
		IsActive:     true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "sara@example.com", created.Email)
	assert.Equal(t, user.RoleClient, created.Role)
	assert.True(t, created.IsActive)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	seeded := createTestUser(t, ctx, "lookup@example.com")

	repo := postgresql.NewUserRepository(testDB)
	found, err := repo.GetByEmail(ctx, "lookup@example.com")
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, seeded.Email, found.Email)
	assert.Nil(t, found.EmployeeID)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(testDB)
	_, err := repo.GetByEmail(ctx, "missing@example.com")

	require.Error(t, err)
	assert.True(t, postgresql.IsNotFound(err))
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	createTestUser(t, ctx, "exists@example.com")

	repo := postgresql.NewUserRepository(testDB)

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	seeded := createTestUser(t, ctx, "pwchange@example.com")

	repo := postgresql.NewUserRepository(testDB)

	newHash, _ := bcrypt.GenerateFromPassword([]byte("newpassword456"), bcrypt.DefaultCost)
	err := repo.UpdatePassword(ctx, seeded.ID, string(newHash))
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*updated.PasswordHash), []byte("newpassword456")))
}

func TestUserRepository_SetActive(t *testing.T) {
	requireDB(t)
	setupTestData(t)
	ctx := context.Background()

	seeded := createTestUser(t, ctx, "deactivate@example.com")

	repo := postgresql.NewUserRepository(testDB)

	err := repo.SetActive(ctx, seeded.ID, false)
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
