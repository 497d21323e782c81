package catalog

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
)

// The use-case interface and the treatment entity live side by side in the
// catalog package under different names.
var _ catalog.CatalogService = (*CatalogServiceImpl)(nil)
var _ = catalog.Service{}

var testCatalogDB *database.DB

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testCatalogDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

func requireCatalogDB(t *testing.T) {
	if testCatalogDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncateCatalogTables(t *testing.T, ctx context.Context) {
	tables := []string{"services", "service_categories"}

	for _, table := range tables {
		_, err := testCatalogDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func newTestCatalogService(t *testing.T) catalog.CatalogService {
	return NewCatalogService(testCatalogDB, postgresql.NewCatalogRepository(testCatalogDB))
}

func TestCreateServiceUnderCategory(t *testing.T) {
	requireCatalogDB(t)
	ctx := context.Background()
	truncateCatalogTables(t, ctx)

	svc := newTestCatalogService(t)

	category, err := svc.CreateCategory(ctx, catalog.CreateCategoryRequest{
		Name:        "massage",
		DisplayName: "Massage",
	})
	require.NoError(t, err)

	created, err := svc.CreateService(ctx, catalog.CreateServiceRequest{
		CategoryID:      category.ID,
		Name:            "Swedish Massage",
		DurationMinutes: 60,
		Price:           410,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, created.Currency)
	assert.True(t, created.IsActive)

	found, err := svc.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Swedish Massage", found.Name)
	assert.Equal(t, category.ID, found.CategoryID)
}

func TestCreateService_UnknownCategory(t *testing.T) {
	requireCatalogDB(t)
	ctx := context.Background()
	truncateCatalogTables(t, ctx)

	svc := newTestCatalogService(t)

	_, err := svc.CreateService(ctx, catalog.CreateServiceRequest{
		CategoryID:      "00000000-0000-0000-0000-000000000000",
		Name:            "Orphan Treatment",
		DurationMinutes: 30,
		Price:           100,
	})
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestUpdateService_Deactivate(t *testing.T) {
	requireCatalogDB(t)
	ctx := context.Background()
	truncateCatalogTables(t, ctx)

	svc := newTestCatalogService(t)

	category, err := svc.CreateCategory(ctx, catalog.CreateCategoryRequest{Name: "facial", DisplayName: "Facial"})
	require.NoError(t, err)
	created, err := svc.CreateService(ctx, catalog.CreateServiceRequest{
		CategoryID:      category.ID,
		Name:            "Hydrating Facial",
		DurationMinutes: 60,
		Price:           380,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateService(ctx, created.ID, catalog.UpdateServiceRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	listed, err := svc.ListServices(ctx, category.ID, true)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
