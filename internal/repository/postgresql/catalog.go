package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type catalogRepositoryImpl struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.Repository {
	return &catalogRepositoryImpl{db: db}
}

// CreateCategory implements catalog.Repository.
func (r *catalogRepositoryImpl) CreateCategory(ctx context.Context, c *catalog.Category) (*catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO service_categories (name, display_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	created := *c
	err := q.QueryRow(ctx, query, c.Name, c.DisplayName).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, catalog.ErrCategoryNameExists
		}
		return nil, err
	}

	return &created, nil
}

// GetCategoryByID implements catalog.Repository.
func (r *catalogRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (*catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	var c catalog.Category
	err := q.QueryRow(ctx, `SELECT id, name, display_name, created_at FROM service_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.DisplayName, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetCategoryByName implements catalog.Repository.
func (r *catalogRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (*catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	var c catalog.Category
	err := q.QueryRow(ctx, `SELECT id, name, display_name, created_at FROM service_categories WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.DisplayName, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListCategories implements catalog.Repository.
func (r *catalogRepositoryImpl) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, display_name, created_at FROM service_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// DeleteCategory implements catalog.Repository.
func (r *catalogRepositoryImpl) DeleteCategory(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM service_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return catalog.ErrCategoryInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

const serviceColumns = `
	s.id, s.category_id, s.name, s.description, s.duration_minutes, s.price,
	s.currency, s.is_active, s.created_at, s.updated_at, c.display_name
`

func scanService(row pgx.Row) (*catalog.Service, error) {
	var s catalog.Service
	err := row.Scan(
		&s.ID,
		&s.CategoryID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Currency,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateService implements catalog.Repository.
func (r *catalogRepositoryImpl) CreateService(ctx context.Context, s *catalog.Service) (*catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO services (category_id, name, description, duration_minutes, price, currency, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	created := *s
	err := q.QueryRow(ctx, query,
		s.CategoryID,
		s.Name,
		s.Description,
		s.DurationMinutes,
		s.Price,
		s.Currency,
		s.IsActive,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}

	return &created, nil
}

// GetServiceByID implements catalog.Repository.
func (r *catalogRepositoryImpl) GetServiceByID(ctx context.Context, id string) (*catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + serviceColumns + `
		FROM services s
		JOIN service_categories c ON c.id = s.category_id
		WHERE s.id = $1
	`

	s, err := scanService(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListServices implements catalog.Repository.
func (r *catalogRepositoryImpl) ListServices(ctx context.Context, categoryID string, activeOnly bool) ([]catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + serviceColumns + `
		FROM services s
		JOIN service_categories c ON c.id = s.category_id
		WHERE 1=1
	`
	args := []interface{}{}
	if categoryID != "" {
		query += ` AND s.category_id = $1`
		args = append(args, categoryID)
	}
	if activeOnly {
		query += ` AND s.is_active = TRUE`
	}
	query += ` ORDER BY c.name, s.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]catalog.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}

	return services, rows.Err()
}

// UpdateService implements catalog.Repository.
func (r *catalogRepositoryImpl) UpdateService(ctx context.Context, s *catalog.Service) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE services
		SET category_id = $1, name = $2, description = $3, duration_minutes = $4,
			price = $5, currency = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		s.CategoryID,
		s.Name,
		s.Description,
		s.DurationMinutes,
		s.Price,
		s.Currency,
		s.IsActive,
		s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrServiceNotFound
	}
	return nil
}

// CountServicesInCategory implements catalog.Repository.
func (r *catalogRepositoryImpl) CountServicesInCategory(ctx context.Context, categoryID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
