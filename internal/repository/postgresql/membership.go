package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) membership.Repository {
	return &membershipRepositoryImpl{db: db}
}

const membershipColumns = `
	id, name, description, service_type, selected_services, number_of_sessions,
	payment_type, price, currency, validity_period, validity_unit, client_id,
	status, start_date, end_date, purchase_date, sessions_used, last_used_date,
	is_active, is_template, created_by, notes, created_at, updated_at
`

func scanMembership(row pgx.Row) (*membership.Membership, error) {
	var m membership.Membership
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.ServiceType,
		&m.SelectedServices,
		&m.NumberOfSessions,
		&m.PaymentType,
		&m.Price,
		&m.Currency,
		&m.ValidityPeriod,
		&m.ValidityUnit,
		&m.ClientID,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.PurchaseDate,
		&m.SessionsUsed,
		&m.LastUsedDate,
		&m.IsActive,
		&m.IsTemplate,
		&m.CreatedBy,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.SelectedServices == nil {
		m.SelectedServices = []membership.SelectedService{}
	}
	return &m, nil
}

// Create implements membership.Repository.
func (r *membershipRepositoryImpl) Create(ctx context.Context, m *membership.Membership) (*membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memberships (
			name, description, service_type, selected_services, number_of_sessions,
			payment_type, price, currency, validity_period, validity_unit, client_id,
			status, start_date, end_date, purchase_date, sessions_used, last_used_date,
			is_active, is_template, created_by, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at
	`

	created := *m
	err := q.QueryRow(ctx, query,
		m.Name,
		m.Description,
		m.ServiceType,
		m.SelectedServices,
		m.NumberOfSessions,
		m.PaymentType,
		m.Price,
		m.Currency,
		m.ValidityPeriod,
		m.ValidityUnit,
		m.ClientID,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.PurchaseDate,
		m.SessionsUsed,
		m.LastUsedDate,
		m.IsActive,
		m.IsTemplate,
		m.CreatedBy,
		m.Notes,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetByID implements membership.Repository.
func (r *membershipRepositoryImpl) GetByID(ctx context.Context, id string) (*membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMembership(q.QueryRow(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, membership.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListPlans implements membership.Repository.
func (r *membershipRepositoryImpl) ListPlans(ctx context.Context) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE is_template = TRUE AND is_active = TRUE ORDER BY price`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

// ListByClient implements membership.Repository.
func (r *membershipRepositoryImpl) ListByClient(ctx context.Context, clientID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE client_id = $1 ORDER BY purchase_date DESC`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

func collectMemberships(rows pgx.Rows) ([]membership.Membership, error) {
	memberships := make([]membership.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, *m)
	}
	return memberships, rows.Err()
}

// Update implements membership.Repository.
func (r *membershipRepositoryImpl) Update(ctx context.Context, m *membership.Membership) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE memberships
		SET status = $1, sessions_used = $2, last_used_date = $3, is_active = $4,
			notes = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		m.Status,
		m.SessionsUsed,
		m.LastUsedDate,
		m.IsActive,
		m.Notes,
		m.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return membership.ErrNotFound
	}
	return nil
}

// ExpireOlderThan implements membership.Repository.
func (r *membershipRepositoryImpl) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE memberships
		SET status = $1, updated_at = NOW()
		WHERE is_template = FALSE
		  AND end_date IS NOT NULL AND end_date < $2
		  AND status = $3
	`

	tag, err := q.Exec(ctx, query, membership.StatusExpired, now, membership.StatusActive)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
