package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type giftCardRepositoryImpl struct {
	db *database.DB
}

func NewGiftCardRepository(db *database.DB) giftcard.Repository {
	return &giftCardRepositoryImpl{db: db}
}

const giftCardColumns = `
	id, name, description, value, price, currency, code, status,
	remaining_value, purchased_by, purchase_date, purchase_price,
	recipient_name, recipient_email, recipient_phone, personal_message,
	validity_months, expiry_date, is_active, is_template, created_by, notes,
	usage_history, created_at, updated_at
`

func scanGiftCard(row pgx.Row) (*giftcard.GiftCard, error) {
	var card giftcard.GiftCard
	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.Description,
		&card.Value,
		&card.Price,
		&card.Currency,
		&card.Code,
		&card.Status,
		&card.RemainingValue,
		&card.PurchasedBy,
		&card.PurchaseDate,
		&card.PurchasePrice,
		&card.RecipientName,
		&card.RecipientEmail,
		&card.RecipientPhone,
		&card.PersonalMessage,
		&card.ValidityMonths,
		&card.ExpiryDate,
		&card.IsActive,
		&card.IsTemplate,
		&card.CreatedBy,
		&card.Notes,
		&card.UsageHistory,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if card.UsageHistory == nil {
		card.UsageHistory = []giftcard.Usage{}
	}
	return &card, nil
}

// Create implements giftcard.Repository.
func (r *giftCardRepositoryImpl) Create(ctx context.Context, card *giftcard.GiftCard) (*giftcard.GiftCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO gift_cards (
			name, description, value, price, currency, code, status,
			remaining_value, purchased_by, purchase_date, purchase_price,
			recipient_name, recipient_email, recipient_phone, personal_message,
			validity_months, expiry_date, is_active, is_template, created_by, notes,
			usage_history
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at
	`

	created := *card
	err := q.QueryRow(ctx, query,
		card.Name,
		card.Description,
		card.Value,
		card.Price,
		card.Currency,
		card.Code,
		card.Status,
		card.RemainingValue,
		card.PurchasedBy,
		card.PurchaseDate,
		card.PurchasePrice,
		card.RecipientName,
		card.RecipientEmail,
		card.RecipientPhone,
		card.PersonalMessage,
		card.ValidityMonths,
		card.ExpiryDate,
		card.IsActive,
		card.IsTemplate,
		card.CreatedBy,
		card.Notes,
		card.UsageHistory,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, giftcard.ErrCodeExists
		}
		return nil, err
	}

	return &created, nil
}

// GetByID implements giftcard.Repository.
func (r *giftCardRepositoryImpl) GetByID(ctx context.Context, id string) (*giftcard.GiftCard, error) {
	q := GetQuerier(ctx, r.db)

	card, err := scanGiftCard(q.QueryRow(ctx, `SELECT `+giftCardColumns+` FROM gift_cards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, giftcard.ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

// GetByCode implements giftcard.Repository.
func (r *giftCardRepositoryImpl) GetByCode(ctx context.Context, code string) (*giftcard.GiftCard, error) {
	q := GetQuerier(ctx, r.db)

	card, err := scanGiftCard(q.QueryRow(ctx, `SELECT `+giftCardColumns+` FROM gift_cards WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, giftcard.ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

// ListTemplates implements giftcard.Repository.
func (r *giftCardRepositoryImpl) ListTemplates(ctx context.Context) ([]giftcard.GiftCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + giftCardColumns + ` FROM gift_cards WHERE is_template = TRUE AND is_active = TRUE ORDER BY value`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGiftCards(rows)
}

// ListByPurchaser implements giftcard.Repository.
func (r *giftCardRepositoryImpl) ListByPurchaser(ctx context.Context, userID string) ([]giftcard.GiftCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + giftCardColumns + ` FROM gift_cards WHERE purchased_by = $1 ORDER BY purchase_date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGiftCards(rows)
}

func collectGiftCards(rows pgx.Rows) ([]giftcard.GiftCard, error) {
	cards := make([]giftcard.GiftCard, 0)
	for rows.Next() {
		card, err := scanGiftCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// Update implements giftcard.Repository.
func (r *giftCardRepositoryImpl) Update(ctx context.Context, card *giftcard.GiftCard) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE gift_cards
		SET status = $1, remaining_value = $2, is_active = $3, notes = $4,
			usage_history = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		card.Status,
		card.RemainingValue,
		card.IsActive,
		card.Notes,
		card.UsageHistory,
		card.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return giftcard.ErrNotFound
	}
	return nil
}

// AddUsage implements giftcard.Repository.
func (r *giftCardRepositoryImpl) AddUsage(ctx context.Context, cardID string, usage giftcard.Usage) error {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(usage)
	if err != nil {
		return err
	}

	query := `
		UPDATE gift_cards
		SET usage_history = COALESCE(usage_history, '[]'::jsonb) || $1::jsonb, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, payload, cardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return giftcard.ErrNotFound
	}
	return nil
}

// ExpireOlderThan implements giftcard.Repository.
func (r *giftCardRepositoryImpl) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE gift_cards
		SET status = $1, updated_at = NOW()
		WHERE is_template = FALSE
		  AND expiry_date < $2
		  AND status IN ($3, $4)
	`

	tag, err := q.Exec(ctx, query,
		giftcard.StatusExpired,
		now,
		giftcard.StatusActive,
		giftcard.StatusPartiallyUsed,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Stats implements giftcard.Repository.
func (r *giftCardRepositoryImpl) Stats(ctx context.Context) (*giftcard.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	stats := &giftcard.StatsResponse{ByStatus: make(map[string]int64)}

	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(value), 0), COALESCE(SUM(remaining_value), 0)
		FROM gift_cards
		WHERE is_template = FALSE
	`).Scan(&stats.TotalSold, &stats.TotalValue, &stats.OutstandingValue)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM gift_cards WHERE is_template = FALSE GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}

	return stats, rows.Err()
}
