package recipient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushgate/push-dispatcher/internal/model"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// Repository is the read-only recipient directory. Recipient rows are owned
// by the surrounding application; this subsystem only resolves them.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new recipient directory repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves a recipient by its ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (model.Recipient, error) {
	query := `
		SELECT id, tier
		FROM recipients
		WHERE id = $1;
    `

	var rec model.Recipient
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Recipient{}, ErrRecipientNotFound
		}

		return model.Recipient{}, fmt.Errorf("failed to find recipient: %w", err)
	}

	return rec, nil
}

// IDsByTier retrieves the IDs of every recipient on a subscription tier.
func (r *Repository) IDsByTier(ctx context.Context, tier string) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM recipients
		WHERE tier = $1;
    `

	rows, err := r.db.QueryContext(ctx, query, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients by tier: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
