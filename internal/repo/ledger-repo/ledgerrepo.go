package ledgerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, entries []domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (transfer_id, profile_id, job_id, kind, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, e := range entries {
		_, err := r.db.Exec(ctx, query, e.TransferID, e.ProfileID, e.JobID, string(e.Kind), e.Amount, e.CreatedAt)
		if err != nil {
			zap.L().Error("can't save ledger entry", zap.String("transferID", e.TransferID.String()), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) ListByProfileID(ctx context.Context, profileID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, transfer_id, profile_id, job_id, kind, amount, created_at
        FROM ledger_entries
        WHERE profile_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.TransferID, &e.ProfileID, &e.JobID, &e.Kind, &e.Amount, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ledger rows", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
