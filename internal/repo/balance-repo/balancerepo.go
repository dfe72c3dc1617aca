package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

// Debit takes amount from a client balance. It refuses to overdraw, so the
// funds check and the write happen in one statement.
func (r *Repository) Debit(ctx context.Context, clientID int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE profiles
		SET balance = balance - $1
		WHERE id = $2 AND type = 'client' AND balance >= $1
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, clientID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to debit balance", zap.Int("profileID", clientID), zap.Error(err))
		return decimal.Decimal{}, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, profileID int, typ domain.ProfileType, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE profiles
		SET balance = balance + $1
		WHERE id = $2 AND type = $3
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, profileID, string(typ)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if typ == domain.ProfileClient {
				return decimal.Decimal{}, domain.ErrClientNotFound
			}
			return decimal.Decimal{}, domain.ErrContractorNotFound
		}
		zap.L().Error("failed to credit balance", zap.Int("profileID", profileID), zap.Error(err))
		return decimal.Decimal{}, err
	}
	return balance, nil
}
