package contractrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
)

const columns = `id, terms, status, client_id, contractor_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT ` + columns + `
        FROM contracts
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindForProfile returns the contract only when the profile takes part in it.
func (r *Repository) FindForProfile(ctx context.Context, id, profileID int) (*domain.Contract, error) {
	query := `
        SELECT ` + columns + `
        FROM contracts
        WHERE id = $1 AND (client_id = $2 OR contractor_id = $2)
    `
	return r.findOne(ctx, query, id, profileID)
}

func (r *Repository) ListActiveByProfile(ctx context.Context, profileID int) ([]domain.Contract, error) {
	query := `
        SELECT ` + columns + `
        FROM contracts
        WHERE status <> 'terminated' AND (client_id = $1 OR contractor_id = $1)
        ORDER BY id
    `
	return r.findMany(ctx, query, profileID)
}

func (r *Repository) ListInProgressByProfile(ctx context.Context, profileID int) ([]domain.Contract, error) {
	query := `
        SELECT ` + columns + `
        FROM contracts
        WHERE status = 'in_progress' AND (client_id = $1 OR contractor_id = $1)
        ORDER BY id
    `
	return r.findMany(ctx, query, profileID)
}

func (r *Repository) ListActiveByClient(ctx context.Context, clientID int) ([]domain.Contract, error) {
	query := `
        SELECT ` + columns + `
        FROM contracts
        WHERE status <> 'terminated' AND client_id = $1
        ORDER BY id
    `
	return r.findMany(ctx, query, clientID)
}

func (r *Repository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	query := `
		INSERT INTO contracts (terms, status, client_id, contractor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		contract.Terms, string(contract.Status), contract.ClientID, contract.ContractorID,
	).Scan(&contract.ID, &contract.CreatedAt)
	if err != nil {
		zap.L().Error("can't save contract", zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&contract.ID, &contract.Terms, &contract.Status, &contract.ClientID, &contract.ContractorID, &contract.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find contract", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get contracts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var contract domain.Contract
		err := rows.Scan(&contract.ID, &contract.Terms, &contract.Status, &contract.ClientID, &contract.ContractorID, &contract.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate contract rows", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}
