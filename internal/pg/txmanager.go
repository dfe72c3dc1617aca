package pg

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Manager struct {
	pool Pool
	opts pgx.TxOptions
}

// NewTXManager returns a manager whose transactions run at SERIALIZABLE isolation.
func NewTXManager(pool Pool) *Manager {
	return &Manager{
		pool: pool,
		opts: pgx.TxOptions{IsoLevel: pgx.Serializable},
	}
}

// Begin runs fn inside a transaction. Nested calls join the outer transaction.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		zap.L().Error("failed to begin transaction", zap.Error(err))
		return translate(err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return translate(err)
	}

	if err := tx.Commit(ctx); err != nil {
		zap.L().Error("failed to commit transaction", zap.Error(err))
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		}
	}
	return err
}
