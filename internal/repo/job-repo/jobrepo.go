package jobrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Job, error) {
	query := `
        SELECT id, contract_id, description, price, paid, payment_date, created_at
        FROM jobs
        WHERE id = $1
    `
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

func (r *Repository) ListUnpaidByContractIDs(ctx context.Context, contractIDs []int) ([]domain.Job, error) {
	if len(contractIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id, contract_id, description, price, paid, payment_date, created_at
        FROM jobs
        WHERE contract_id = ANY($1) AND paid IS NOT TRUE AND payment_date IS NULL
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, contractIDs)
	if err != nil {
		zap.L().Error("can't get unpaid jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate, &job.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate job rows", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

// MarkPaid flips the job to paid exactly once. A second caller gets
// domain.ErrAlreadyPaid even if it raced past the read-side check.
func (r *Repository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `
        UPDATE jobs
        SET paid = TRUE, payment_date = $2
        WHERE id = $1 AND paid IS NOT TRUE
    `
	tag, err := r.db.Exec(ctx, query, id, paidAt)
	if err != nil {
		zap.L().Error("failed to mark job as paid", zap.Int("jobID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPaid
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `
		INSERT INTO jobs (contract_id, description, price, paid, payment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, job.ContractID, job.Description, job.Price, job.Paid, job.PaymentDate).
		Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		zap.L().Error("can't save job", zap.Error(err))
		return nil, err
	}
	return job, nil
}
