package reportrepo

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

func (r *Repository) TopProfessions(ctx context.Context, period domain.DateRange, limit int) ([]domain.ProfessionEarnings, error) {
	query := `
        SELECT p.profession, SUM(j.price) AS total_earned
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.contractor_id
        WHERE j.paid = TRUE AND j.payment_date BETWEEN $1 AND $2
        GROUP BY p.profession
        ORDER BY total_earned DESC, p.profession ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, period.Start, period.End, limit)
	if err != nil {
		zap.L().Error("can't aggregate earnings by profession", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProfessionEarnings
	for rows.Next() {
		var row domain.ProfessionEarnings
		if err := rows.Scan(&row.Profession, &row.TotalEarned); err != nil {
			zap.L().Error("can't scan profession earnings row", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *Repository) TopClients(ctx context.Context, period domain.DateRange, limit int) ([]domain.ClientPayments, error) {
	query := `
        SELECT p.id, p.first_name, p.last_name, SUM(j.price) AS total_paid
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.client_id
        WHERE j.paid = TRUE AND j.payment_date BETWEEN $1 AND $2
        GROUP BY p.id, p.first_name, p.last_name
        ORDER BY total_paid DESC, p.id ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, period.Start, period.End, limit)
	if err != nil {
		zap.L().Error("can't aggregate payments by client", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClientPayments
	for rows.Next() {
		var row domain.ClientPayments
		if err := rows.Scan(&row.ClientID, &row.FirstName, &row.LastName, &row.TotalPaid); err != nil {
			zap.L().Error("can't scan client payments row", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
