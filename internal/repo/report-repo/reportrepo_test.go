package reportrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

var period = domain.DateRange{
	Start: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2020, 8, 20, 23, 59, 59, 0, time.UTC),
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_TopProfessions(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`GROUP BY p.profession ORDER BY total_earned DESC, p.profession ASC LIMIT $3`)

	t.Run("Professions ranked", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"profession", "total_earned"}).
			AddRow("Programmer", decimal.NewFromInt(2683)).
			AddRow("Musician", decimal.NewFromInt(21))
		mock.ExpectQuery(query).WithArgs(period.Start, period.End, 2).WillReturnRows(rows)

		got, err := repo.TopProfessions(context.Background(), period, 2)
		assert.NoError(t, err)
		assert.Equal(t, []domain.ProfessionEarnings{
			{Profession: "Programmer", TotalEarned: decimal.NewFromInt(2683)},
			{Profession: "Musician", TotalEarned: decimal.NewFromInt(21)},
		}, got)
	})

	t.Run("Empty range", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(period.Start, period.End, 1).
			WillReturnRows(pgxmock.NewRows([]string{"profession", "total_earned"}))

		got, err := repo.TopProfessions(context.Background(), period, 1)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(period.Start, period.End, 1).WillReturnError(errors.New("db error"))

		got, err := repo.TopProfessions(context.Background(), period, 1)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TopClients(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`GROUP BY p.id, p.first_name, p.last_name ORDER BY total_paid DESC, p.id ASC LIMIT $3`)

	t.Run("Clients ranked", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "total_paid"}).
			AddRow(4, "Ash", "Kethcum", decimal.NewFromInt(2020)).
			AddRow(2, "Mr", "Robot", decimal.NewFromInt(442))
		mock.ExpectQuery(query).WithArgs(period.Start, period.End, 2).WillReturnRows(rows)

		got, err := repo.TopClients(context.Background(), period, 2)
		assert.NoError(t, err)
		assert.Equal(t, []domain.ClientPayments{
			{ClientID: 4, FirstName: "Ash", LastName: "Kethcum", TotalPaid: decimal.NewFromInt(2020)},
			{ClientID: 2, FirstName: "Mr", LastName: "Robot", TotalPaid: decimal.NewFromInt(442)},
		}, got)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(period.Start, period.End, 2).WillReturnError(errors.New("db error"))

		got, err := repo.TopClients(context.Background(), period, 2)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
