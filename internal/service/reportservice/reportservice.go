package reportservice

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

const (
	DefaultClientsLimit = 2
	MaxClientsLimit     = 100
)

type Repo interface {
	TopProfessions(ctx context.Context, period domain.DateRange, limit int) ([]domain.ProfessionEarnings, error)
	TopClients(ctx context.Context, period domain.DateRange, limit int) ([]domain.ClientPayments, error)
}

type Service struct {
	reportRepo   Repo
	clientsLimit int
}

func New(reportRepo Repo, clientsLimit int) *Service {
	if clientsLimit <= 0 || clientsLimit > MaxClientsLimit {
		clientsLimit = DefaultClientsLimit
	}
	return &Service{
		reportRepo:   reportRepo,
		clientsLimit: clientsLimit,
	}
}

func (s *Service) BestProfession(ctx context.Context, period domain.DateRange) (*domain.ProfessionEarnings, error) {
	rows, err := s.reportRepo.TopProfessions(ctx, period, 1)
	if err != nil {
		zap.L().Error("failed to get best profession", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}
	return &rows[0], nil
}

// BestClients falls back to the configured limit when limit is zero.
func (s *Service) BestClients(ctx context.Context, period domain.DateRange, limit int) ([]domain.ClientPayments, error) {
	if limit == 0 {
		limit = s.clientsLimit
	}
	if limit < 0 || limit > MaxClientsLimit {
		return nil, domain.ErrInvalidLimit
	}

	rows, err := s.reportRepo.TopClients(ctx, period, limit)
	if err != nil {
		zap.L().Error("failed to get best clients", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}
	return rows, nil
}
