package contractservice

//go:generate mockgen -source=contractservice.go -destination=mock_contractservice.go -package=contractservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
	FindForProfile(ctx context.Context, id, profileID int) (*domain.Contract, error)
	ListActiveByProfile(ctx context.Context, profileID int) ([]domain.Contract, error)
	ListInProgressByProfile(ctx context.Context, profileID int) ([]domain.Contract, error)
	ListActiveByClient(ctx context.Context, clientID int) ([]domain.Contract, error)
}

type Service struct {
	contractRepo Repo
}

func New(contractRepo Repo) *Service {
	return &Service{
		contractRepo: contractRepo,
	}
}

// GetContract hides contracts the profile does not take part in: they look
// exactly like contracts that do not exist.
func (s *Service) GetContract(ctx context.Context, profileID, contractID int) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindForProfile(ctx, contractID, profileID)
	if err != nil {
		zap.L().Error("failed to get contract", zap.Int("contractID", contractID), zap.Error(err))
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrContractNotFound
	}
	return contract, nil
}

func (s *Service) ListActiveContracts(ctx context.Context, profileID int) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.ListActiveByProfile(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to list contracts", zap.Int("profileID", profileID), zap.Error(err))
		return nil, err
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}
