package jobservice

//go:generate mockgen -source=jobservice.go -destination=mock_jobservice.go -package=jobservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
	"github.com/GlebRadaev/contracthub/internal/service/balanceservice"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Job, error)
	ListUnpaidByContractIDs(ctx context.Context, contractIDs []int) ([]domain.Job, error)
	MarkPaid(ctx context.Context, id int, paidAt time.Time) error
}

type ContractRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
	ListInProgressByProfile(ctx context.Context, profileID int) ([]domain.Contract, error)
}

type Service struct {
	jobRepo      Repo
	contractRepo ContractRepo
	profileRepo  balanceservice.ProfileRepo
	balanceRepo  balanceservice.BalanceRepo
	ledgerRepo   balanceservice.LedgerRepo
	txManager    pg.TXManager

	now   func() time.Time
	newID func() uuid.UUID
}

func New(
	jobRepo Repo,
	contractRepo ContractRepo,
	profileRepo balanceservice.ProfileRepo,
	balanceRepo balanceservice.BalanceRepo,
	ledgerRepo balanceservice.LedgerRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		jobRepo:      jobRepo,
		contractRepo: contractRepo,
		profileRepo:  profileRepo,
		balanceRepo:  balanceRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		now:          time.Now,
		newID:        uuid.New,
	}
}

func (s *Service) ListUnpaidJobs(ctx context.Context, profileID int) ([]domain.Job, error) {
	contracts, err := s.contractRepo.ListInProgressByProfile(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to get contracts in progress", zap.Int("profileID", profileID), zap.Error(err))
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, domain.ErrNoUnpaidJobs
	}

	ids := make([]int, len(contracts))
	for i, c := range contracts {
		ids[i] = c.ID
	}
	jobs, err := s.jobRepo.ListUnpaidByContractIDs(ctx, ids)
	if err != nil {
		zap.L().Error("failed to get unpaid jobs", zap.Int("profileID", profileID), zap.Error(err))
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNoUnpaidJobs
	}
	return jobs, nil
}

// PayJob moves the job price from the caller's balance to the contractor's.
// Jobs of contracts the caller is not the client of are reported as missing.
// Reads only validate; every write happens in one transaction that either
// lands completely or not at all.
func (s *Service) PayJob(ctx context.Context, callerID, jobID int) (*domain.Payment, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get job", zap.Int("jobID", jobID), zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}

	contract, err := s.contractRepo.FindByID(ctx, job.ContractID)
	if err != nil {
		zap.L().Error("failed to get contract", zap.Int("contractID", job.ContractID), zap.Error(err))
		return nil, err
	}
	if contract == nil || contract.ClientID != callerID {
		return nil, domain.ErrJobNotFound
	}
	if job.Paid {
		return nil, domain.ErrAlreadyPaid
	}

	client, err := s.profileRepo.FindByIDAndType(ctx, callerID, domain.ProfileClient)
	if err != nil {
		zap.L().Error("failed to get client", zap.Int("profileID", callerID), zap.Error(err))
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.Balance.LessThan(job.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	contractor, err := s.profileRepo.FindByIDAndType(ctx, contract.ContractorID, domain.ProfileContractor)
	if err != nil {
		zap.L().Error("failed to get contractor", zap.Int("profileID", contract.ContractorID), zap.Error(err))
		return nil, err
	}
	if contractor == nil {
		return nil, domain.ErrContractorNotFound
	}

	payment := &domain.Payment{
		TransferID:   s.newID(),
		JobID:        job.ID,
		ClientID:     client.ID,
		ContractorID: contractor.ID,
		Amount:       job.Price,
		PaidAt:       s.now(),
	}
	if err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		return s.transfer(ctx, payment)
	}); err != nil {
		zap.L().Error("payment failed", zap.Int("jobID", jobID), zap.Int("clientID", client.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("job paid",
		zap.Int("jobID", job.ID),
		zap.Int("clientID", client.ID),
		zap.Int("contractorID", contractor.ID),
		zap.String("amount", job.Price.StringFixed(2)),
		zap.String("transferID", payment.TransferID.String()),
	)
	return payment, nil
}

// transfer must run inside a transaction. Marking the job first makes a
// concurrent second payment fail before any balance moves.
func (s *Service) transfer(ctx context.Context, p *domain.Payment) error {
	if err := s.jobRepo.MarkPaid(ctx, p.JobID, p.PaidAt); err != nil {
		return err
	}
	if _, err := s.balanceRepo.Debit(ctx, p.ClientID, p.Amount); err != nil {
		return err
	}
	if _, err := s.balanceRepo.Credit(ctx, p.ContractorID, domain.ProfileContractor, p.Amount); err != nil {
		return err
	}
	jobID := p.JobID
	return s.ledgerRepo.Append(ctx, []domain.LedgerEntry{
		{
			TransferID: p.TransferID,
			ProfileID:  p.ClientID,
			JobID:      &jobID,
			Kind:       domain.LedgerPaymentDebit,
			Amount:     p.Amount.Neg(),
			CreatedAt:  p.PaidAt,
		},
		{
			TransferID: p.TransferID,
			ProfileID:  p.ContractorID,
			JobID:      &jobID,
			Kind:       domain.LedgerPaymentCredit,
			Amount:     p.Amount,
			CreatedAt:  p.PaidAt,
		},
	})
}
