package balanceservice

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
)

// MaxDepositShare is the part of the outstanding debt a client may deposit at once.
var MaxDepositShare = decimal.RequireFromString("0.25")

type ProfileRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Profile, error)
	FindByIDAndType(ctx context.Context, id int, typ domain.ProfileType) (*domain.Profile, error)
}

type BalanceRepo interface {
	Debit(ctx context.Context, clientID int, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, profileID int, typ domain.ProfileType, amount decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entries []domain.LedgerEntry) error
	ListByProfileID(ctx context.Context, profileID int) ([]domain.LedgerEntry, error)
}

type ContractRepo interface {
	ListActiveByClient(ctx context.Context, clientID int) ([]domain.Contract, error)
}

type JobRepo interface {
	ListUnpaidByContractIDs(ctx context.Context, contractIDs []int) ([]domain.Job, error)
}

type Service struct {
	profileRepo  ProfileRepo
	contractRepo ContractRepo
	jobRepo      JobRepo
	balanceRepo  BalanceRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager

	now   func() time.Time
	newID func() uuid.UUID
}

func New(
	profileRepo ProfileRepo,
	contractRepo ContractRepo,
	jobRepo JobRepo,
	balanceRepo BalanceRepo,
	ledgerRepo LedgerRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		contractRepo: contractRepo,
		jobRepo:      jobRepo,
		balanceRepo:  balanceRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		now:          time.Now,
		newID:        uuid.New,
	}
}

func (s *Service) GetProfile(ctx context.Context, profileID int) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Int("profileID", profileID), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// amountScale is the number of decimal places balances are stored with.
const amountScale = 2

// MaxDeposit returns the largest deposit allowed against the given unpaid jobs,
// rounded down to whole cents.
func MaxDeposit(unpaid []domain.Job) decimal.Decimal {
	total := decimal.Zero
	for _, job := range unpaid {
		total = total.Add(job.Price)
	}
	return total.Mul(MaxDepositShare).RoundFloor(amountScale)
}

// ParseAmount accepts a plain positive decimal number with at most two
// decimal places, optionally quoted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	return amount, nil
}

func (s *Service) Deposit(ctx context.Context, userID int, rawAmount string) (*domain.DepositReceipt, error) {
	client, err := s.profileRepo.FindByIDAndType(ctx, userID, domain.ProfileClient)
	if err != nil {
		zap.L().Error("failed to get client", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	contracts, err := s.contractRepo.ListActiveByClient(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get client contracts", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, domain.ErrNoContracts
	}

	contractIDs := make([]int, len(contracts))
	for i, c := range contracts {
		contractIDs[i] = c.ID
	}
	unpaid, err := s.jobRepo.ListUnpaidByContractIDs(ctx, contractIDs)
	if err != nil {
		zap.L().Error("failed to get unpaid jobs", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if len(unpaid) == 0 {
		return nil, domain.ErrNoUnpaidJobs
	}

	maxDeposit := MaxDeposit(unpaid)
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(maxDeposit) {
		return nil, fmt.Errorf("%w. Maximum allowable deposit: $%s", domain.ErrDepositExceedsCap, maxDeposit.StringFixed(2))
	}

	receipt := &domain.DepositReceipt{TransferID: s.newID(), Amount: amount}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.Credit(ctx, userID, domain.ProfileClient, amount)
		if err != nil {
			return err
		}
		receipt.Balance = balance
		return s.ledgerRepo.Append(ctx, []domain.LedgerEntry{{
			TransferID: receipt.TransferID,
			ProfileID:  userID,
			Kind:       domain.LedgerDeposit,
			Amount:     amount,
			CreatedAt:  s.now(),
		}})
	})
	if err != nil {
		zap.L().Error("failed to deposit", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit completed",
		zap.Int("userID", userID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", receipt.Balance.StringFixed(2)),
	)
	return receipt, nil
}

func (s *Service) History(ctx context.Context, profileID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
