package jobservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
	"github.com/GlebRadaev/contracthub/internal/service/balanceservice"
)

var (
	errDB    = errors.New("db error")
	fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedID  = uuid.MustParse("0f3c1f5a-2b8e-4b1f-8d7e-5c9a3e2f1b11")
)

type mocks struct {
	jobRepo      *MockRepo
	contractRepo *MockContractRepo
	profileRepo  *balanceservice.MockProfileRepo
	balanceRepo  *balanceservice.MockBalanceRepo
	ledgerRepo   *balanceservice.MockLedgerRepo
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		jobRepo:      NewMockRepo(ctrl),
		contractRepo: NewMockContractRepo(ctrl),
		profileRepo:  balanceservice.NewMockProfileRepo(ctrl),
		balanceRepo:  balanceservice.NewMockBalanceRepo(ctrl),
		ledgerRepo:   balanceservice.NewMockLedgerRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.jobRepo, m.contractRepo, m.profileRepo, m.balanceRepo, m.ledgerRepo, m.txManager)
	service.now = func() time.Time { return fixedNow }
	service.newID = func() uuid.UUID { return fixedID }
	return service, m
}

func TestListUnpaidJobs(t *testing.T) {
	service, m := NewMock(t)
	jobs := []domain.Job{
		{ID: 1, ContractID: 10, Price: decimal.NewFromInt(200)},
		{ID: 2, ContractID: 11, Price: decimal.NewFromInt(21)},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedJobs  []domain.Job
		expectedError error
	}{
		{
			name: "Unpaid jobs of in progress contracts",
			prepareMock: func() {
				m.contractRepo.EXPECT().ListInProgressByProfile(gomock.Any(), 1).
					Return([]domain.Contract{{ID: 10}, {ID: 11}}, nil)
				m.jobRepo.EXPECT().ListUnpaidByContractIDs(gomock.Any(), []int{10, 11}).Return(jobs, nil)
			},
			expectedJobs: jobs,
		},
		{
			name: "No contracts in progress",
			prepareMock: func() {
				m.contractRepo.EXPECT().ListInProgressByProfile(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNoUnpaidJobs,
		},
		{
			name: "No unpaid jobs",
			prepareMock: func() {
				m.contractRepo.EXPECT().ListInProgressByProfile(gomock.Any(), 1).
					Return([]domain.Contract{{ID: 10}}, nil)
				m.jobRepo.EXPECT().ListUnpaidByContractIDs(gomock.Any(), []int{10}).Return(nil, nil)
			},
			expectedError: domain.ErrNoUnpaidJobs,
		},
		{
			name: "Contract lookup fails",
			prepareMock: func() {
				m.contractRepo.EXPECT().ListInProgressByProfile(gomock.Any(), 1).Return(nil, errDB)
			},
			expectedError: errDB,
		},
		{
			name: "Job lookup fails",
			prepareMock: func() {
				m.contractRepo.EXPECT().ListInProgressByProfile(gomock.Any(), 1).
					Return([]domain.Contract{{ID: 10}}, nil)
				m.jobRepo.EXPECT().ListUnpaidByContractIDs(gomock.Any(), []int{10}).Return(nil, errDB)
			},
			expectedError: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.ListUnpaidJobs(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedJobs, got)
		})
	}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func decEq(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is equal to " + m.want.String()
}

func TestPayJob(t *testing.T) {
	service, m := NewMock(t)

	job := &domain.Job{ID: 5, ContractID: 10, Price: decimal.NewFromInt(40)}
	paidJob := &domain.Job{ID: 5, ContractID: 10, Price: decimal.NewFromInt(40), Paid: true, PaymentDate: &fixedNow}
	client := &domain.Profile{ID: 1, Type: domain.ProfileClient, Balance: decimal.NewFromInt(100)}
	poorClient := &domain.Profile{ID: 1, Type: domain.ProfileClient, Balance: decimal.NewFromInt(39)}
	contractor := &domain.Profile{ID: 2, Type: domain.ProfileContractor, Balance: decimal.NewFromInt(0)}
	contract := &domain.Contract{ID: 10, ClientID: 1, ContractorID: 2, Status: domain.ContractInProgress}
	foreignContract := &domain.Contract{ID: 10, ClientID: 3, ContractorID: 2, Status: domain.ContractInProgress}

	expectReads := func() {
		m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
		m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(contract, nil)
		m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 1, domain.ProfileClient).Return(client, nil)
		m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 2, domain.ProfileContractor).Return(contractor, nil)
	}
	runInTx := func() {
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			})
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Payment succeeds",
			prepareMock: func() {
				expectReads()
				runInTx()
				gomock.InOrder(
					m.jobRepo.EXPECT().MarkPaid(gomock.Any(), 5, fixedNow).Return(nil),
					m.balanceRepo.EXPECT().Debit(gomock.Any(), 1, decEq(40)).Return(decimal.NewFromInt(60), nil),
					m.balanceRepo.EXPECT().Credit(gomock.Any(), 2, domain.ProfileContractor, decEq(40)).
						Return(decimal.NewFromInt(40), nil),
					m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, entries []domain.LedgerEntry) error {
							require.Len(t, entries, 2)
							assert.Equal(t, domain.LedgerPaymentDebit, entries[0].Kind)
							assert.Equal(t, 1, entries[0].ProfileID)
							assert.Equal(t, domain.LedgerPaymentCredit, entries[1].Kind)
							assert.Equal(t, 2, entries[1].ProfileID)
							assert.Equal(t, entries[0].TransferID, entries[1].TransferID)
							assert.Equal(t, 5, *entries[0].JobID)
							assert.True(t, entries[0].Amount.Add(entries[1].Amount).IsZero())
							return nil
						}),
				)
			},
		},
		{
			name: "Job not found",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: domain.ErrJobNotFound,
		},
		{
			name: "Job already paid",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(paidJob, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(contract, nil)
			},
			expectedError: domain.ErrAlreadyPaid,
		},
		{
			name: "Caller is not a client",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(contract, nil)
				m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 1, domain.ProfileClient).Return(nil, nil)
			},
			expectedError: domain.ErrClientNotFound,
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(contract, nil)
				m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 1, domain.ProfileClient).Return(poorClient, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name: "Job of another client",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(foreignContract, nil)
			},
			expectedError: domain.ErrJobNotFound,
		},
		{
			name: "Paid job of another client stays hidden",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(paidJob, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(foreignContract, nil)
			},
			expectedError: domain.ErrJobNotFound,
		},
		{
			name: "Contract lookup fails",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, errDB)
			},
			expectedError: errDB,
		},
		{
			name: "Contractor not found",
			prepareMock: func() {
				m.jobRepo.EXPECT().FindByID(gomock.Any(), 5).Return(job, nil)
				m.contractRepo.EXPECT().FindByID(gomock.Any(), 10).Return(contract, nil)
				m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 1, domain.ProfileClient).Return(client, nil)
				m.profileRepo.EXPECT().FindByIDAndType(gomock.Any(), 2, domain.ProfileContractor).Return(nil, nil)
			},
			expectedError: domain.ErrContractorNotFound,
		},
		{
			name: "Concurrent payment marks the job first",
			prepareMock: func() {
				expectReads()
				runInTx()
				m.jobRepo.EXPECT().MarkPaid(gomock.Any(), 5, fixedNow).Return(domain.ErrAlreadyPaid)
			},
			expectedError: domain.ErrAlreadyPaid,
		},
		{
			name: "Balance drained concurrently",
			prepareMock: func() {
				expectReads()
				runInTx()
				m.jobRepo.EXPECT().MarkPaid(gomock.Any(), 5, fixedNow).Return(nil)
				m.balanceRepo.EXPECT().Debit(gomock.Any(), 1, decEq(40)).
					Return(decimal.Decimal{}, domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name: "Credit failure aborts the transaction",
			prepareMock: func() {
				expectReads()
				runInTx()
				m.jobRepo.EXPECT().MarkPaid(gomock.Any(), 5, fixedNow).Return(nil)
				m.balanceRepo.EXPECT().Debit(gomock.Any(), 1, decEq(40)).Return(decimal.NewFromInt(60), nil)
				m.balanceRepo.EXPECT().Credit(gomock.Any(), 2, domain.ProfileContractor, decEq(40)).
					Return(decimal.Decimal{}, errDB)
			},
			expectedError: errDB,
		},
		{
			name: "Serialization conflict",
			prepareMock: func() {
				expectReads()
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payment, err := service.PayJob(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &domain.Payment{
				TransferID:   fixedID,
				JobID:        5,
				ClientID:     1,
				ContractorID: 2,
				Amount:       job.Price,
				PaidAt:       fixedNow,
			}, payment)
		})
	}
}
