package jobservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
)

type inTxKey struct{}

// memStore keeps profiles, contracts, jobs and ledger entries in memory.
// Begin serializes transactions and restores a snapshot on failure.
type memStore struct {
	mu        sync.Mutex
	profiles  map[int]domain.Profile
	contracts map[int]domain.Contract
	jobs      map[int]domain.Job
	ledger    []domain.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		profiles:  map[int]domain.Profile{},
		contracts: map[int]domain.Contract{},
		jobs:      map[int]domain.Job{},
	}
}

func (s *memStore) do(ctx context.Context, fn func()) {
	if ctx.Value(inTxKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make(map[int]domain.Profile, len(s.profiles))
	for k, v := range s.profiles {
		profiles[k] = v
	}
	jobs := make(map[int]domain.Job, len(s.jobs))
	for k, v := range s.jobs {
		jobs[k] = v
	}
	ledger := append([]domain.LedgerEntry(nil), s.ledger...)

	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		s.profiles, s.jobs, s.ledger = profiles, jobs, ledger
		return err
	}
	return nil
}

type memJobs struct{ *memStore }

func (r memJobs) FindByID(ctx context.Context, id int) (job *domain.Job, err error) {
	r.do(ctx, func() {
		if j, ok := r.jobs[id]; ok {
			job = &j
		}
	})
	return job, nil
}

func (r memJobs) ListUnpaidByContractIDs(ctx context.Context, contractIDs []int) (jobs []domain.Job, err error) {
	r.do(ctx, func() {
		for _, id := range contractIDs {
			for _, j := range r.jobs {
				if j.ContractID == id && !j.Paid {
					jobs = append(jobs, j)
				}
			}
		}
	})
	return jobs, nil
}

func (r memJobs) MarkPaid(ctx context.Context, id int, paidAt time.Time) (err error) {
	r.do(ctx, func() {
		j, ok := r.jobs[id]
		if !ok || j.Paid {
			err = domain.ErrAlreadyPaid
			return
		}
		j.Paid, j.PaymentDate = true, &paidAt
		r.jobs[id] = j
	})
	return err
}

type memContracts struct{ *memStore }

func (r memContracts) FindByID(ctx context.Context, id int) (contract *domain.Contract, err error) {
	r.do(ctx, func() {
		if c, ok := r.contracts[id]; ok {
			contract = &c
		}
	})
	return contract, nil
}

func (r memContracts) ListInProgressByProfile(ctx context.Context, profileID int) (contracts []domain.Contract, err error) {
	r.do(ctx, func() {
		for _, c := range r.contracts {
			if c.Status == domain.ContractInProgress && c.HasParticipant(profileID) {
				contracts = append(contracts, c)
			}
		}
	})
	return contracts, nil
}

type memProfiles struct{ *memStore }

func (r memProfiles) FindByID(ctx context.Context, id int) (profile *domain.Profile, err error) {
	r.do(ctx, func() {
		if p, ok := r.profiles[id]; ok {
			profile = &p
		}
	})
	return profile, nil
}

func (r memProfiles) FindByIDAndType(ctx context.Context, id int, typ domain.ProfileType) (*domain.Profile, error) {
	profile, _ := r.FindByID(ctx, id)
	if profile == nil || profile.Type != typ {
		return nil, nil
	}
	return profile, nil
}

type memBalances struct{ *memStore }

func (r memBalances) Debit(ctx context.Context, clientID int, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	r.do(ctx, func() {
		p, ok := r.profiles[clientID]
		if !ok || p.Type != domain.ProfileClient || p.Balance.LessThan(amount) {
			err = domain.ErrInsufficientFunds
			return
		}
		p.Balance = p.Balance.Sub(amount)
		r.profiles[clientID] = p
		balance = p.Balance
	})
	return balance, err
}

func (r memBalances) Credit(ctx context.Context, profileID int, typ domain.ProfileType, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	r.do(ctx, func() {
		p, ok := r.profiles[profileID]
		if !ok || p.Type != typ {
			err = domain.ErrContractorNotFound
			return
		}
		p.Balance = p.Balance.Add(amount)
		r.profiles[profileID] = p
		balance = p.Balance
	})
	return balance, err
}

type memLedger struct{ *memStore }

func (r memLedger) Append(ctx context.Context, entries []domain.LedgerEntry) error {
	r.do(ctx, func() {
		r.ledger = append(r.ledger, entries...)
	})
	return nil
}

func (r memLedger) ListByProfileID(ctx context.Context, profileID int) (entries []domain.LedgerEntry, err error) {
	r.do(ctx, func() {
		for _, e := range r.ledger {
			if e.ProfileID == profileID {
				entries = append(entries, e)
			}
		}
	})
	return entries, nil
}

func newMemService(store *memStore) *Service {
	return New(memJobs{store}, memContracts{store}, memProfiles{store}, memBalances{store}, memLedger{store}, store)
}

func seedPayment(store *memStore, clientBalance, price int64) {
	store.profiles[1] = domain.Profile{ID: 1, FirstName: "Harry", Type: domain.ProfileClient, Balance: decimal.NewFromInt(clientBalance)}
	store.profiles[2] = domain.Profile{ID: 2, FirstName: "Linus", Type: domain.ProfileContractor, Profession: "Programmer"}
	store.contracts[10] = domain.Contract{ID: 10, ClientID: 1, ContractorID: 2, Status: domain.ContractInProgress}
	store.jobs[5] = domain.Job{ID: 5, ContractID: 10, Price: decimal.NewFromInt(price)}
}

func ledgerSum(entries []domain.LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

func TestPayJob_MovesFundsOnce(t *testing.T) {
	store := newMemStore()
	seedPayment(store, 100, 40)
	service := newMemService(store)

	payment, err := service.PayJob(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(40)))

	assert.True(t, store.profiles[1].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, store.profiles[2].Balance.Equal(decimal.NewFromInt(40)))
	assert.True(t, store.jobs[5].Paid)
	assert.NotNil(t, store.jobs[5].PaymentDate)
	assert.Len(t, store.ledger, 2)
	assert.True(t, ledgerSum(store.ledger).IsZero())

	_, err = service.PayJob(context.Background(), 1, 5)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.True(t, store.profiles[1].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, store.profiles[2].Balance.Equal(decimal.NewFromInt(40)))
}

func TestPayJob_ConcurrentRequests(t *testing.T) {
	store := newMemStore()
	seedPayment(store, 100, 40)
	service := newMemService(store)

	const callers = 16
	var succeeded, alreadyPaid atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			_, err := service.PayJob(ctx, 1, 5)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrAlreadyPaid):
				alreadyPaid.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), alreadyPaid.Load())
	assert.True(t, store.profiles[1].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, store.profiles[2].Balance.Equal(decimal.NewFromInt(40)))
	assert.Len(t, store.ledger, 2)
	assert.True(t, ledgerSum(store.ledger).IsZero())
}

func TestPayJob_RollbackKeepsBalances(t *testing.T) {
	store := newMemStore()
	seedPayment(store, 100, 40)
	service := New(memJobs{store}, memContracts{store}, memProfiles{store}, memBalances{store}, failingLedger{}, store)

	_, err := service.PayJob(context.Background(), 1, 5)
	assert.Error(t, err)

	assert.True(t, store.profiles[1].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, store.profiles[2].Balance.IsZero())
	assert.False(t, store.jobs[5].Paid)
	assert.Empty(t, store.ledger)
}

type failingLedger struct{}

func (failingLedger) Append(context.Context, []domain.LedgerEntry) error {
	return errors.New("ledger unavailable")
}

func (failingLedger) ListByProfileID(context.Context, int) ([]domain.LedgerEntry, error) {
	return nil, nil
}
