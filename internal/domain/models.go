package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProfileType string

const (
	ProfileClient     ProfileType = "client"
	ProfileContractor ProfileType = "contractor"
)

func (t ProfileType) Valid() bool {
	return t == ProfileClient || t == ProfileContractor
}

type ContractStatus string

const (
	ContractNew        ContractStatus = "new"
	ContractInProgress ContractStatus = "in_progress"
	ContractTerminated ContractStatus = "terminated"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractNew, ContractInProgress, ContractTerminated:
		return true
	}
	return false
}

type Profile struct {
	ID         int             `db:"id"`
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Profession string          `db:"profession"`
	Balance    decimal.Decimal `db:"balance"`
	Type       ProfileType     `db:"type"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Contract struct {
	ID           int            `db:"id"`
	Terms        string         `db:"terms"`
	Status       ContractStatus `db:"status"`
	ClientID     int            `db:"client_id"`
	ContractorID int            `db:"contractor_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

// HasParticipant reports whether the profile is the contract's client or contractor.
func (c *Contract) HasParticipant(profileID int) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}

type Job struct {
	ID          int             `db:"id"`
	ContractID  int             `db:"contract_id"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Paid        bool            `db:"paid"`
	PaymentDate *time.Time      `db:"payment_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

type LedgerKind string

const (
	LedgerPaymentDebit  LedgerKind = "payment_debit"
	LedgerPaymentCredit LedgerKind = "payment_credit"
	LedgerDeposit       LedgerKind = "deposit"
)

// LedgerEntry is one signed balance movement. The entries of a payment share a
// TransferID and sum to zero.
type LedgerEntry struct {
	ID         int             `db:"id"`
	TransferID uuid.UUID       `db:"transfer_id"`
	ProfileID  int             `db:"profile_id"`
	JobID      *int            `db:"job_id"`
	Kind       LedgerKind      `db:"kind"`
	Amount     decimal.Decimal `db:"amount"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Payment carries everything the payment transaction needs once validation
// has passed.
type Payment struct {
	TransferID   uuid.UUID
	JobID        int
	ClientID     int
	ContractorID int
	Amount       decimal.Decimal
	PaidAt       time.Time
}

type DepositReceipt struct {
	TransferID uuid.UUID
	Amount     decimal.Decimal
	Balance    decimal.Decimal
}

type ProfessionEarnings struct {
	Profession  string          `db:"profession"`
	TotalEarned decimal.Decimal `db:"total_earned"`
}

type ClientPayments struct {
	ClientID  int             `db:"client_id"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	TotalPaid decimal.Decimal `db:"total_paid"`
}

// DateRange is an inclusive [Start, End] interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}
