package dto

import (
	"encoding/json"
	"time"
)

// DepositRequestDTO keeps the amount raw: it may arrive as a number or a
// numeric string.
type DepositRequestDTO struct {
	Amount json.RawMessage `json:"amount" swaggertype:"number" example:"50"`
}

type DepositResponseDTO struct {
	Success string  `json:"success" example:"Deposited $50.00. New balance: $150.00"`
	Balance float64 `json:"balance" example:"150"`
}

type ProfileResponseDTO struct {
	ID         int     `json:"id" example:"1"`
	FirstName  string  `json:"firstName" example:"Harry"`
	LastName   string  `json:"lastName" example:"Potter"`
	Profession string  `json:"profession" example:"Wizard"`
	Balance    float64 `json:"balance" example:"1150"`
	Type       string  `json:"type" example:"client"`
}

type LedgerEntryResponseDTO struct {
	TransferID string    `json:"transferId" example:"6f1c0c3e-8f5a-4c36-9d8e-0c2f9c6a1b7d"`
	JobID      *int      `json:"jobId,omitempty" example:"2"`
	Kind       string    `json:"kind" example:"payment_debit"`
	Amount     float64   `json:"amount" example:"-201"`
	CreatedAt  time.Time `json:"createdAt" example:"2020-08-15T19:11:26Z"`
}
