package dto

import (
	"time"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

type ContractResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	Terms        string    `json:"terms" example:"bla bla bla"`
	Status       string    `json:"status" example:"in_progress"`
	ClientID     int       `json:"ClientId" example:"1"`
	ContractorID int       `json:"ContractorId" example:"5"`
	CreatedAt    time.Time `json:"createdAt" example:"2020-08-15T19:11:26Z"`
}

func NewContractResponse(c domain.Contract) ContractResponseDTO {
	return ContractResponseDTO{
		ID:           c.ID,
		Terms:        c.Terms,
		Status:       string(c.Status),
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		CreatedAt:    c.CreatedAt,
	}
}
