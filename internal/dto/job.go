package dto

import (
	"time"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

type JobResponseDTO struct {
	ID          int        `json:"id" example:"2"`
	Description string     `json:"description" example:"work"`
	Price       float64    `json:"price" example:"201"`
	Paid        bool       `json:"paid" example:"false"`
	PaymentDate *time.Time `json:"paymentDate" example:"2020-08-15T19:11:26Z"`
	ContractID  int        `json:"ContractId" example:"2"`
}

func NewJobResponse(j domain.Job) JobResponseDTO {
	return JobResponseDTO{
		ID:          j.ID,
		Description: j.Description,
		Price:       j.Price.InexactFloat64(),
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
		ContractID:  j.ContractID,
	}
}
