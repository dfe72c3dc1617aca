package service

import (
	"github.com/GlebRadaev/contracthub/internal/handlers/admin"
	"github.com/GlebRadaev/contracthub/internal/handlers/balance"
	"github.com/GlebRadaev/contracthub/internal/handlers/contracts"
	"github.com/GlebRadaev/contracthub/internal/handlers/jobs"
	"github.com/GlebRadaev/contracthub/internal/repo"
	"github.com/GlebRadaev/contracthub/internal/service/balanceservice"
	"github.com/GlebRadaev/contracthub/internal/service/contractservice"
	"github.com/GlebRadaev/contracthub/internal/service/jobservice"
	"github.com/GlebRadaev/contracthub/internal/service/reportservice"
)

type Services struct {
	ContractService contracts.Service
	JobService      jobs.Service
	BalanceService  balance.Service
	ReportService   admin.Service
}

// New wires services over the repositories. clientsLimit is the default size
// of the best clients report.
func New(repo *repo.Repositories, clientsLimit int) *Services {
	contractService := contractservice.New(repo.ContractRepo)
	jobService := jobservice.New(
		repo.JobRepo,
		repo.ContractRepo,
		repo.ProfileRepo,
		repo.BalanceRepo,
		repo.LedgerRepo,
		repo.TxManager,
	)
	balanceService := balanceservice.New(
		repo.ProfileRepo,
		repo.ContractRepo,
		repo.JobRepo,
		repo.BalanceRepo,
		repo.LedgerRepo,
		repo.TxManager,
	)
	reportService := reportservice.New(repo.ReportRepo, clientsLimit)

	return &Services{
		ContractService: contractService,
		JobService:      jobService,
		BalanceService:  balanceService,
		ReportService:   reportService,
	}
}
