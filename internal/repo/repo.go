package repo

import (
	"github.com/GlebRadaev/contracthub/internal/pg"
	balancerepo "github.com/GlebRadaev/contracthub/internal/repo/balance-repo"
	contractrepo "github.com/GlebRadaev/contracthub/internal/repo/contract-repo"
	jobrepo "github.com/GlebRadaev/contracthub/internal/repo/job-repo"
	ledgerrepo "github.com/GlebRadaev/contracthub/internal/repo/ledger-repo"
	profilerepo "github.com/GlebRadaev/contracthub/internal/repo/profile-repo"
	reportrepo "github.com/GlebRadaev/contracthub/internal/repo/report-repo"
	"github.com/GlebRadaev/contracthub/internal/service/balanceservice"
	"github.com/GlebRadaev/contracthub/internal/service/contractservice"
	"github.com/GlebRadaev/contracthub/internal/service/jobservice"
	"github.com/GlebRadaev/contracthub/internal/service/reportservice"
)

type Repositories struct {
	ProfileRepo  balanceservice.ProfileRepo
	ContractRepo contractservice.Repo
	JobRepo      jobservice.Repo
	BalanceRepo  balanceservice.BalanceRepo
	LedgerRepo   balanceservice.LedgerRepo
	ReportRepo   reportservice.Repo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProfileRepo:  profilerepo.New(conn),
		ContractRepo: contractrepo.New(conn),
		JobRepo:      jobrepo.New(conn),
		BalanceRepo:  balancerepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
		TxManager:    txManager,
	}
}
