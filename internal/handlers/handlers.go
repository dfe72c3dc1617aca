package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/contracthub/docs"
	adminhandlers "github.com/GlebRadaev/contracthub/internal/handlers/admin"
	balancehandlers "github.com/GlebRadaev/contracthub/internal/handlers/balance"
	contracthandlers "github.com/GlebRadaev/contracthub/internal/handlers/contracts"
	jobhandlers "github.com/GlebRadaev/contracthub/internal/handlers/jobs"
	"github.com/GlebRadaev/contracthub/internal/service"
	"github.com/GlebRadaev/contracthub/pkg/auth"
)

type ContractHandler interface {
	GetContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BestProfession(w http.ResponseWriter, r *http.Request)
	BestClients(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ContractHandler ContractHandler
	JobHandler      JobHandler
	BalanceHandler  BalanceHandler
	AdminHandler    AdminHandler

	Authenticator  func(http.Handler) http.Handler
	AllowedOrigins []string
}

func New(s *service.Services, tokens auth.JWTServiceInterface, allowedOrigins []string) *Handlers {
	return &Handlers{
		ContractHandler: contracthandlers.New(s.ContractService),
		JobHandler:      jobhandlers.New(s.JobService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		AdminHandler:    adminhandlers.New(s.ReportService),
		Authenticator:   auth.Middleware(s.BalanceService, tokens),
		AllowedOrigins:  allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	origins := h.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.ProfileHeader},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticator)
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ContractHandler.ListContracts)
			r.Get("/{id}", h.ContractHandler.GetContract)
		})
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/unpaid", h.JobHandler.ListUnpaid)
			r.Post("/{job_id}/pay", h.JobHandler.Pay)
		})
		r.Route("/balances", func(r chi.Router) {
			r.Get("/", h.BalanceHandler.GetBalance)
			r.Get("/history", h.BalanceHandler.GetHistory)
			r.Post("/deposit/{userId}", h.BalanceHandler.Deposit)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/best-profession", h.AdminHandler.BestProfession)
		r.Get("/best-clients", h.AdminHandler.BestClients)
	})

	return r
}
