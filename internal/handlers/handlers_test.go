package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/contracthub/internal/handlers/admin"
	"github.com/GlebRadaev/contracthub/internal/handlers/balance"
	"github.com/GlebRadaev/contracthub/internal/handlers/contracts"
	"github.com/GlebRadaev/contracthub/internal/handlers/jobs"
	"github.com/GlebRadaev/contracthub/internal/service"
	"github.com/GlebRadaev/contracthub/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ContractService: contracts.NewMockService(ctrl),
		JobService:      jobs.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		ReportService:   admin.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticator)
}

func newTestRouter(ctrl *gomock.Controller) chi.Router {
	mockContractHandler := NewMockContractHandler(ctrl)
	mockJobHandler := NewMockJobHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockContractHandler.EXPECT().ListContracts(gomock.Any(), gomock.Any()).AnyTimes()
	mockContractHandler.EXPECT().GetContract(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().ListUnpaid(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BestProfession(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BestClients(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		ContractHandler: mockContractHandler,
		JobHandler:      mockJobHandler,
		BalanceHandler:  mockBalanceHandler,
		AdminHandler:    mockAdminHandler,
		Authenticator:   auth.Middleware(auth.NewMockProfileFinder(ctrl), auth.NewJWTService("secret")),
	}

	router := chi.NewRouter()
	return h.InitRoutes(router)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(ctrl)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/contracts/", http.StatusUnauthorized},
		{"GET", "/contracts/1", http.StatusUnauthorized},
		{"GET", "/jobs/unpaid", http.StatusUnauthorized},
		{"POST", "/jobs/1/pay", http.StatusUnauthorized},
		{"GET", "/balances/", http.StatusUnauthorized},
		{"GET", "/balances/history", http.StatusUnauthorized},
		{"POST", "/balances/deposit/1", http.StatusUnauthorized},
		{"GET", "/admin/best-profession", http.StatusOK},
		{"GET", "/admin/best-clients", http.StatusOK},
		{"GET", "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodOptions, "/admin/best-clients", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
