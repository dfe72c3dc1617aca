package balance

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/dto"
	"github.com/GlebRadaev/contracthub/pkg/auth"
	"github.com/GlebRadaev/contracthub/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, profileID int) (*domain.Profile, error)
	Deposit(ctx context.Context, userID int, rawAmount string) (*domain.DepositReceipt, error)
	History(ctx context.Context, profileID int) ([]domain.LedgerEntry, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get caller balance
//	@Description	Return the caller's profile together with its current balance.
//	@Tags			Balances
//	@Security		ProfileID
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unknown profile"
//	@Router			/balances [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:         profile.ID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Profession: profile.Profession,
		Balance:    profile.Balance.InexactFloat64(),
		Type:       string(profile.Type),
	})
}

// Deposit godoc
//
//	@Summary		Deposit money into a client balance
//	@Description	A client can't deposit more than 25% of the total of unpaid jobs at the deposit moment.
//	@Tags			Balances
//	@Security		ProfileID
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int						true	"Client profile id"
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or deposit above the cap"
//	@Failure		404		{object}	utils.Response	"Client, contracts or unpaid jobs not found"
//	@Failure		409		{object}	utils.Response	"Concurrent update, retry the request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/balances/deposit/{userId} [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.balanceService.Deposit(r.Context(), userID, string(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		case errors.Is(err, domain.ErrNoContracts):
			utils.RespondWithError(w, http.StatusNotFound, "No contracts found for user")
		case errors.Is(err, domain.ErrNoUnpaidJobs):
			utils.RespondWithError(w, http.StatusNotFound, "No unpaid jobs found for user.")
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, "No amount specified.")
		case errors.Is(err, domain.ErrDepositExceedsCap):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, domain.ErrConflict.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	zap.L().Debug("deposit accepted", zap.Int("callerID", profile.ID), zap.Int("userID", userID))
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		Success: fmt.Sprintf("Deposited $%s. New balance: $%s", receipt.Amount.StringFixed(2), receipt.Balance.StringFixed(2)),
		Balance: receipt.Balance.InexactFloat64(),
	})
}

// GetHistory godoc
//
//	@Summary		Get balance history
//	@Description	Ledger entries of the caller, newest first.
//	@Tags			Balances
//	@Security		ProfileID
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO
//	@Success		204	{object}	utils.Response	"No entries"
//	@Failure		401	{object}	utils.Response	"Unknown profile"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/balances/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.balanceService.History(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch balance history")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Balance history is empty")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			TransferID: e.TransferID.String(),
			JobID:      e.JobID,
			Kind:       string(e.Kind),
			Amount:     e.Amount.InexactFloat64(),
			CreatedAt:  e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
