package contracts

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=contracts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/dto"
	"github.com/GlebRadaev/contracthub/pkg/auth"
	"github.com/GlebRadaev/contracthub/pkg/utils"
)

type Service interface {
	GetContract(ctx context.Context, profileID, contractID int) (*domain.Contract, error)
	ListActiveContracts(ctx context.Context, profileID int) ([]domain.Contract, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// GetContract godoc
//
//	@Summary		Get contract by id
//	@Description	Return the contract if the caller is its client or contractor.
//	@Tags			Contracts
//	@Security		ProfileID
//	@Produce		json
//	@Param			id	path		int						true	"Contract id"
//	@Success		200	{object}	dto.ContractResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid contract id"
//	@Failure		401	{object}	utils.Response	"Unknown profile"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/contracts/{id} [get]
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contractID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	contract, err := h.contractService.GetContract(r.Context(), profile.ID, contractID)
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Contract not found.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContractResponse(*contract))
}

// ListContracts godoc
//
//	@Summary		List active contracts
//	@Description	Return every non terminated contract the caller takes part in.
//	@Tags			Contracts
//	@Security		ProfileID
//	@Produce		json
//	@Success		200	{array}		dto.ContractResponseDTO
//	@Failure		401	{object}	utils.Response	"Unknown profile"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/contracts [get]
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contracts, err := h.contractService.ListActiveContracts(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	response := make([]dto.ContractResponseDTO, len(contracts))
	for i, c := range contracts {
		response[i] = dto.NewContractResponse(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
