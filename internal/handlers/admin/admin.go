package admin

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/dto"
	"github.com/GlebRadaev/contracthub/pkg/utils"
)

type Service interface {
	BestProfession(ctx context.Context, period domain.DateRange) (*domain.ProfessionEarnings, error)
	BestClients(ctx context.Context, period domain.DateRange, limit int) ([]domain.ClientPayments, error)
}

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
	}
}

// BestProfession godoc
//
//	@Summary		Best paid profession
//	@Description	The profession that earned the most for jobs paid in the inclusive range.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string	true	"Range start, YYYY-MM-DD or RFC3339"
//	@Param			end		query		string	true	"Range end, YYYY-MM-DD or RFC3339"
//	@Success		200		{object}	dto.BestProfessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid range"
//	@Failure		404		{object}	utils.Response	"No data in range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/best-profession [get]
func (h *AdminHandler) BestProfession(w http.ResponseWriter, r *http.Request) {
	period, err := domain.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Both start and end date are required.")
		return
	}

	best, err := h.reportService.BestProfession(r.Context(), period)
	if err != nil {
		h.respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BestProfessionResponseDTO{
		BestProfession: best.Profession,
		TotalEarned:    best.TotalEarned.InexactFloat64(),
	})
}

// BestClients godoc
//
//	@Summary		Best paying clients
//	@Description	Clients that paid the most for jobs paid in the inclusive range.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string	true	"Range start, YYYY-MM-DD or RFC3339"
//	@Param			end		query		string	true	"Range end, YYYY-MM-DD or RFC3339"
//	@Param			limit	query		int		false	"Number of clients, 2 by default"
//	@Success		200		{array}		dto.BestClientResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid range or limit"
//	@Failure		404		{object}	utils.Response	"No data in range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/admin/best-clients [get]
func (h *AdminHandler) BestClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period, err := domain.ParseDateRange(query.Get("start"), query.Get("end"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Both valid start and end date are required.")
		return
	}

	var limit int
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, domain.ErrInvalidLimit.Error())
			return
		}
	}

	clients, err := h.reportService.BestClients(r.Context(), period, limit)
	if err != nil {
		h.respondReportError(w, err)
		return
	}

	response := make([]dto.BestClientResponseDTO, len(clients))
	for i, c := range clients {
		response[i] = dto.BestClientResponseDTO{
			ClientID:        c.ClientID,
			ClientFirstName: c.FirstName,
			ClientLastName:  c.LastName,
			TotalPaid:       c.TotalPaid.InexactFloat64(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *AdminHandler) respondReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoData):
		utils.RespondWithError(w, http.StatusNotFound, "No data found for the given time range.")
	case errors.Is(err, domain.ErrInvalidLimit):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
	}
}
