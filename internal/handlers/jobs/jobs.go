package jobs

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

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
	ListUnpaidJobs(ctx context.Context, profileID int) ([]domain.Job, error)
	PayJob(ctx context.Context, callerID, jobID int) (*domain.Payment, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListUnpaid godoc
//
//	@Summary		List unpaid jobs
//	@Description	Unpaid jobs of the caller's in-progress contracts.
//	@Tags			Jobs
//	@Security		ProfileID
//	@Produce		json
//	@Success		200	{array}		dto.JobResponseDTO
//	@Failure		401	{object}	utils.Response	"Unknown profile"
//	@Failure		404	{object}	utils.Response	"No unpaid jobs"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/jobs/unpaid [get]
func (h *JobHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := h.jobService.ListUnpaidJobs(r.Context(), profile.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoUnpaidJobs) {
			utils.RespondWithError(w, http.StatusNotFound, "no unpaid jobs found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	response := make([]dto.JobResponseDTO, len(jobs))
	for i, j := range jobs {
		response[i] = dto.NewJobResponse(j)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Pay godoc
//
//	@Summary		Pay for a job
//	@Description	Move the job price from the caller's balance to the contractor's balance.
//	@Tags			Jobs
//	@Security		ProfileID
//	@Produce		json
//	@Param			job_id	path		int		true	"Job id"
//	@Success		200		{string}	string	"Job paid successfully"
//	@Failure		400		{object}	utils.Response	"Invalid job id"
//	@Failure		401		{object}	utils.Response	"Already paid or insufficient balance"
//	@Failure		404		{object}	utils.Response	"Job, client or contractor not found"
//	@Failure		409		{object}	utils.Response	"Concurrent payment, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/jobs/{job_id}/pay [post]
func (h *JobHandler) Pay(w http.ResponseWriter, r *http.Request) {
	profile, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := strconv.Atoi(chi.URLParam(r, "job_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	_, err = h.jobService.PayJob(r.Context(), profile.ID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		case errors.Is(err, domain.ErrClientNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Client not found")
		case errors.Is(err, domain.ErrContractorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Contractor not found")
		case errors.Is(err, domain.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusUnauthorized, "Job already paid")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusUnauthorized, "Account balance insufficient")
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, domain.ErrConflict.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "Job paid successfully")
}
