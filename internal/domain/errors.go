package domain

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrNoUnpaidJobs       = errors.New("no unpaid jobs found")
	ErrAlreadyPaid        = errors.New("job already paid")
	ErrClientNotFound     = errors.New("client not found")
	ErrContractorNotFound = errors.New("contractor not found")
	ErrInsufficientFunds  = errors.New("account balance insufficient")
	ErrConflict           = errors.New("concurrent update, retry the request")
)

var (
	ErrNoContracts       = errors.New("no contracts found for user")
	ErrInvalidAmount     = errors.New("no valid amount specified")
	ErrDepositExceedsCap = errors.New("you can't deposit more than 25% of your total owed amount")
)

var (
	ErrInvalidRange = errors.New("both valid start and end date are required")
	ErrInvalidLimit = errors.New("limit must be a positive integer not greater than 100")
	ErrNoData       = errors.New("no data found for the given time range")
)

var (
	ErrInvalidProfile      = errors.New("invalid profile")
	ErrContractParticipant = errors.New("contract participants must be one client and one contractor")
)
