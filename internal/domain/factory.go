package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NewProfile validates a profile before it is provisioned.
func NewProfile(firstName, lastName, profession string, balance decimal.Decimal, typ ProfileType) (*Profile, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidProfile, typ)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance can't be negative", ErrInvalidProfile)
	}
	return &Profile{
		FirstName:  firstName,
		LastName:   lastName,
		Profession: profession,
		Balance:    balance,
		Type:       typ,
	}, nil
}

// NewContract binds a client and a contractor. Swapped or same-typed
// participants are rejected here so reads never have to filter by type.
func NewContract(client, contractor *Profile, terms string, status ContractStatus) (*Contract, error) {
	if client == nil || contractor == nil {
		return nil, ErrContractParticipant
	}
	if client.Type != ProfileClient || contractor.Type != ProfileContractor {
		return nil, fmt.Errorf("%w: got %s and %s", ErrContractParticipant, client.Type, contractor.Type)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown contract status %q", status)
	}
	return &Contract{
		Terms:        terms,
		Status:       status,
		ClientID:     client.ID,
		ContractorID: contractor.ID,
	}, nil
}
