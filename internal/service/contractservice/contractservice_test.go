package contractservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGetContract(t *testing.T) {
	service, repo := NewMock(t)
	contract := &domain.Contract{ID: 1, ClientID: 1, ContractorID: 5, Status: domain.ContractInProgress, Terms: "bla bla bla"}

	tests := []struct {
		name             string
		profileID        int
		contractID       int
		prepareMock      func()
		expectedContract *domain.Contract
		expectedError    error
	}{
		{
			name:       "Client sees the contract",
			profileID:  1,
			contractID: 1,
			prepareMock: func() {
				repo.EXPECT().FindForProfile(gomock.Any(), 1, 1).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:       "Contractor sees the contract",
			profileID:  5,
			contractID: 1,
			prepareMock: func() {
				repo.EXPECT().FindForProfile(gomock.Any(), 1, 5).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:       "Foreign contract is hidden",
			profileID:  2,
			contractID: 1,
			prepareMock: func() {
				repo.EXPECT().FindForProfile(gomock.Any(), 1, 2).Return(nil, nil)
			},
			expectedError: domain.ErrContractNotFound,
		},
		{
			name:       "Database error",
			profileID:  1,
			contractID: 1,
			prepareMock: func() {
				repo.EXPECT().FindForProfile(gomock.Any(), 1, 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.GetContract(context.Background(), tt.profileID, tt.contractID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedContract, got)
			}
		})
	}
}

func TestListActiveContracts(t *testing.T) {
	service, repo := NewMock(t)
	contracts := []domain.Contract{
		{ID: 1, ClientID: 1, ContractorID: 5, Status: domain.ContractNew},
		{ID: 2, ClientID: 1, ContractorID: 6, Status: domain.ContractInProgress},
	}

	tests := []struct {
		name              string
		prepareMock       func()
		expectedContracts []domain.Contract
		expectedError     error
	}{
		{
			name: "Active contracts",
			prepareMock: func() {
				repo.EXPECT().ListActiveByProfile(gomock.Any(), 1).Return(contracts, nil)
			},
			expectedContracts: contracts,
		},
		{
			name: "No contracts yields an empty list",
			prepareMock: func() {
				repo.EXPECT().ListActiveByProfile(gomock.Any(), 1).Return(nil, nil)
			},
			expectedContracts: []domain.Contract{},
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().ListActiveByProfile(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.ListActiveContracts(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedContracts, got)
			}
		})
	}
}
