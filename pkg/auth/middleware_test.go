package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/contracthub/internal/domain"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := NewMockProfileFinder(ctrl)
	tokens := NewJWTService(testSecret)

	validToken, err := tokens.GenerateJWT(1, time.Now().Add(time.Hour))
	require.NoError(t, err)

	profile := &domain.Profile{ID: 1, FirstName: "Harry", Type: domain.ProfileClient}

	tests := []struct {
		name         string
		headers      map[string]string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Profile header",
			headers: map[string]string{ProfileHeader: "1"},
			prepareMock: func() {
				finder.EXPECT().GetProfile(gomock.Any(), 1).Return(profile, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Bearer token",
			headers: map[string]string{"Authorization": "Bearer " + validToken},
			prepareMock: func() {
				finder.EXPECT().GetProfile(gomock.Any(), 1).Return(profile, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "No identity",
			headers:      map[string]string{},
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			headers:      map[string]string{"Authorization": "Bearer garbage"},
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Non numeric header",
			headers:      map[string]string{ProfileHeader: "abc"},
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:    "Unknown profile",
			headers: map[string]string{ProfileHeader: "99"},
			prepareMock: func() {
				finder.EXPECT().GetProfile(gomock.Any(), 99).Return(nil, domain.ErrProfileNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:    "Storage failure",
			headers: map[string]string{ProfileHeader: "1"},
			prepareMock: func() {
				finder.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var got *domain.Profile
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ProfileFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			Middleware(finder, tokens)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, profile, got)
			}
		})
	}
}
