package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/pkg/utils"
)

type ContextKey string

const ProfileKey ContextKey = "profile"

// ProfileHeader carries the caller's profile id for clients that do not use tokens.
const ProfileHeader = "profile_id"

type ProfileFinder interface {
	GetProfile(ctx context.Context, profileID int) (*domain.Profile, error)
}

// ProfileFromContext returns the profile attached by Middleware.
func ProfileFromContext(ctx context.Context) (*domain.Profile, bool) {
	profile, ok := ctx.Value(ProfileKey).(*domain.Profile)
	return profile, ok && profile != nil
}

func WithProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, profile)
}

// Middleware resolves the caller from a bearer token or the profile_id
// header and rejects the request when no profile matches.
func Middleware(profiles ProfileFinder, tokens JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID, ok := resolveProfileID(r, tokens)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			profile, err := profiles.GetProfile(r.Context(), profileID)
			if err != nil {
				if errors.Is(err, domain.ErrProfileNotFound) {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				zap.L().Error("failed to resolve profile", zap.Int("profileID", profileID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfile(r.Context(), profile)))
		})
	}
}

func resolveProfileID(r *http.Request, tokens JWTServiceInterface) (int, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return 0, false
		}
		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return 0, false
		}
		return claims.ProfileID, true
	}

	id, err := strconv.Atoi(r.Header.Get(ProfileHeader))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
