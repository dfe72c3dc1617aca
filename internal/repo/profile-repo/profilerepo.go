package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, balance, type, created_at
        FROM profiles
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindByIDAndType returns nil when the profile is missing or has another type.
func (r *Repository) FindByIDAndType(ctx context.Context, id int, typ domain.ProfileType) (*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, balance, type, created_at
        FROM profiles
        WHERE id = $1 AND type = $2
    `
	return r.findOne(ctx, query, id, string(typ))
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Profession,
		&profile.Balance,
		&profile.Type,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (first_name, last_name, profession, balance, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		profile.FirstName, profile.LastName, profile.Profession, profile.Balance, string(profile.Type),
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
