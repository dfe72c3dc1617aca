package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/contracthub/internal/config"
	"github.com/GlebRadaev/contracthub/internal/domain"
	"github.com/GlebRadaev/contracthub/internal/pg"
	contractrepo "github.com/GlebRadaev/contracthub/internal/repo/contract-repo"
	jobrepo "github.com/GlebRadaev/contracthub/internal/repo/job-repo"
	profilerepo "github.com/GlebRadaev/contracthub/internal/repo/profile-repo"
	"github.com/GlebRadaev/contracthub/pkg/auth"
	"github.com/GlebRadaev/contracthub/pkg/logger"
)

const (
	workers  = 4
	tokenTTL = 30 * 24 * time.Hour
)

type profileSeed struct {
	key, first, last, profession string
	balance                      string
	typ                          domain.ProfileType
}

type contractSeed struct {
	key, client, contractor string
	status                  domain.ContractStatus
}

type jobSeed struct {
	contract, description, price string
	paidAt                       string
}

var profiles = []profileSeed{
	{"harry", "Harry", "Potter", "Wizard", "1150", domain.ProfileClient},
	{"robot", "Mr", "Robot", "Hacker", "231.11", domain.ProfileClient},
	{"snow", "John", "Snow", "Knows nothing", "451.3", domain.ProfileClient},
	{"ash", "Ash", "Kethcum", "Pokemon master", "1.3", domain.ProfileClient},
	{"lenon", "John", "Lenon", "Musician", "64", domain.ProfileContractor},
	{"linus", "Linus", "Torvalds", "Programmer", "1214", domain.ProfileContractor},
	{"turing", "Alan", "Turing", "Programmer", "22", domain.ProfileContractor},
	{"aragorn", "Aragorn", "II Elessar Telcontarvalds", "Fighter", "314", domain.ProfileContractor},
}

var contracts = []contractSeed{
	{"c1", "harry", "lenon", domain.ContractTerminated},
	{"c2", "harry", "linus", domain.ContractInProgress},
	{"c3", "robot", "linus", domain.ContractInProgress},
	{"c4", "robot", "turing", domain.ContractInProgress},
	{"c5", "snow", "lenon", domain.ContractNew},
	{"c6", "snow", "linus", domain.ContractInProgress},
	{"c7", "ash", "turing", domain.ContractInProgress},
	{"c8", "ash", "linus", domain.ContractInProgress},
	{"c9", "ash", "aragorn", domain.ContractInProgress},
}

var jobs = []jobSeed{
	{"c1", "work", "200", ""},
	{"c2", "work", "201", ""},
	{"c3", "work", "202", ""},
	{"c4", "work", "200", ""},
	{"c7", "work", "200", ""},
	{"c7", "work", "2020", "2020-08-15T19:11:26Z"},
	{"c2", "work", "200", "2020-08-15T19:11:26Z"},
	{"c3", "work", "200", "2020-08-16T19:11:26Z"},
	{"c1", "work", "200", "2020-08-17T19:11:26Z"},
	{"c5", "work", "200", "2020-08-17T19:11:26Z"},
	{"c3", "work", "21", "2020-08-10T19:11:26Z"},
	{"c4", "work", "21", "2020-08-15T19:11:26Z"},
	{"c4", "work", "121", "2020-08-15T19:11:26Z"},
	{"c3", "work", "121", "2020-08-14T23:11:26Z"},
}

// registry maps seed keys to stored records while workers fill it.
type registry[T any] struct {
	mu    sync.Mutex
	items map[string]T
}

func (r *registry[T]) put(key string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil {
		r.items = map[string]T{}
	}
	r.items[key] = v
}

func (r *registry[T]) get(key string) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[key]
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("Can't seed database")
		zap.L().Fatal("Can't seed database", zap.Error(err))
	}
	zap.L().Info("database seeded")
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if err := logger.InitLogger(cfg); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := pg.RunMigrations(ctx, pool); err != nil {
		return err
	}

	db := pg.New(pool)
	profileRepo := profilerepo.New(db)
	contractRepo := contractrepo.New(db)
	jobRepo := jobrepo.New(db)

	var stored registry[*domain.Profile]
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range profiles {
		g.Go(func() error {
			balance, err := decimal.NewFromString(p.balance)
			if err != nil {
				return fmt.Errorf("profile %s: %w", p.key, err)
			}
			profile, err := domain.NewProfile(p.first, p.last, p.profession, balance, p.typ)
			if err != nil {
				return fmt.Errorf("profile %s: %w", p.key, err)
			}
			if _, err := profileRepo.Create(gctx, profile); err != nil {
				return err
			}
			stored.put(p.key, profile)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var storedContracts registry[*domain.Contract]
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range contracts {
		g.Go(func() error {
			contract, err := domain.NewContract(stored.get(c.client), stored.get(c.contractor), "bla bla bla", c.status)
			if err != nil {
				return fmt.Errorf("contract %s: %w", c.key, err)
			}
			if _, err := contractRepo.Create(gctx, contract); err != nil {
				return err
			}
			storedContracts.put(c.key, contract)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		g.Go(func() error {
			job := &domain.Job{
				ContractID:  storedContracts.get(j.contract).ID,
				Description: j.description,
				Price:       decimal.RequireFromString(j.price),
			}
			if j.paidAt != "" {
				paidAt, err := time.Parse(time.RFC3339, j.paidAt)
				if err != nil {
					return err
				}
				job.Paid, job.PaymentDate = true, &paidAt
			}
			_, err := jobRepo.Create(gctx, job)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return issueTokens(auth.NewJWTService(cfg.JWTSecret), &stored)
}

// issueTokens logs a bearer token for every seeded profile.
func issueTokens(tokens auth.JWTServiceInterface, stored *registry[*domain.Profile]) error {
	expires := time.Now().Add(tokenTTL)
	for _, p := range profiles {
		profile := stored.get(p.key)
		token, err := tokens.GenerateJWT(profile.ID, expires)
		if err != nil {
			return fmt.Errorf("token for %s: %w", p.key, err)
		}
		zap.L().Info("seeded profile",
			zap.Int("profileID", profile.ID),
			zap.String("name", profile.FirstName+" "+profile.LastName),
			zap.String("type", string(profile.Type)),
			zap.String("token", token),
		)
	}
	return nil
}
