package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/selfhq/internal/api"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/cleanup"
	"github.com/limbo/selfhq/pkg/config"
	jwtservice "github.com/limbo/selfhq/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	pool := repository.Connect(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	})
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	authService := service.NewAuthService(repository.NewUsersRepoWithConn(pool))

	serv := api.New(&api.ServicesList{
		AuthService:        authService,
		ProfilesService:    service.NewProfilesService(profilesRepo),
		FriendsService:     service.NewFriendsService(repository.NewFriendsRepoWithConn(pool), profilesRepo),
		ChallengesService:  service.NewChallengesService(repository.NewChallengesRepoWithConn(pool)),
		ReflectionsService: service.NewReflectionsService(repository.NewReflectionsRepoWithConn(pool)),
		ResourcesService:   service.NewResourcesService(repository.NewResourcesRepoWithConn(pool)),
		HabitsService:      service.NewHabitsService(habitsRepo),
		ChecksService:      service.NewHabitChecksService(habitsRepo, repository.NewHabitChecksRepoWithConn(pool)),
		JwtService:         jwtservice.New(secret, cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
		DB:                 pool,
	},
		api.WithAllowedOrigins(strings.Split(cfg.GetStringOr("CORS_ALLOWED_ORIGINS", "*"), ",")...),
		api.WithRateLimit(float64(cfg.GetInt("RATE_LIMIT_RPS", 5)), cfg.GetInt("RATE_LIMIT_BURST", 30)),
		api.WithShutdownTimeout(cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go purgeRevokedTokens(ctx, authService, cfg.GetDuration("REVOCATION_PURGE_INTERVAL", time.Hour))

	if err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// purgeRevokedTokens drops revocations of expired tokens every period until ctx is done.
func purgeRevokedTokens(ctx context.Context, auth service.AuthServiceI, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			n, err := auth.PurgeRevokedTokens(purgeCtx)
			cancel()
			if err != nil {
				slog.Error("purging revoked tokens error", slog.String("error", err.Error()))
				continue
			}
			slog.Info("purged revoked tokens", slog.Int64("count", n))
		}
	}
}
