package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/limbo/selfhq/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimit       = rate.Limit(5)
	defaultRateBurst       = 30
)

// Pinger reports whether the storage behind the services is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mx                 *chi.Mux
	authService        service.AuthServiceI
	profilesService    service.ProfilesServiceI
	friendsService     service.FriendsServiceI
	challengesService  service.ChallengesServiceI
	reflectionsService service.ReflectionsServiceI
	resourcesService   service.ResourcesServiceI
	habitsService      service.HabitsServiceI
	checksService      service.HabitChecksServiceI
	jwtService         JWTServiceI
	db                 Pinger

	registry *prometheus.Registry
	metrics  *metrics
	limiter  *visitorLimiter

	allowedOrigins  []string
	shutdownTimeout time.Duration
}

type ServicesList struct {
	AuthService        service.AuthServiceI
	ProfilesService    service.ProfilesServiceI
	FriendsService     service.FriendsServiceI
	ChallengesService  service.ChallengesServiceI
	ReflectionsService service.ReflectionsServiceI
	ResourcesService   service.ResourcesServiceI
	HabitsService      service.HabitsServiceI
	ChecksService      service.HabitChecksServiceI
	JwtService         JWTServiceI
	// Used by /healthz, optional
	DB Pinger
}

type Option func(*Server)

// WithAllowedOrigins sets the origins the web front end is served from.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithRateLimit limits every client address to rps requests per second on the
// throttled routes, allowing bursts of burst requests.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = newVisitorLimiter(rate.Limit(rps), burst)
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		mx:                 chi.NewMux(),
		authService:        servicesOptions.AuthService,
		profilesService:    servicesOptions.ProfilesService,
		friendsService:     servicesOptions.FriendsService,
		challengesService:  servicesOptions.ChallengesService,
		reflectionsService: servicesOptions.ReflectionsService,
		resourcesService:   servicesOptions.ResourcesService,
		habitsService:      servicesOptions.HabitsService,
		checksService:      servicesOptions.ChecksService,
		jwtService:         servicesOptions.JwtService,
		db:                 servicesOptions.DB,
		registry:           registry,
		metrics:            newMetrics(registry),
		limiter:            newVisitorLimiter(defaultRateLimit, defaultRateBurst),
		allowedOrigins:     []string{"*"},
		shutdownTimeout:    defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)

	s.mx.Get("/healthz", s.Health)
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.RateLimitMiddleware)
			r.Post("/auth/signup", s.SignUp)
			r.Post("/auth/signin", s.SignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.OptionalAuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/resources", s.GetResources)
			r.Get("/resources/featured", s.GetFeaturedResources)
			r.Get("/resources/popular", s.GetPopularResources)
			r.Get("/resources/categories", s.GetCategories)
			r.Get("/resources/stats", s.GetResourceStats)
			r.Get("/resources/{id}", s.GetResource)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/auth/signout", s.SignOut)
			r.Get("/auth/me", s.Me)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/profiles/me", s.GetCurrentProfile)
			r.Patch("/profiles/me", s.UpdateProfile)
			r.Post("/profiles/me/onboarding", s.CompleteOnboarding)
			r.With(s.RateLimitMiddleware).Get("/profiles/username-available", s.CheckUsername)
			r.Get("/profiles/search", s.SearchUsers)
			r.Post("/profiles/bulk", s.GetBulkPublicUsers)
			r.Get("/profiles/by-username/{username}", s.GetProfileByUsername)
			r.Get("/profiles/{id}", s.GetProfileByUserID)
			r.Get("/profiles/{id}/public", s.GetPublicUser)

			r.Get("/friends", s.GetFriends)
			r.Get("/friends/requests", s.GetPendingFriendRequests)
			r.Post("/friends/requests", s.SendFriendRequest)
			r.Patch("/friends/requests/{id}", s.RespondToFriendRequest)
			r.Get("/friends/invitations", s.GetSentInvitations)
			r.Post("/friends/invitations", s.InviteFriend)
			r.Post("/friends/invitations/accept", s.AcceptInvitation)

			r.Get("/challenges", s.GetUserChallenges)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges/public", s.GetPublicChallenges)
			r.Get("/challenges/invitations", s.GetPendingChallengeInvitations)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Delete("/challenges/{id}", s.DeleteChallenge)
			r.Post("/challenges/{id}/join", s.JoinChallenge)
			r.Post("/challenges/{id}/respond", s.RespondToChallengeInvitation)
			r.Post("/challenges/{id}/complete", s.CompleteChallenge)
			r.Put("/challenges/{id}/progress", s.UpdateChallengeProgress)
			r.Get("/challenges/{id}/participants", s.GetChallengeParticipants)

			r.Get("/reflections", s.GetUserReflections)
			r.Get("/reflections/current", s.GetCurrentWeekReflection)
			r.Put("/reflections/current", s.SaveReflection)
			r.Get("/reflections/stats", s.GetReflectionStats)
			r.Get("/reflections/week/{week}", s.GetReflectionForWeek)
			r.Delete("/reflections/{id}", s.DeleteReflection)

			r.Get("/resources/mine", s.GetUserResources)
			r.Post("/resources", s.SubmitResource)
			r.Put("/resources/{id}", s.UpdateResource)
			r.Delete("/resources/{id}", s.DeleteResource)
			r.Post("/resources/{id}/vote", s.VoteOnResource)
			r.Get("/resources/{id}/vote", s.GetUserVote)

			r.Get("/habits", s.GetUserHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/public", s.GetPublicHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Patch("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Get("/habits/{id}/checks", s.GetHabitChecks)
			r.Post("/habits/{id}/checks", s.CheckHabit)
			r.Delete("/habits/{id}/checks", s.UncheckHabit)
			r.Get("/habits/{id}/stats", s.GetHabitStats)
		})
	})
}

// Handler returns the router wrapped with CORS handling.
func (s *Server) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)(s.mx)
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.limiter.Sweep(sweepCtx, time.Minute, 3*time.Minute)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}
