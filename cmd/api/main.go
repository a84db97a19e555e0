package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/config"
	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/handlers"
	"courtvista-backend/internal/identity"
	"courtvista-backend/internal/messaging"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/notifications"
	"courtvista-backend/internal/qna"
	"courtvista-backend/internal/store"
	"courtvista-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("store open failed", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore(context.Background())

	jwtManager := &auth.Manager{
		Secret:     []byte(cfg.JWTSecret),
		AccessTTL:  cfg.AccessTTL(),
		RefreshTTL: cfg.RefreshTTL(),
		Issuer:     "courtvista-backend",
	}

	var mailer consultations.Mailer
	if m := notifications.FromConfig(cfg); m != nil {
		mailer = m
		logger.Info("mailer enabled", slog.String("provider", cfg.MailProvider), slog.String("sender", cfg.MailSenderEmail))
	} else {
		logger.Info("mailer disabled")
	}

	val := validation.New()

	identityService := identity.NewService(
		identity.NewAccountRepository(kv, logger),
		identity.NewSessionRepository(kv),
		jwtManager,
		identity.Admin{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
	)
	identityHandler := identity.NewHandler(identityService, val, logger, cfg.CookieSecure)

	consultationService := consultations.NewService(consultations.NewRepository(kv, logger), mailer, cfg.Timezone, logger)
	consultationHandler := consultations.NewHandler(consultationService, val, logger)

	hub := messaging.NewHub(cfg.FrontendOrigins, logger)
	messagingService := messaging.NewService(consultationService, messaging.NewRepository(kv, logger), hub)
	messagingHandler := messaging.NewHandler(messagingService, hub, val, logger)

	qnaService := qna.NewService(kv, cfg.Timezone, logger)
	qnaHandler := qna.NewHandler(qnaService, val, logger)

	server := &handlers.Server{
		Store:         kv,
		Cache:         kv,
		CacheTTL:      cfg.CacheTTL(),
		Val:           val,
		Log:           logger,
		Identity:      identityService,
		Consultations: consultationService,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(middleware.Authenticate(jwtManager, identityService))

	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, cfg.RateLimitWindow())
	authLimiter := middleware.NewRateLimiter(cfg.RateLimitAuth, cfg.RateLimitWindow())
	qnaLimiter := middleware.NewRateLimiter(cfg.RateLimitQnA, cfg.RateLimitWindow())

	signedIn := identity.RequireRole(models.RoleUser, models.RoleLawyer, models.RoleAdmin)
	members := identity.RequireRole(models.RoleUser, models.RoleLawyer)

	registerRoutes := func(api chi.Router) {
		api.Route("/messages", func(m chi.Router) {
			// Websocket streams outlive any request timeout.
			m.With(members).Get("/{id}/ws", messagingHandler.Stream)
			m.Group(func(m chi.Router) {
				m.Use(chiMiddleware.Timeout(30 * time.Second))
				m.With(members).Get("/", messagingHandler.List)
				m.With(signedIn).Get("/{id}", messagingHandler.Thread)
				m.With(members).Post("/{id}", messagingHandler.Send)
			})
		})

		api.Group(func(api chi.Router) {
			api.Use(chiMiddleware.Timeout(30 * time.Second))

			api.Get("/health", server.Health)
			api.Get("/lawyers", server.SearchLawyers)
			api.Get("/lawyers/featured", server.FeaturedLawyers)
			api.Get("/lawyers/{id}", server.GetLawyer)
			api.Get("/practice-areas", server.PracticeAreas)
			api.Get("/filters", server.Filters)
			api.Get("/compare", server.Compare)
			api.Post("/compare/toggle", server.CompareToggle)

			api.Get("/qna", qnaHandler.List)
			api.With(qnaLimiter.Middleware).Post("/qna", qnaHandler.Ask)

			api.Route("/auth", func(a chi.Router) {
				a.With(authLimiter.Middleware).Post("/register", identityHandler.Register)
				a.With(authLimiter.Middleware).Post("/login", identityHandler.Login)
				a.Post("/refresh", identityHandler.Refresh)
				a.Post("/logout", identityHandler.Logout)
				a.Get("/me", identityHandler.Me)
				a.With(signedIn).Put("/profile", identityHandler.UpdateProfile)
			})

			api.Route("/consultations", func(c chi.Router) {
				c.Get("/slots", consultationHandler.Slots)
				c.With(bookingsLimiter.Middleware).Post("/", consultationHandler.Create)
				c.With(signedIn).Get("/{id}", consultationHandler.Get)
				c.With(identity.RequireRole(models.RoleLawyer)).Patch("/{id}/confirm", consultationHandler.Confirm)
				c.With(identity.RequireRole(models.RoleLawyer)).Patch("/{id}/decline", consultationHandler.Decline)
			})

			api.Route("/dashboard", func(d chi.Router) {
				d.With(identity.RequireRole(models.RoleUser)).Get("/user", server.UserDashboard)
				d.With(identity.RequireRole(models.RoleLawyer)).Get("/lawyer", server.LawyerDashboard)
				d.With(identity.RequireRole(models.RoleAdmin)).Get("/admin", server.AdminDashboard)
			})

			api.Route("/admin", func(admin chi.Router) {
				admin.Use(identity.RequireRole(models.RoleAdmin))
				admin.Get("/consultations", consultationHandler.AdminList)
				admin.Get("/questions", qnaHandler.AdminList)
				admin.Get("/accounts", identityHandler.AdminListAccounts)
				admin.Patch("/accounts/{id}/lawyer", identityHandler.AdminLinkLawyer)
			})
		})
	}

	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	consultationService.WaitForMail()
	logger.Info("server stopped")
}
