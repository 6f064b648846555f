package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tripcraft/tripcraft-api/internal/config"
	"github.com/tripcraft/tripcraft-api/internal/handler"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/internal/service"
	"github.com/tripcraft/tripcraft-api/internal/utils"
	"github.com/tripcraft/tripcraft-api/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

type handlers struct {
	auth        *handler.AuthHandler
	trip        *handler.TripHandler
	itinerary   *handler.ItineraryHandler
	profile     *handler.ProfileHandler
	destination *handler.DestinationHandler
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Mongo())

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry.Duration)
	geminiClient := service.NewGeminiClient(cfg.Gemini, infra.Logger())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := service.NewAuthService(repos.User, jwtManager, cfg.Auth.BCryptCost)
	tripService := service.NewTripService(repos.Trip, repos.Destination, rng)
	itineraryService := service.NewItineraryService(repos.Itinerary, repos.Trip)
	profileService := service.NewProfileService(repos.User)
	destinationService := service.NewDestinationService(repos.Destination, geminiClient)

	h := handlers{
		auth:        handler.NewAuthHandler(authService, cfg.JWT.TokenExpiry.Duration, cfg.Auth.SecureCookie),
		trip:        handler.NewTripHandler(tripService),
		itinerary:   handler.NewItineraryHandler(itineraryService),
		profile:     handler.NewProfileHandler(profileService),
		destination: handler.NewDestinationHandler(destinationService),
	}

	healthChecker := NewHealthChecker(infra)

	router := gin.Default()
	router.Use(otelgin.Middleware("tripcraft-api"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, h, authService, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	h handlers,
	authService service.AuthService,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.auth.Register)
			auth.POST("/login", h.auth.Login)
			auth.GET("/status", h.auth.Status)
			auth.POST("/logout", h.auth.Logout)
		}

		protected := api.Group("")
		protected.Use(handler.AuthMiddleware(authService))
		{
			trips := protected.Group("/trips")
			{
				trips.GET("", h.trip.List)
				trips.POST("/create", h.trip.Create)
				trips.GET("/recent", h.trip.Recent)
				trips.GET("/upcoming", h.trip.Upcoming)
				trips.GET("/:id", h.trip.Get)
				trips.PUT("/:id", h.trip.Update)
				trips.DELETE("/:id", h.trip.Delete)
			}

			itinerary := protected.Group("/itinerary")
			{
				itinerary.GET("", h.itinerary.List)
				itinerary.POST("", h.itinerary.Create)
				itinerary.GET("/trip/:tripId", h.itinerary.GetByTrip)
				itinerary.GET("/:id", h.itinerary.Get)
				itinerary.PUT("/:id", h.itinerary.Update)
				itinerary.DELETE("/:id", h.itinerary.Delete)
			}

			profile := protected.Group("/profile")
			{
				profile.PUT("/:id", h.profile.Update)
				profile.DELETE("/:id", h.profile.Delete)
			}

			destinations := protected.Group("/destinations")
			{
				destinations.POST("/:name/generate", h.destination.Generate)
				destinations.PUT("/:name/timeslot", h.destination.ApplyTimeSlot)
			}
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
