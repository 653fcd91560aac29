package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/medifind/internal/infra/config"
	"github.com/yanqian/medifind/internal/infra/ratelimit"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, limiter ratelimit.Limiter) (*http.Server, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api/v1", rateLimitMiddleware(limiter, handler.logger))
	{
		api.POST("/search", handler.Search)
		api.POST("/chat", handler.Chat)
		api.GET("/articles", handler.Articles)
		api.GET("/specialties", handler.Specialties)

		tools := api.Group("/tools")
		tools.POST("/bmi", handler.BMI)
		tools.POST("/pregnancy", handler.Pregnancy)
		tools.POST("/vaccines", handler.Vaccines)

		api.POST("/auth/login", handler.Login)
		api.GET("/profile", authMiddleware(handler.auth), handler.Profile)
		api.POST("/bookings", optionalAuthMiddleware(handler.auth), handler.Book)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}, nil
}
