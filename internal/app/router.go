package app

import (
	"github.com/avc/cashback-settlement/internal/handlers"
	"github.com/avc/cashback-settlement/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check и метрики
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", metrics.Handler())

	// Защищенные эндпоинты: вызывающие сервисы (checkout, платежный вебхук)
	// предъявляют сервисный токен
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))
		r.Post("/api/purchases", deps.handlers.purchases.CreatePurchase)
		r.Get("/api/purchases/{purchaseID}", deps.handlers.purchases.GetPurchase)
		r.Post("/api/purchases/{purchaseID}/transition", deps.handlers.purchases.TransitionPurchase)
	})
}
