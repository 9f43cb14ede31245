package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/config"
	httpLayer "github.com/dvillagrablanco/inmova-app-sub018/http"
	"github.com/dvillagrablanco/inmova-app-sub018/repository"
	"github.com/dvillagrablanco/inmova-app-sub018/service"
)

func main() {
	logger := config.NewLogger(logrus.InfoLevel, os.Stdout)

	cfg := config.Load(func(key, value string, err error) {
		logger.WithFields(logrus.Fields{"key": key, "value": value, "error": err}).
			Warn("invalid config value, using default")
	})
	logger.SetLevel(cfg.LogLevel)

	var cache repository.CacheRepository
	if cfg.RedisAddress != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddress)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			// Un cache caído solo degrada rendimiento
			logger.WithError(err).Warn("redis unreachable, results will be recomputed")
		}
		cancel()
		cache = redisCache
	} else {
		cache = repository.NewMemoryCache()
	}

	analysisRepo := repository.NewAnalysisRepositoryMemory()

	loanService := service.NewLoanService()
	investmentService := service.NewInvestmentService(analysisRepo, cache, cfg.CacheTTL, logger)
	rentRollService := service.NewRentRollService(service.DefaultRentRollPolicy(), cache, cfg.CacheTTL, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:       httpLayer.NewLoanHandler(loanService, logger),
		Investment: httpLayer.NewInvestmentHandler(investmentService, logger),
		RentRoll:   httpLayer.NewRentRollHandler(rentRollService, logger),
	}, rateLimiter)

	handler := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, router))

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.ServerAddress).Info("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("Error starting server")
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Error during server shutdown")
	}

	logger.Info("Server exited")
}
