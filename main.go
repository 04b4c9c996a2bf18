package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "compound-interest/http"
	"compound-interest/repository"
	"compound-interest/service"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("Warning: could not read .env: %v", err)
	}
	cfg := loadConfig(os.Getenv)

	calculationRepo := repository.NewCalculationRepositoryMemory(cfg.HistoryLimit)
	cache := newCache(cfg)

	formatter := service.NewFormatter(cfg.CurrencyPrefix)
	explainer := service.NewExplanationService(cfg.AnthropicAPIKey, formatter)
	if !explainer.Enabled() {
		log.Println("ANTHROPIC_API_KEY not set, using built-in explanations")
	}

	interestService := service.NewInterestService(calculationRepo, cache, formatter, explainer)
	interestHandler := httpLayer.NewInterestHandler(interestService)

	comparisonService := service.NewComparisonService(interestService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	themeService := service.NewThemeService(cache)
	themeHandler := httpLayer.NewThemeHandler(themeService)

	calcLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer calcLimiter.Stop()
	themeLimiter := httpLayer.NewRateLimiter(cfg.ThemeRateLimit, cfg.RateWindow)
	defer themeLimiter.Stop()

	mux := newRouter(interestHandler, comparisonHandler, themeHandler, calcLimiter, themeLimiter)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Compound interest API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newRouter puts the theme routes on their own bucket so loading and
// toggling the theme does not use up the calculation allowance.
func newRouter(
	interestHandler *httpLayer.InterestHandler,
	comparisonHandler *httpLayer.ComparisonHandler,
	themeHandler *httpLayer.ThemeHandler,
	calcLimiter *httpLayer.RateLimiter,
	themeLimiter *httpLayer.RateLimiter,
) *http.ServeMux {
	calcRoutes := map[string]http.HandlerFunc{
		"/interest/calculate": interestHandler.Calculate,
		"/interest/form":      interestHandler.CalculateForm,
		"/interest/history":   interestHandler.History,
		"/interest/compare":   comparisonHandler.CompareFrequencies,
	}
	themeRoutes := map[string]http.HandlerFunc{
		"/theme":        themeHandler.Theme,
		"/theme/toggle": themeHandler.Toggle,
	}

	mux := http.NewServeMux()
	for pattern, handler := range calcRoutes {
		mux.Handle(pattern, httpLayer.RateLimitMiddleware(calcLimiter, handler))
	}
	for pattern, handler := range themeRoutes {
		mux.Handle(pattern, httpLayer.RateLimitMiddleware(themeLimiter, handler))
	}
	return mux
}

// newCache uses Redis when REDIS_ADDR is set and reachable, memory otherwise.
func newCache(cfg Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPrefix)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unreachable, using memory cache: %v", cfg.RedisAddr, err)
		redisCache.Close()
		return repository.NewMemoryCache()
	}

	log.Printf("Using redis cache at %s", cfg.RedisAddr)
	return redisCache
}
