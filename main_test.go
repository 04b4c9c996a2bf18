package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpLayer "compound-interest/http"
	"compound-interest/repository"
	"compound-interest/service"
)

func TestNewRouter_ThemeRoutesHaveOwnBucket(t *testing.T) {
	cache := repository.NewMemoryCache()
	interestService := service.NewInterestService(
		repository.NewCalculationRepositoryMemory(0), cache, service.NewFormatter(""), nil,
	)

	calcLimiter := httpLayer.NewRateLimiter(1, time.Minute)
	defer calcLimiter.Stop()
	themeLimiter := httpLayer.NewRateLimiter(3, time.Minute)
	defer themeLimiter.Stop()

	mux := newRouter(
		httpLayer.NewInterestHandler(interestService),
		httpLayer.NewComparisonHandler(service.NewComparisonService(interestService)),
		httpLayer.NewThemeHandler(service.NewThemeService(cache)),
		calcLimiter,
		themeLimiter,
	)

	do := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(http.MethodGet, "/interest/history"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do(http.MethodGet, "/interest/history"); code != http.StatusTooManyRequests {
		t.Fatalf("expected calculation bucket to be exhausted, got %d", code)
	}

	if code := do(http.MethodGet, "/theme"); code != http.StatusOK {
		t.Errorf("theme GET should not share the calculation bucket, got %d", code)
	}
	if code := do(http.MethodPost, "/theme/toggle"); code != http.StatusOK {
		t.Errorf("theme toggle should not share the calculation bucket, got %d", code)
	}
}
