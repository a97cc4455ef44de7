package services

import (
	"context"
	"fmt"

	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/logging"
	"gorm.io/gorm"
)

// Pinger is satisfied by the response cache backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Cache        string            `json:"cache"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

func (r *HealthCheckResult) fail(component, status string, err error) {
	r.Status = "unhealthy"
	r.Details[component+"_error"] = err.Error()
	msg := fmt.Sprintf("%s %s: %v", component, status, err)
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage += "; " + msg
	}
	logging.Warn().Err(err).Str("component", component).Msg("Health check failed")
}

// HealthCheck pings the database and the response cache
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, cache Pinger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.fail("database", "connection error", err)
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		result.fail("database", "ping failed", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
	}

	if cache == nil {
		result.Cache = "disabled"
	} else if err := cache.Ping(ctx); err != nil {
		result.Cache = "unreachable"
		result.fail("cache", "ping failed", err)
	} else {
		result.Cache = "ok"
		result.Details["cache_type"] = cfg.CacheType
	}

	if result.Healthy() {
		logging.Debug().Msg("Health check passed")
	}

	return result
}
