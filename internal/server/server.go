// server.go
//
// A multi-resource catalog data service with filtering, caching and localization
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of catalogdb.
// catalogdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// catalogdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with catalogdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package server assembles the Fiber application: middleware, routes,
// metrics, docs and the error envelope.
package server

import (
	"context"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/handlers"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/metrics"
	"github.com/localnerve/catalogdb/internal/middleware"
	"github.com/localnerve/catalogdb/internal/services"
	"github.com/localnerve/catalogdb/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	_ "github.com/localnerve/catalogdb/docs/api" // Swagger docs
)

// Deps are the collaborators the application is built from
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  cache.Cache

	// Registry receives request and cache metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New builds the Fiber application
func New(deps Deps) *fiber.App {
	cfg := deps.Config
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if logging.ParseLevel(cfg.LogLevel) <= zerolog.InfoLevel {
		app.Use(logger.New(logger.Config{
			Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: time.RFC3339,
		}))
	}
	app.Use(compress.New())

	// Prometheus metrics
	prom := fiberprometheus.NewWithRegistry(registry, "catalogdb", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
	appMetrics := metrics.New(registry)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		result := services.HealthCheck(ctx, cfg, deps.DB, deps.Cache)
		status := fiber.StatusOK
		if !result.Healthy() {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	api := app.Group("/api")
	api.Use(middleware.NewRequestCounter().Handler())
	api.Use(middleware.Language(cfg.DefaultCulture))

	registerRoutes(api, cfg, deps, appMetrics)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}
