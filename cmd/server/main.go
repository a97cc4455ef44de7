// main.go
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/catalogdb/data"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/database"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/server"
)

// @title CatalogDB API
// @version 1.0.0
// @description Go Fiber catalog data service with filtering, caching and localization
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/catalogdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey SharedSecret
// @in header
// @name passwordKey

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.DBSeed {
		if err := database.Seed(db, data.Seed); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := cache.Open(ctx, cfg)
	cancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open response cache")
	}
	defer store.Close()

	app := server.New(server.Deps{Config: cfg, DB: db, Cache: store})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logging.Info().Msg("Gracefully shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	// Start server
	logging.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logging.Error().Err(err).Msg("Failed to start server")
		return
	}

	logging.Info().Msg("Server stopped")
}
