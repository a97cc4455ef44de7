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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/database"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/services"
	"github.com/localnerve/catalogdb/internal/utils"
)

func main() {
	var listenerOnly bool
	flag.BoolVar(&listenerOnly, "listener", false, "only check that the server port accepts connections")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: "error", Format: cfg.LogFormat})

	if listenerOnly {
		if err := utils.PingServer(cfg.Port); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A memory cache has nothing to ping across processes
	var pinger services.Pinger
	if cfg.CacheType == "redis" {
		store, err := cache.Open(ctx, cfg)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to connect to cache")
		}
		defer store.Close()
		pinger = store
	}

	// Perform health check
	result := services.HealthCheck(ctx, cfg, db, pinger)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to marshal health check result")
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if !result.Healthy() {
		os.Exit(1)
	}
}
