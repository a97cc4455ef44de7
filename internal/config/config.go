// config.go
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

package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/localnerve/catalogdb/internal/localization"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // sqlite, mysql, postgres, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBSeed            bool

	// Cache configuration
	CacheType       string // memory, redis
	CacheTTLSeconds int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	// Shared secret gate
	AuthHeader string
	AuthSecret string

	// BcryptCost is the work factor for user password hashes
	BcryptCost int

	// Localization
	DefaultCulture string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables.
// If ENV_FILE names a file, it is loaded first without overriding variables
// already present in the environment.
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", "file:catalogdb?mode=memory&cache=shared"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBSeed:            getEnvAsBool("DB_SEED", false),
		CacheType:         getEnv("CACHE_TYPE", "memory"),
		CacheTTLSeconds:   getEnvAsInt("CACHE_TTL_SECONDS", 0),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		AuthHeader:        getEnv("AUTH_HEADER", "passwordKey"),
		AuthSecret:        getEnv("AUTH_SECRET", "passwordKey123456789"),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 10),
		DefaultCulture:    getEnv("DEFAULT_CULTURE", "en"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field combinations that cannot work at runtime
func (cfg *Config) Validate() error {
	switch cfg.DBType {
	case "sqlite":
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBUser == "" {
			return fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", cfg.DBType)
	}

	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}

	switch cfg.CacheType {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported CACHE_TYPE: %s", cfg.CacheType)
	}

	if cfg.CacheTTLSeconds < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative")
	}

	if cfg.AuthHeader == "" || cfg.AuthSecret == "" {
		return fmt.Errorf("AUTH_HEADER and AUTH_SECRET must not be empty")
	}

	if cfg.BcryptCost != 0 && (cfg.BcryptCost < 4 || cfg.BcryptCost > 31) {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	if cfg.DefaultCulture != "" && !slices.Contains(localization.Cultures(), cfg.DefaultCulture) {
		return fmt.Errorf("DEFAULT_CULTURE %s is not one of %v", cfg.DefaultCulture, localization.Cultures())
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
