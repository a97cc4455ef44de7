package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/go-sql-driver/mysql"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "testdb"
	containerUser     = "testuser"
	containerPassword = "testpass"
)

// SkipWithoutDocker skips container tests in short mode or without a usable provider
func SkipWithoutDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

func imageOr(env, fallback string) string {
	if image := os.Getenv(env); image != "" {
		return image
	}
	return fallback
}

// startDatabase runs image and returns a config pointing at its mapped port
func startDatabase(t *testing.T, dbType, image, port string, env map[string]string, waitFor wait.Strategy) *config.Config {
	t.Helper()
	ctx := context.Background()

	tcpPort, err := nat.NewPort("tcp", port)
	require.NoError(t, err)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			WaitingFor:   wait.ForAll(wait.ForListeningPort(tcpPort), waitFor).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start %s container", dbType)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate %s container: %v", dbType, err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, tcpPort)
	require.NoError(t, err)

	return &config.Config{
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBConnectionLimit: 5,
		LogLevel:          "error",
	}
}

// StartMariaDB starts a MariaDB container and waits until it accepts logins
func StartMariaDB(t *testing.T) *config.Config {
	t.Helper()

	cfg := startDatabase(t, "mariadb", imageOr("DB_IMAGE", "mariadb:11"), "3306", map[string]string{
		"MARIADB_ROOT_PASSWORD": "rootpass",
		"MARIADB_DATABASE":      containerDatabase,
		"MARIADB_USER":          containerUser,
		"MARIADB_PASSWORD":      containerPassword,
	}, wait.ForLog("ready for connections").WithOccurrence(2))

	require.NoError(t, waitForMySQL(cfg, 30*time.Second), "mariadb never accepted logins")
	return cfg
}

// StartPostgres starts a PostgreSQL container
func StartPostgres(t *testing.T) *config.Config {
	t.Helper()

	return startDatabase(t, "postgres", imageOr("POSTGRES_IMAGE", "postgres:17-alpine"), "5432", map[string]string{
		"POSTGRES_DB":       containerDatabase,
		"POSTGRES_USER":     containerUser,
		"POSTGRES_PASSWORD": containerPassword,
	}, wait.ForLog("database system is ready to accept connections").WithOccurrence(2))
}

// waitForMySQL pings with the application credentials until the server answers
func waitForMySQL(cfg *config.Config, timeout time.Duration) error {
	dsn := mysql.Config{
		User:                 cfg.DBUser,
		Passwd:               cfg.DBPassword,
		Net:                  "tcp",
		Addr:                 net.JoinHostPort(cfg.DBHost, cfg.DBPort),
		DBName:               cfg.DBDatabase,
		AllowNativePasswords: true,
	}

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(timeout)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("ping %s: %w", dsn.Addr, err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
