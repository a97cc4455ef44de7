package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/joho/godotenv"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type containers struct {
	db    testcontainers.Container
	redis testcontainers.Container
}

func (c *containers) terminate() {
	ctx := context.Background()
	if c.redis != nil {
		if err := c.redis.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate Redis: %v\n", err)
		}
	}
	if c.db != nil {
		if err := c.db.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate MariaDB: %v\n", err)
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func start(ctx context.Context, image, port string, env map[string]string, waitFor wait.Strategy) (testcontainers.Container, string, error) {
	tcpPort, err := nat.NewPort("tcp", port)
	if err != nil {
		return nil, "", err
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			WaitingFor:   wait.ForAll(wait.ForListeningPort(tcpPort), waitFor).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return container, "", fmt.Errorf("failed to start %s: %w", image, err)
	}

	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		return container, "", err
	}
	return container, mapped.Port(), nil
}

func createAll(ctx context.Context) (*containers, error) {
	var (
		c    containers
		port string
		err  error
	)

	c.db, port, err = start(ctx, getEnv("DB_IMAGE", "mariadb:11"), "3306", map[string]string{
		"MARIADB_ROOT_PASSWORD": getEnv("DB_ROOT_PASSWORD", "rootpass"),
		"MARIADB_DATABASE":      getEnv("DB_DATABASE", "catalogdb"),
		"MARIADB_USER":          getEnv("DB_USER", "catalog"),
		"MARIADB_PASSWORD":      getEnv("DB_PASSWORD", "catalogpass"),
	}, wait.ForLog("ready for connections").WithOccurrence(2))
	if err != nil {
		return &c, err
	}
	fmt.Printf("DB_TYPE=mariadb\nDB_HOST=localhost\nDB_PORT=%s\n", port)

	c.redis, port, err = start(ctx, getEnv("REDIS_IMAGE", "redis:7-alpine"), "6379", nil,
		wait.ForLog("Ready to accept connections"))
	if err != nil {
		return &c, err
	}
	fmt.Printf("CACHE_TYPE=redis\nREDIS_ADDR=localhost:%s\n", port)

	return &c, nil
}

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the catalogdb backing services (MariaDB and Redis) in containers,
configured from the environment variables in the .env file.
The variables needed to reach them are printed once they are ready.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	c, err := createAll(context.Background())
	if err != nil {
		c.terminate()
		log.Fatalf("Failed to create test containers: %v\n", err)
	}

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test containers...\n", sig)
	c.terminate()
}
