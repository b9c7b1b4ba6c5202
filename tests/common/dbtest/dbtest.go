//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

// NewPool hands each test its own database on a shared Postgres container:
// first use starts the container, every call creates a fresh database and
// applies the embedded schema, so tests never see each other's rows.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	host, port := startPostgresOnce(t)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for test database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	pool, cleanup, err := db.Connect(config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	require.NoError(t, db.RunMigrations(ctx, pool), "failed to apply schema")

	return pool
}

func startPostgresOnce(t *testing.T) (string, nat.Port) {
	t.Helper()

	postgresOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "repository-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresContainer == nil {
				return
			}
			termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer termCancel()
			if err := postgresContainer.Terminate(termCtx); err != nil {
				slog.Warn("failed to terminate postgres container", "error", err.Error())
			}
		})
	})

	ctx := context.Background()
	mappedPort, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "failed to resolve container port")
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "failed to resolve container host")

	return host, mappedPort
}
