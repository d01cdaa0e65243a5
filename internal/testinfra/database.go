// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	DefaultMySQLImage    = "mysql:8.4"
	DefaultPostgresImage = "postgres:16-alpine"

	testUser     = "labor"
	testPassword = "labor-test"
	testDatabase = "labormarket"
)

// DatabaseContainer is a running MySQL or Postgres server with an empty
// labormarket database.
type DatabaseContainer struct {
	testcontainers.Container

	// Dialect is the value for config.DatabaseConfig.Dialect.
	Dialect string
	// DSN is ready for config.DatabaseConfig.DSN.
	DSN string
}

// DatabaseOption configures a database container.
type DatabaseOption func(*databaseConfig)

type databaseConfig struct {
	image        string
	startTimeout time.Duration
}

// WithImage overrides the default server image.
func WithImage(image string) DatabaseOption {
	return func(c *databaseConfig) {
		c.image = image
	}
}

// WithStartTimeout sets how long to wait for the server to accept connections.
func WithStartTimeout(timeout time.Duration) DatabaseOption {
	return func(c *databaseConfig) {
		c.startTimeout = timeout
	}
}

func applyOptions(image string, opts []DatabaseOption) *databaseConfig {
	cfg := &databaseConfig{image: image, startTimeout: 2 * time.Minute}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewMySQLContainer starts a MySQL server.
//
//	db, err := testinfra.NewMySQLContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	testinfra.CleanupContainer(t, db.Container)
//	store, err := database.New(&config.DatabaseConfig{Dialect: db.Dialect, DSN: db.DSN, BootstrapSchema: true})
func NewMySQLContainer(ctx context.Context, opts ...DatabaseOption) (*DatabaseContainer, error) {
	cfg := applyOptions(DefaultMySQLImage, opts)

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": testPassword,
			"MYSQL_USER":          testUser,
			"MYSQL_PASSWORD":      testPassword,
			"MYSQL_DATABASE":      testDatabase,
		},
		// The entrypoint starts a temporary server first; wait for the real one.
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort("3306/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	return startDatabase(ctx, req, "mysql", "3306", func(host, port string) string {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", testUser, testPassword, host, port, testDatabase)
	})
}

// NewPostgresContainer starts a Postgres server.
func NewPostgresContainer(ctx context.Context, opts ...DatabaseOption) (*DatabaseContainer, error) {
	cfg := applyOptions(DefaultPostgresImage, opts)

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDatabase,
		},
		// Postgres logs readiness twice: once for the init server, once for real.
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	return startDatabase(ctx, req, "postgres", "5432", func(host, port string) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testUser, testPassword, host, port, testDatabase)
	})
}

func startDatabase(ctx context.Context, req testcontainers.ContainerRequest, dialect, port string, dsn func(host, port string) string) (*DatabaseContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s container: %w", dialect, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	mapped, err := container.MappedPort(ctx, port+"/tcp")
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &DatabaseContainer{
		Container: container,
		Dialect:   dialect,
		DSN:       dsn(host, mapped.Port()),
	}, nil
}
