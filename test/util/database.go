// Package util holds the PostgreSQL fixtures shared by the package test
// suites: one database per test run, one schema per test.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

var (
	baseConnStr  string
	baseConnOnce sync.Once
	baseConnErr  error
)

// SetupTestDatabase gives the test its own schema on the shared database,
// with ent migrations applied, and registers cleanup that drops the schema.
// Returns the ent client plus the raw pool for callers that wrap both.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()

	connStr := GetBaseConnectionString(t)
	schemaName := GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schemaName)
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	// search_path rides on the connection string so every pooled connection
	// lands in the test schema.
	db, err := stdsql.Open("pgx", AddSearchPathToConnString(connStr, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the schema-less connection string: the CI
// service container when CI_DATABASE_URL is set, otherwise a testcontainer
// started once per test binary.
func GetBaseConnectionString(t *testing.T) string {
	t.Helper()
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	baseConnOnce.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			baseConnErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		baseConnStr, baseConnErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, baseConnErr, "shared test database unavailable")
	return baseConnStr
}

// GenerateSchemaName derives a unique schema name from the test name:
// test_<sanitized_name>_<random_hex>, kept under the 63-char identifier cap.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter to connStr.
func AddSearchPathToConnString(connStr, schemaName string) string {
	separator := "?"
	if strings.Contains(connStr, "?") {
		separator = "&"
	}
	return connStr + separator + "search_path=" + schemaName
}
