package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/test/util"
)

// SharedTestDB is one schema served to several independent connection
// pools. Leader-election tests need this: each simulated replica gets its
// own *database.Client, but all of them contend on the same scheduler lock
// row.
type SharedTestDB struct {
	connStr    string
	schemaName string
}

// NewSharedTestDB creates the schema, applies ent migrations once, and
// registers a cleanup that drops the schema after every per-client cleanup
// has run (t.Cleanup is LIFO).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	base := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schemaName)
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	connStr := util.AddSearchPathToConnString(base, schemaName)
	migrator, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, migrator)))
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, entClient.Close())
	require.NoError(t, migrator.Close())

	t.Cleanup(func() {
		admin, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("SharedTestDB: cannot reconnect to drop schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = admin.Close() }()
		if _, err := admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("SharedTestDB: failed to drop schema %s: %v", schemaName, err)
		}
	})

	return &SharedTestDB{connStr: connStr, schemaName: schemaName}
}

// NewClient opens an independent pool onto the shared schema. Each replica
// under test owns its pool so it can be shut down without racing the others.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := stdsql.Open("pgx", s.connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}
