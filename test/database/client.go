package database

import (
	"testing"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/test/util"
)

// NewTestClient returns a *database.Client on a fresh per-test schema.
// Schema drop and connection close are registered with t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
