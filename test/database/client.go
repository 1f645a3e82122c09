// Package database provides database client helpers for integration tests.
package database

import (
	"testing"

	"github.com/subtitle-ai/zirnevis/pkg/database"
	"github.com/subtitle-ai/zirnevis/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a pgvector testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
