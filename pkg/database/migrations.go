package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureVectorExtension creates the pgvector extension when missing. It
// runs before migrations (the tm_entries embedding column needs the vector
// type) and is also used by the test harness, whose schema is created by
// Ent directly rather than by the SQL migrations.
func EnsureVectorExtension(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}
	return nil
}
