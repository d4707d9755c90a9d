package database

import (
	"context"
	"fmt"
)

// analysesSchema is the full DDL for the analyses table. Statements are
// idempotent so the bootstrap can run on every startup.
const analysesSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id         uuid PRIMARY KEY,
	name       varchar(255) NOT NULL,
	strategy   varchar(20)  NOT NULL,
	payload    jsonb        NOT NULL,
	summary    jsonb,
	version    varchar(20),
	created_at timestamptz  NOT NULL DEFAULT now(),
	updated_at timestamptz  NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analyses_strategy ON analyses (strategy);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

// EnsureSchema creates the analyses table and its indexes if they do not
// exist yet. It is called once at startup before the server accepts traffic.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, analysesSchema); err != nil {
		return fmt.Errorf("failed to ensure analyses schema: %w", err)
	}
	return nil
}
