package store

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration 是一次启动时执行的建表或改表操作，必须可以重复执行。
type Migration struct {
	Name string
	SQL  string
}

// Migrations 按顺序列出所有迁移。
var Migrations = []Migration{
	{
		Name: "create_curriculos",
		SQL: `
		CREATE TABLE IF NOT EXISTS curriculos (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id    TEXT NOT NULL,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		Name: "add_photo_to_curriculos",
		SQL:  `ALTER TABLE curriculos ADD COLUMN IF NOT EXISTS photo BYTEA;`,
	},
	{
		Name: "index_curriculos_user_created",
		SQL:  `CREATE INDEX IF NOT EXISTS curriculos_user_created_idx ON curriculos (user_id, created_at DESC);`,
	},
}

// RunMigrations executes all migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")
	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}
	slog.Info("All migrations completed successfully")
	return nil
}
