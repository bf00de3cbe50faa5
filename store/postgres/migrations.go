package postgres

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the token store.
var Migrations = migrate.NewGroup("token")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_token_events",
			Version: "20240101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS token_events (
    id         TEXT PRIMARY KEY,
    kind       TEXT NOT NULL DEFAULT '',
    from_id    TEXT NOT NULL DEFAULT '',
    to_id      TEXT NOT NULL DEFAULT '',
    owner_id   TEXT NOT NULL DEFAULT '',
    spender_id TEXT NOT NULL DEFAULT '',
    value      TEXT NOT NULL DEFAULT '0',
    seq        BIGINT NOT NULL DEFAULT 0,
    timestamp  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_token_events_seq ON token_events (seq);
CREATE INDEX IF NOT EXISTS idx_token_events_kind ON token_events (kind, seq);
CREATE INDEX IF NOT EXISTS idx_token_events_timestamp ON token_events (timestamp);
CREATE INDEX IF NOT EXISTS idx_token_events_from ON token_events (from_id);
CREATE INDEX IF NOT EXISTS idx_token_events_to ON token_events (to_id);
CREATE INDEX IF NOT EXISTS idx_token_events_owner ON token_events (owner_id);
CREATE INDEX IF NOT EXISTS idx_token_events_spender ON token_events (spender_id);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS token_events`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_token_snapshots",
			Version: "20240101000002",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS token_snapshots (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    symbol     TEXT NOT NULL DEFAULT '',
    decimals   INT NOT NULL DEFAULT 18,
    supply     TEXT NOT NULL DEFAULT '0',
    balances   JSONB NOT NULL DEFAULT '{}',
    allowances JSONB NOT NULL DEFAULT '{}',
    seq        BIGINT NOT NULL DEFAULT 0,
    taken_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_token_snapshots_seq ON token_snapshots (seq DESC, taken_at DESC);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS token_snapshots`)
				return err
			},
		},
	)
}
