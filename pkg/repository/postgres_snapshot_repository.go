package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"

	"github.com/lib/pq" // PostgreSQL driver and array support
)

// SnapshotSchema creates the snapshot table. It is safe to run repeatedly.
const SnapshotSchema = `
	CREATE TABLE IF NOT EXISTS game_config_snapshots (
		game_id VARCHAR(100) NOT NULL,
		version CHAR(64) NOT NULL,
		rtp DOUBLE PRECISION NOT NULL,
		bet_modes TEXT[] NOT NULL,
		body JSONB NOT NULL,
		published_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (game_id, version),
		CONSTRAINT check_rtp_range CHECK (rtp > 0 AND rtp < 2)
	);
	CREATE INDEX IF NOT EXISTS idx_game_config_snapshots_latest
	ON game_config_snapshots(game_id, published_at DESC);
`

var _ SnapshotRepository = (*PostgresSnapshotRepository)(nil)

// PostgresSnapshotRepository implements SnapshotRepository using PostgreSQL.
type PostgresSnapshotRepository struct {
	db *sql.DB
}

// NewPostgresSnapshotRepository creates a new PostgreSQL-backed snapshot repository.
func NewPostgresSnapshotRepository(db *sql.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{
		db: db,
	}
}

// EnsureSchema applies SnapshotSchema.
func (r *PostgresSnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, SnapshotSchema); err != nil {
		return errors.ErrDatabaseError("ensure schema", err)
	}
	return nil
}

// SaveSnapshot inserts a snapshot unless the same version is already stored.
func (r *PostgresSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) (bool, error) {
	query := `
		INSERT INTO game_config_snapshots (game_id, version, rtp, bet_modes, body, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id, version) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		snapshot.GameID,
		snapshot.Version,
		snapshot.RTP,
		pq.Array(snapshot.BetModes),
		snapshot.Body,
		snapshot.PublishedAt,
	)
	if err != nil {
		return false, mapWriteError("save snapshot", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.ErrDatabaseError("save snapshot", err)
	}

	return rows == 1, nil
}

// GetLatest retrieves the newest snapshot of gameID.
func (r *PostgresSnapshotRepository) GetLatest(ctx context.Context, gameID string) (*domain.Snapshot, error) {
	query := `
		SELECT game_id, version, rtp, bet_modes, body, published_at
		FROM game_config_snapshots
		WHERE game_id = $1
		ORDER BY published_at DESC
		LIMIT 1
	`

	var snapshot domain.Snapshot
	err := r.db.QueryRowContext(ctx, query, gameID).Scan(
		&snapshot.GameID,
		&snapshot.Version,
		&snapshot.RTP,
		pq.Array(&snapshot.BetModes),
		&snapshot.Body,
		&snapshot.PublishedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Never published
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get latest snapshot", err)
	}

	return &snapshot, nil
}

// ListGameIDs returns the distinct published game IDs.
func (r *PostgresSnapshotRepository) ListGameIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT game_id FROM game_config_snapshots ORDER BY game_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.ErrDatabaseError("list game IDs", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.ErrDatabaseError("scan game ID", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate game IDs", err)
	}

	return ids, nil
}

// mapWriteError reports integrity violations as invalid config rather than database failures.
func mapWriteError(operation string, err error) error {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return errors.NewGameConfigError(errors.ErrCodeConfigInvalid,
			operation+": "+pqErr.Message, err)
	}
	return errors.ErrDatabaseError(operation, err)
}
