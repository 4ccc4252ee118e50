package system

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"galaxy-server/internal/models"
	"galaxy-server/internal/shared/database"
	"galaxy-server/internal/shared/errors"
)

// SummaryColumns selects a Summary from star_systems aliased as s; ScanSummary reads them back
const SummaryColumns = `
	s.id, s.owner_id, s.name, s.star_type, s.planet_count, s.coord_x, s.coord_y, s.quadrant,
	s.status, s.version,
	(SELECT COUNT(*) FROM system_discoverers d WHERE d.system_id = s.id),
	s.created_at, s.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func ScanSummary(row scanner, extra ...any) (Summary, error) {
	var s Summary
	dest := []any{
		&s.ID, &s.OwnerID, &s.Name, &s.StarType, &s.PlanetCount, &s.X, &s.Y, &s.Quadrant,
		&s.Status, &s.Version, &s.DiscovererCount, &s.CreatedAt, &s.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return s, err
}

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, rec *Record) error {
	logger := r.logger.With(
		"component", "system_repository",
		"operation", "create",
		"system_id", rec.ID,
		"owner_id", rec.OwnerID,
	)
	logger.Debug("Creating star system")

	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return errors.WrapInternal("failed to encode system snapshot", err)
	}

	query := `
		INSERT INTO star_systems (id, owner_id, name, star_type, planet_count, coord_x, coord_y, quadrant, status, snapshot, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1)
		RETURNING version, created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		rec.ID, rec.OwnerID, rec.Name, rec.StarType, rec.PlanetCount,
		rec.X, rec.Y, rec.Quadrant, rec.Status, snapshot,
	).Scan(&rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		logger.Error("Failed to create star system", "error", err)
		return errors.WrapInternal("failed to create star system", err)
	}

	logger.Info("Star system created", "name", rec.Name, "planets", rec.PlanetCount)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Record, error) {
	logger := r.logger.With("component", "system_repository", "operation", "get_by_id", "system_id", id)
	logger.Debug("Getting star system")

	query := `SELECT ` + SummaryColumns + `, s.snapshot FROM star_systems s WHERE s.id = $1`

	var raw []byte
	summary, err := ScanSummary(r.db.QueryRowContext(ctx, query, id), &raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("star system not found: %s", id)
		}
		logger.Error("Failed to get star system", "error", err)
		return nil, errors.WrapInternal("failed to get star system", err)
	}

	var snapshot models.StarSystem
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		logger.Error("Failed to decode snapshot", "error", err)
		return nil, errors.WrapInternal("failed to decode system snapshot", err)
	}

	return &Record{Summary: summary, Snapshot: &snapshot}, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]Record, error) {
	logger := r.logger.With("component", "system_repository", "operation", "list_by_owner", "owner_id", ownerID)
	logger.Debug("Listing owned star systems")

	query := `SELECT ` + SummaryColumns + `, s.snapshot FROM star_systems s WHERE s.owner_id = $1 ORDER BY s.created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.Error("Failed to query star systems", "error", err)
		return nil, errors.WrapInternal("failed to list star systems", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	records := []Record{}
	for rows.Next() {
		var raw []byte
		summary, err := ScanSummary(rows, &raw)
		if err != nil {
			logger.Error("Failed to scan star system row", "error", err)
			return nil, errors.WrapInternal("failed to scan star system", err)
		}
		var snapshot models.StarSystem
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return nil, errors.WrapInternal("failed to decode system snapshot", err)
		}
		records = append(records, Record{Summary: summary, Snapshot: &snapshot})
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating star systems", err)
	}

	logger.Debug("Star systems retrieved", "count", len(records))
	return records, nil
}

// UpdateSnapshot stores snapshot if the row is still at expectedVersion and returns the new
// version. A concurrent writer that got there first turns this into a conflict.
func (r *Repository) UpdateSnapshot(ctx context.Context, id string, expectedVersion int, snapshot *models.StarSystem) (int, error) {
	logger := r.logger.With(
		"component", "system_repository",
		"operation", "update_snapshot",
		"system_id", id,
		"expected_version", expectedVersion,
	)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return 0, errors.WrapInternal("failed to encode system snapshot", err)
	}

	query := `
		UPDATE star_systems
		SET snapshot = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	var version int
	err = r.db.QueryRowContext(ctx, query, raw, id, expectedVersion).Scan(&version)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Warn("Snapshot version changed underneath update")
			return 0, errors.Conflictf("star system %s was modified concurrently, retry", id)
		}
		logger.Error("Failed to update snapshot", "error", err)
		return 0, errors.WrapInternal("failed to update star system", err)
	}

	logger.Debug("Snapshot updated", "version", version)
	return version, nil
}

func (r *Repository) IsDiscoverer(ctx context.Context, systemID string, playerID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM system_discoverers WHERE system_id = $1 AND player_id = $2)`,
		systemID, playerID,
	).Scan(&exists)
	if err != nil {
		return false, errors.WrapInternal("failed to check system discoverer", err)
	}
	return exists, nil
}

// AddDiscoverer records playerID as a discoverer and marks the system discovered. It reports
// false when the player had already discovered it.
func (r *Repository) AddDiscoverer(ctx context.Context, systemID string, playerID int) (bool, error) {
	logger := r.logger.With(
		"component", "system_repository",
		"operation", "add_discoverer",
		"system_id", systemID,
		"player_id", playerID,
	)

	tx, err := r.db.BeginTxContext(ctx)
	if err != nil {
		return false, errors.WrapInternal("failed to add discoverer", err)
	}
	defer tx.Rollback(logger)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO system_discoverers (system_id, player_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, systemID, playerID)
	if err != nil {
		logger.Error("Failed to insert discoverer", "error", err)
		return false, errors.WrapInternal("failed to add discoverer", err)
	}

	added, err := result.RowsAffected()
	if err != nil {
		return false, errors.WrapInternal("failed to add discoverer", err)
	}
	if added == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE star_systems SET status = $1, updated_at = NOW() WHERE id = $2`,
		StatusDiscovered, systemID,
	); err != nil {
		logger.Error("Failed to mark system discovered", "error", err)
		return false, errors.WrapInternal("failed to mark system discovered", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit discoverer: %w", err)
	}

	logger.Debug("Discoverer added")
	return true, nil
}
