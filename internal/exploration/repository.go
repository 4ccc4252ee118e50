package exploration

import (
	"context"
	"log/slog"
	"time"

	"galaxy-server/internal/shared/database"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/system"

	"github.com/lib/pq"
)

const discoveredByPlayer = `EXISTS(SELECT 1 FROM system_discoverers pd WHERE pd.system_id = s.id AND pd.player_id = $1)`

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing exploration repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// ExplorableInBox returns systems inside the square around (x, y) that playerID neither owns nor
// has discovered. Callers trim the corners with WithinRadius.
func (r *Repository) ExplorableInBox(ctx context.Context, playerID int, x, y, half float64) ([]system.Summary, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "explorable_in_box", "player_id", playerID)

	query := `
		SELECT ` + system.SummaryColumns + `
		FROM star_systems s
		WHERE s.owner_id <> $1
		  AND NOT ` + discoveredByPlayer + `
		  AND s.coord_x BETWEEN $2::float8 - $4::float8 AND $2::float8 + $4::float8
		  AND s.coord_y BETWEEN $3::float8 - $4::float8 AND $3::float8 + $4::float8
		ORDER BY s.created_at
	`

	return r.querySummaries(ctx, logger, query, playerID, x, y, half)
}

// InBox returns every system inside the square around (x, y)
func (r *Repository) InBox(ctx context.Context, x, y, half float64) ([]system.Summary, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "in_box")

	query := `
		SELECT ` + system.SummaryColumns + `
		FROM star_systems s
		WHERE s.coord_x BETWEEN $1::float8 - $3::float8 AND $1::float8 + $3::float8
		  AND s.coord_y BETWEEN $2::float8 - $3::float8 AND $2::float8 + $3::float8
	`

	return r.querySummaries(ctx, logger, query, x, y, half)
}

func (r *Repository) Popular(ctx context.Context, limit int) ([]system.Summary, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "popular")

	query := `
		SELECT ` + system.SummaryColumns + `
		FROM star_systems s
		ORDER BY (SELECT COUNT(*) FROM system_discoverers d WHERE d.system_id = s.id) DESC, s.created_at DESC
		LIMIT $1
	`

	return r.querySummaries(ctx, logger, query, limit)
}

// SearchCandidates applies the exact filters in SQL; the free text query is matched by the caller
func (r *Repository) SearchCandidates(ctx context.Context, playerID int, starType string, minPlanets int, limit int) ([]Candidate, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "search_candidates", "player_id", playerID)

	query := `
		SELECT ` + system.SummaryColumns + `, ` + discoveredByPlayer + `
		FROM star_systems s
		WHERE ($2::text = '' OR s.star_type = $2::text)
		  AND s.planet_count >= $3
		ORDER BY s.created_at DESC
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, playerID, starType, minPlanets, limit)
	if err != nil {
		logger.Error("Failed to query search candidates", "error", err)
		return nil, errors.WrapInternal("failed to search star systems", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	candidates := []Candidate{}
	for rows.Next() {
		var c Candidate
		c.Summary, err = system.ScanSummary(rows, &c.DiscoveredByPlayer)
		if err != nil {
			logger.Error("Failed to scan search candidate", "error", err)
			return nil, errors.WrapInternal("failed to scan star system", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("error iterating star systems", err)
	}
	return candidates, nil
}

// Recent lists discovered systems by their latest discovery, with the first explorer to find them
func (r *Repository) Recent(ctx context.Context, limit int) ([]RecentRow, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "recent")

	query := `
		SELECT ` + system.SummaryColumns + `, latest.discovered_at, pioneer.player_id, pioneer.display_name
		FROM star_systems s
		JOIN LATERAL (
			SELECT MAX(d.discovered_at) AS discovered_at
			FROM system_discoverers d
			WHERE d.system_id = s.id
		) latest ON TRUE
		JOIN LATERAL (
			SELECT d.player_id, p.display_name
			FROM system_discoverers d
			JOIN players p ON p.id = d.player_id
			WHERE d.system_id = s.id
			ORDER BY d.discovered_at
			LIMIT 1
		) pioneer ON TRUE
		WHERE s.status = $1
		ORDER BY latest.discovered_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, system.StatusDiscovered, limit)
	if err != nil {
		logger.Error("Failed to query recent discoveries", "error", err)
		return nil, errors.WrapInternal("failed to list recent discoveries", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	recent := []RecentRow{}
	for rows.Next() {
		var row RecentRow
		row.Summary, err = system.ScanSummary(rows, &row.DiscoveredAt, &row.FirstDiscovererID, &row.FirstDiscovererName)
		if err != nil {
			logger.Error("Failed to scan recent discovery", "error", err)
			return nil, errors.WrapInternal("failed to scan star system", err)
		}
		recent = append(recent, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("error iterating star systems", err)
	}
	return recent, nil
}

// Counts returns the number of systems in the galaxy, discovered by playerID and owned by playerID
func (r *Repository) Counts(ctx context.Context, playerID int) (total, discovered, created int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM star_systems),
			(SELECT COUNT(*) FROM system_discoverers WHERE player_id = $1),
			(SELECT COUNT(*) FROM star_systems WHERE owner_id = $1)
	`, playerID).Scan(&total, &discovered, &created)
	if err != nil {
		r.logger.Error("Failed to count exploration statistics", "player_id", playerID, "error", err)
		return 0, 0, 0, errors.WrapInternal("failed to count star systems", err)
	}
	return total, discovered, created, nil
}

func (r *Repository) CreateEvent(ctx context.Context, e *Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO galactic_events (id, event_type, name, message, effect, coord_x, coord_y, radius,
			connected_regions, related_systems, discovered_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		e.ID, e.Type, e.Name, e.Message, e.Effect, e.X, e.Y, e.Radius,
		pq.Array(e.ConnectedRegions), pq.Array(e.RelatedSystems), e.DiscoveredBy, e.CreatedAt, e.ExpiresAt,
	)
	if err != nil {
		return errors.WrapInternal("failed to store galactic event", err)
	}
	return nil
}

func (r *Repository) ActiveEvents(ctx context.Context, now time.Time) ([]Event, error) {
	logger := r.logger.With("component", "exploration_repository", "operation", "active_events")

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_type, name, message, effect, coord_x, coord_y, radius,
			connected_regions, related_systems, discovered_by, created_at, expires_at
		FROM galactic_events
		WHERE expires_at > $1
		ORDER BY created_at DESC
	`, now)
	if err != nil {
		logger.Error("Failed to query active events", "error", err)
		return nil, errors.WrapInternal("failed to list galactic events", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	events := []Event{}
	for rows.Next() {
		var e Event
		err := rows.Scan(&e.ID, &e.Type, &e.Name, &e.Message, &e.Effect, &e.X, &e.Y, &e.Radius,
			pq.Array(&e.ConnectedRegions), pq.Array(&e.RelatedSystems), &e.DiscoveredBy, &e.CreatedAt, &e.ExpiresAt)
		if err != nil {
			logger.Error("Failed to scan galactic event", "error", err)
			return nil, errors.WrapInternal("failed to scan galactic event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("error iterating galactic events", err)
	}
	return events, nil
}

func (r *Repository) DeleteExpiredEvents(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM galactic_events WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, errors.WrapInternal("failed to delete expired galactic events", err)
	}
	return result.RowsAffected()
}

func (r *Repository) querySummaries(ctx context.Context, logger *slog.Logger, query string, args ...any) ([]system.Summary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query star systems", "error", err)
		return nil, errors.WrapInternal("failed to query star systems", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	summaries := []system.Summary{}
	for rows.Next() {
		s, err := system.ScanSummary(rows)
		if err != nil {
			logger.Error("Failed to scan star system row", "error", err)
			return nil, errors.WrapInternal("failed to scan star system", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("error iterating star systems", err)
	}
	return summaries, nil
}
