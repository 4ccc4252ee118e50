package player

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"

	"galaxy-server/internal/shared/database"
	"galaxy-server/internal/shared/errors"

	"github.com/lib/pq"
)

const playerColumns = `
	id, username, email, display_name, avatar_url, role, anonymous, galactic_year,
	worlds_created, civilizations_evolved, systems_discovered, created_at, updated_at`

// statColumns whitelists the counters IncrementStat may touch
var statColumns = map[string]string{
	"worlds_created":        "worlds_created",
	"civilizations_evolved": "civilizations_evolved",
	"systems_discovered":    "systems_discovered",
}

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing player repository")
	return &Repository{db: db, logger: logger}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*Player, error) {
	var p Player
	var role string
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.DisplayName,
		&p.AvatarURL,
		&role,
		&p.Anonymous,
		&p.GalacticYear,
		&p.Statistics.WorldsCreated,
		&p.Statistics.CivilizationsEvolved,
		&p.Statistics.SystemsDiscovered,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Role = ParsePlayerRole(role)
	return &p, nil
}

type NewPlayer struct {
	Username     string
	Email        *string
	DisplayName  string
	AvatarURL    *string
	Role         PlayerRole
	Anonymous    bool
	GalacticYear int
}

func (r *Repository) Create(ctx context.Context, np NewPlayer) (*Player, error) {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "create",
		"username", np.Username,
		"anonymous", np.Anonymous,
	)
	logger.Debug("Creating new player")

	query := `
		INSERT INTO players (username, email, display_name, avatar_url, role, anonymous, galactic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + playerColumns

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query,
		np.Username, np.Email, np.DisplayName, np.AvatarURL, np.Role.String(), np.Anonymous, np.GalacticYear,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Conflictf("player %q already exists", np.Username)
		}
		logger.Error("Failed to create player", "error", err)
		return nil, errors.WrapInternal("failed to create player", err)
	}

	logger.Info("Player created", "player_id", p.ID)
	return p, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("player not found with id: %d", id)
		}
		r.logger.Error("Database error getting player by ID", "player_id", id, "error", err)
		return nil, errors.WrapInternal("failed to get player", err)
	}
	return p, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE email = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("player not found with email: %s", email)
		}
		r.logger.Error("Database error finding player by email", "error", err)
		return nil, errors.WrapInternal("failed to find player", err)
	}
	return p, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, role PlayerRole) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE players SET role = $1, updated_at = NOW() WHERE id = $2`,
		role.String(), id,
	)
	if err != nil {
		return errors.WrapInternal("failed to update player role", err)
	}
	return nil
}

func (r *Repository) IncrementStat(ctx context.Context, id int, stat string, delta int) error {
	column, ok := statColumns[stat]
	if !ok {
		return errors.Validationf("unknown statistic %q", stat)
	}

	query := `UPDATE players SET ` + column + ` = ` + column + ` + $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return errors.WrapInternal("failed to update player statistic", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.NotFoundf("player not found with id: %d", id)
	}
	return nil
}

// AdvanceGalacticYear moves the player clock forward by years and returns the new year
func (r *Repository) AdvanceGalacticYear(ctx context.Context, id int, years int) (int, error) {
	var year int
	err := r.db.QueryRowContext(ctx,
		`UPDATE players SET galactic_year = galactic_year + $1, updated_at = NOW() WHERE id = $2 RETURNING galactic_year`,
		years, id,
	).Scan(&year)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, errors.NotFoundf("player not found with id: %d", id)
		}
		return 0, errors.WrapInternal("failed to advance galactic year", err)
	}
	return year, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return stderrors.As(err, &pqErr) && pqErr.Code == "23505"
}
