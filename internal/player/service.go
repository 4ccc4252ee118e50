package player

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/errors"

	"github.com/google/uuid"
)

type Service struct {
	repo   *Repository
	cfg    *config.Config
	logger *slog.Logger
}

func NewService(repo *Repository, cfg *config.Config, logger *slog.Logger) *Service {
	logger.Debug("Initializing player service")

	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Service) GetPlayerByID(ctx context.Context, id int) (*Player, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) IncrementStat(ctx context.Context, playerID int, stat string, delta int) error {
	return s.repo.IncrementStat(ctx, playerID, stat, delta)
}

func (s *Service) AdvanceGalacticYear(ctx context.Context, playerID int, years int) (int, error) {
	return s.repo.AdvanceGalacticYear(ctx, playerID, years)
}

func (s *Service) GalacticYear(ctx context.Context, playerID int) (int, error) {
	p, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return p.GalacticYear, nil
}

// CreateAnonymous registers a guest explorer with a generated name
func (s *Service) CreateAnonymous(ctx context.Context) (*Player, error) {
	tag := shortTag()
	return s.repo.Create(ctx, NewPlayer{
		Username:     "explorer-" + tag,
		DisplayName:  "Explorer " + strings.ToUpper(tag[:4]),
		Role:         PlayerRoleUser,
		Anonymous:    true,
		GalacticYear: s.cfg.Simulation.StartingGalacticYear,
	})
}

func (s *Service) FindOrCreatePlayerByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*Player, error) {
	logger := s.logger.With(
		"component", "player_service",
		"operation", "find_or_create_oauth",
		"provider", provider,
	)

	isAdminEmail := email == s.cfg.Admin.Email

	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.IsType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	if p != nil {
		if isAdminEmail && p.Role != PlayerRoleAdmin {
			logger.Info("Upgrading existing user to admin role", "player_id", p.ID)
			if err := s.repo.UpdateRole(ctx, p.ID, PlayerRoleAdmin); err != nil {
				return nil, err
			}
			p.Role = PlayerRoleAdmin
		}
		return p, nil
	}

	np := NewPlayer{
		Username:     usernameFromEmail(email),
		Email:        &email,
		DisplayName:  displayName,
		AvatarURL:    avatarURL,
		Role:         PlayerRoleUser,
		GalacticYear: s.cfg.Simulation.StartingGalacticYear,
	}
	if isAdminEmail {
		np.Username = s.cfg.Admin.Username
		np.DisplayName = s.cfg.Admin.DisplayName
		np.Role = PlayerRoleAdmin
	}
	if np.DisplayName == "" {
		np.DisplayName = np.Username
	}

	p, err = s.repo.Create(ctx, np)
	if errors.IsType(err, errors.ErrorTypeConflict) {
		np.Username = fmt.Sprintf("%s-%s", np.Username, shortTag())
		p, err = s.repo.Create(ctx, np)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Created player from OAuth login", "player_id", p.ID, "username", p.Username, "role", p.Role)
	return p, nil
}

func usernameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return "explorer"
}

func shortTag() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
