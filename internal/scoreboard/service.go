// Package scoreboard aggregates per-date game data from the upstream
// providers into the normalized scoreboard shape.
package scoreboard

import (
	"context"
	"errors"
	"log/slog"

	"nba-stats-service/internal/domain/games"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/timeutil"
)

// ErrInvalidDate is returned for dates that do not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("scoreboard: invalid date")

// Provider fetches a scoreboard for one date.
type Provider interface {
	Scoreboard(ctx context.Context, date string) (*games.Scoreboard, error)
}

// Service resolves scoreboards with an optional fallback provider. A date
// with no games is a valid empty scoreboard, never an error.
type Service struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
}

func New(primary Provider, fallback Provider, logger *slog.Logger) *Service {
	return &Service{primary: primary, fallback: fallback, logger: logger}
}

// ByDate returns all games for a YYYY-MM-DD date. The caller supplies the
// date explicitly; the service never substitutes the server's own "today",
// since the server and the viewer may sit in different timezones.
func (s *Service) ByDate(ctx context.Context, date string) (*games.Scoreboard, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	board, err := s.primary.Scoreboard(ctx, date)
	if err == nil {
		return board, nil
	}
	logging.Warn(s.logger, "primary scoreboard source failed", err, logging.FieldDate, date)

	if s.fallback == nil {
		return nil, err
	}
	board, fallbackErr := s.fallback.Scoreboard(ctx, date)
	if fallbackErr != nil {
		logging.Error(s.logger, "fallback scoreboard source failed", fallbackErr, logging.FieldDate, date)
		return nil, err
	}
	return board, nil
}
