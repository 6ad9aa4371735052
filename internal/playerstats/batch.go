package playerstats

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/stats"
	"nba-stats-service/internal/logging"
)

// batchLines fetches stat lines for a set of players in fixed-size batches
// with a pause between batches, keeping upstream request bursts bounded.
// Output order matches input order. A player whose fetch fails keeps the
// roster identity it came in with and unknown stats.
func (s *Service) batchLines(ctx context.Context, roster []players.Player) []stats.PlayerLine {
	lines := make([]stats.PlayerLine, len(roster))

	pool, err := ants.NewPool(s.batchSize)
	if err != nil {
		// Pool creation only fails on invalid size; fetch serially instead.
		for i, p := range roster {
			lines[i] = s.fetchLine(ctx, p)
		}
		return lines
	}
	defer pool.Release()

	for start := 0; start < len(roster); start += s.batchSize {
		if ctx.Err() != nil {
			for i := start; i < len(roster); i++ {
				lines[i] = fallbackLine(roster[i])
			}
			break
		}

		end := start + s.batchSize
		if end > len(roster) {
			end = len(roster)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				lines[i] = s.fetchLine(ctx, roster[i])
			})
			if submitErr != nil {
				lines[i] = fallbackLine(roster[i])
				wg.Done()
			}
		}
		wg.Wait()

		if end < len(roster) && s.batchDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.batchDelay):
			}
		}
	}
	return lines
}

func (s *Service) fetchLine(ctx context.Context, p players.Player) stats.PlayerLine {
	line, err := s.PlayerLine(ctx, p.ID)
	if err != nil {
		logging.Warn(s.logger, "player stat fetch failed", err, logging.FieldPlayer, p.ID)
		return fallbackLine(p)
	}
	// Roster identity fields are more reliable than the athlete page's.
	if line.Tricode == "" {
		line.Tricode = p.Tricode
	}
	if line.Name == "" {
		line.Name = p.DisplayName
	}
	if line.Position == "" {
		line.Position = p.Position
	}
	if line.Jersey == "" {
		line.Jersey = p.Jersey
	}
	return *line
}

// fallbackLine is a roster entry with every stat unknown.
func fallbackLine(p players.Player) stats.PlayerLine {
	return *lineFor(p)
}
