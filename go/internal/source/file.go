package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
)

// FileSource serves snapshots from JSON files on disk. It exists as the
// degraded tail of a fallback chain: when the live API is down the view
// still mounts with the last bundled data instead of rendering nothing.
//
// Layout under dir: games.json holds the scoreboard array, <gameID>.json
// holds a single game payload. Both use the same shapes the API serves.
type FileSource struct {
	dir        string
	normalizer *snapshot.Normalizer
}

func NewFileSource(dir string, normalizer *snapshot.Normalizer) *FileSource {
	return &FileSource{dir: dir, normalizer: normalizer}
}

func (s *FileSource) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	path := filepath.Join(s.dir, gameID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game file %s: %w", path, err)
	}
	return s.normalizer.Normalize(data)
}

// FetchBoxScore serves the same file as FetchSnapshot. Bundled game
// fixtures already carry their full player lines.
func (s *FileSource) FetchBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	return s.FetchSnapshot(ctx, gameID)
}

// FetchDelta always reports no change. Static files do not move.
func (s *FileSource) FetchDelta(ctx context.Context, gameID string) (*models.GameDelta, error) {
	return nil, nil
}

func (s *FileSource) ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error) {
	path := filepath.Join(s.dir, "games.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games file %s: %w", path, err)
	}

	var payloads []json.RawMessage
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("decode games file %s: %w", path, err)
	}

	snaps := make([]*models.GameSnapshot, 0, len(payloads))
	for _, payload := range payloads {
		snap, err := s.normalizer.Normalize(payload)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping malformed game payload")
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
