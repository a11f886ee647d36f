package processing

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/engine"
	perrors "github.com/lgbarn/playchess-go/internal/errors"
	"github.com/lgbarn/playchess-go/internal/storage"
)

// GameID derives the storage key for a script name: the base name without
// its extension, or "stdin" for unnamed input.
func GameID(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StartGame returns the game a script named name is replayed on. With a
// store in resume mode a previously saved position takes priority, then
// cfg.StartFEN, then the standard starting position. The configured
// orientation is applied to the new game.
func StartGame(cfg *config.Config, store *storage.Storage, name string) (*engine.Game, error) {
	g, err := startPosition(cfg, store, name)
	if err != nil {
		return nil, err
	}
	if cfg.Output.Orientation == chess.BlackBottom {
		g.Flip()
	}
	return g, nil
}

func startPosition(cfg *config.Config, store *storage.Storage, name string) (*engine.Game, error) {
	if store != nil && cfg.Store.Resume {
		record, err := store.LoadGame(GameID(name))
		switch {
		case err == nil:
			cfg.Logf(2, "%s: resuming at ply %d\n", name, record.Ply)
			return record.Restore()
		case !errors.Is(err, perrors.ErrGameNotFound):
			return nil, err
		}
	}
	if cfg.StartFEN != "" {
		g, err := engine.NewGameFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, perrors.Wrap(err, "start position")
		}
		return g, nil
	}
	return engine.NewGame(), nil
}

// Persist saves the final position of a replay under the script's game id.
// Moves from an earlier resumed run are kept ahead of the new ones.
func Persist(store *storage.Storage, report *Report, g *engine.Game) error {
	if store == nil {
		return nil
	}
	id := GameID(report.Name)

	var moves []string
	previous, err := store.LoadGame(id)
	switch {
	case err == nil && previous.FEN == report.InitialFEN:
		moves = append(moves, previous.Moves...)
	case err != nil && !errors.Is(err, perrors.ErrGameNotFound):
		return err
	}
	moves = append(moves, report.MoveLog...)

	return perrors.Wrapf(store.SaveGame(id, g, moves), "save game %s", id)
}
