// Package session ties a running world to storage: it restores the
// player's checkpoint at start, saves checkpoints on request and records
// the session summary when play ends. Front-ends share one Recorder per
// world.
package session

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// ErrNoStore is returned when a checkpoint is requested without storage.
var ErrNoStore = errors.New("session: no storage configured")

// DefaultUser names the player when a front-end has no user identity.
const DefaultUser = "player"

// Recorder persists checkpoints and the session summary for one world.
// A nil store turns every operation into a no-op, except Checkpoint
// which reports ErrNoStore.
type Recorder struct {
	store   *storage.Store
	user    string
	world   *world.World
	logger  *log.Logger
	now     func() time.Time
	started time.Time

	once sync.Once
	err  error
}

// New creates a recorder for w. A nil logger discards, a nil now uses
// time.Now and an empty user becomes DefaultUser.
func New(store *storage.Store, user string, w *world.World, logger *log.Logger, now func() time.Time) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if now == nil {
		now = time.Now
	}
	if user == "" {
		user = DefaultUser
	}
	return &Recorder{
		store:   store,
		user:    user,
		world:   w,
		logger:  logger,
		now:     now,
		started: now(),
	}
}

// User returns the player name checkpoints are saved under.
func (r *Recorder) User() string {
	return r.user
}

// Restore moves the player to the saved checkpoint, if there is one.
// Reports whether a checkpoint was applied.
func (r *Recorder) Restore() bool {
	if r.store == nil {
		return false
	}
	mapID := r.world.Map().ID
	cp, err := r.store.LoadCheckpoint(r.user, mapID)
	if err != nil {
		r.logger.Warn("could not load checkpoint", "user", r.user, "map", mapID, "error", err)
		return false
	}
	if cp == nil {
		return false
	}
	if err := r.world.Restore(cp.X, cp.Y, world.ParseFacing(cp.Facing)); err != nil {
		r.logger.Warn("checkpoint rejected", "user", r.user, "map", mapID, "error", err)
		return false
	}
	r.logger.Info("checkpoint restored", "user", r.user, "map", mapID, "x", cp.X, "y", cp.Y)
	return true
}

// Checkpoint saves the player's current position.
func (r *Recorder) Checkpoint() error {
	if r.store == nil {
		return ErrNoStore
	}
	pos := r.world.Player().Pos
	return r.store.SaveCheckpoint(storage.Checkpoint{
		User:   r.user,
		MapID:  r.world.Map().ID,
		X:      pos.X,
		Y:      pos.Y,
		Facing: r.world.Facing().String(),
	})
}

// Finish saves the final checkpoint and the session summary. Only the
// first call does any work; later calls return the same error.
func (r *Recorder) Finish() error {
	r.once.Do(func() {
		r.err = r.save()
		if r.err != nil {
			r.logger.Error("could not save session", "user", r.user, "error", r.err)
		}
	})
	return r.err
}

func (r *Recorder) save() error {
	if r.store == nil {
		return nil
	}
	if err := r.Checkpoint(); err != nil {
		return err
	}

	state := r.world.State()
	if state.Tick == 0 {
		return nil
	}
	mapID := r.world.Map().ID
	if _, err := r.store.SaveSession(storage.Session{
		User:      r.user,
		MapID:     mapID,
		Ticks:     state.Tick,
		Distance:  state.Distance,
		StartedAt: r.started,
		EndedAt:   r.now(),
	}); err != nil {
		return err
	}
	r.logger.Info("session saved", "user", r.user, "map", mapID,
		"ticks", state.Tick, "distance", state.Distance)
	return nil
}
