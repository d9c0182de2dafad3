package world

import "github.com/vovakirdan/tilewalk/internal/core"

// Snapshot captures the complete world state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	MapID     string
	X, Y      float64
	CameraX   float64
	CameraY   float64
	Area      core.TileRange
	Facing    Facing
	AnimFrame int
	Moving    bool
	Blocked   bool
	Paused    bool
	Distance  float64
}

// Snapshot returns the current world snapshot for determinism verification.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		MapID:     w.m.ID,
		X:         w.body.Pos.X,
		Y:         w.body.Pos.Y,
		CameraX:   w.cam.X,
		CameraY:   w.cam.Y,
		Area:      w.area,
		Facing:    w.facing,
		AnimFrame: w.animFrame,
		Moving:    w.moving,
		Blocked:   w.blocked,
		Paused:    w.paused,
		Distance:  w.distance,
	}
}
