package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// directionKeys lists the keys that hold each movement direction.
var directionKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// KeyState reports key state for one tick. It matches ebiten.IsKeyPressed
// and inpututil.IsKeyJustPressed so input can be built without a window.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// Input is what the keyboard asked for this tick.
type Input struct {
	Frame      core.InputFrame
	Checkpoint bool
	Quit       bool
}

// ReadInput builds the tick's input snapshot. Directions are held state;
// pause, checkpoint and quit fire on the press only.
func ReadInput(ks KeyState) Input {
	in := Input{Frame: core.NewInputFrame()}
	for _, dir := range core.Directions {
		for _, k := range directionKeys[dir] {
			if ks.Pressed(k) {
				in.Frame.Set(dir)
				break
			}
		}
	}

	if ks.JustPressed(ebiten.KeyP) {
		in.Frame.Set(core.ActionPause)
	}
	ctrl := ks.Pressed(ebiten.KeyControl) || ks.Pressed(ebiten.KeyMeta)
	if ctrl && ks.Pressed(ebiten.KeyS) {
		in.Checkpoint = ks.JustPressed(ebiten.KeyS)
		// Ctrl+S saves; it does not also walk down
		if !ks.Pressed(ebiten.KeyArrowDown) {
			delete(in.Frame.Actions, core.ActionDown)
		}
	}
	if ks.JustPressed(ebiten.KeyEscape) || ks.JustPressed(ebiten.KeyQ) {
		in.Quit = true
	}
	return in
}
