package render

import (
	"testing"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/world"
)

func mustDefaultWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(maps.Default(), config.Default())
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return w
}
