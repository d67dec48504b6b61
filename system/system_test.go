package system

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sedgewren/husk/component"
	"github.com/sedgewren/husk/engine"
)

func bounds80x24() (int, int) { return 80, 24 }

func TestMovement(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity(&component.Position{X: 10, Y: 10}, &component.Velocity{DX: 4, DY: -2})
	w.AddProcessor(NewMovement(), PriorityMovement)

	require.NoError(t, w.Process(500*time.Millisecond))

	pos, err := engine.Get[*component.Position](w, e)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, pos.X, 1e-9)
	assert.InDelta(t, 9.0, pos.Y, 1e-9)
}

func TestBounceReflects(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity(&component.Position{X: -2, Y: 30}, &component.Velocity{DX: -5, DY: 3})
	w.AddProcessor(NewBounce(bounds80x24), PriorityBounce)

	require.NoError(t, w.Process(0))

	pos, err := engine.Get[*component.Position](w, e)
	require.NoError(t, err)
	vel, err := engine.Get[*component.Velocity](w, e)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, pos.X, 1e-9)
	assert.Equal(t, 5.0, vel.DX)
	assert.InDelta(t, 16.0, pos.Y, 1e-9) // reflected off y = 23
	assert.Equal(t, -3.0, vel.DY)
}

func TestExpiryDefersDeletion(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity(&component.Glyph{Rune: 'x'}, &component.Lifetime{Remaining: time.Second})
	w.AddProcessor(NewExpiry(), PriorityExpiry)

	var expired []engine.Entity
	w.Events.Subscribe(EventParticleExpired, func(args ...any) {
		expired = append(expired, args[0].(engine.Entity))
	})

	require.NoError(t, w.Process(2*time.Second))

	// Deleted this tick, swept at the top of the next
	assert.False(t, w.EntityExists(e))
	assert.Equal(t, []engine.Entity{e}, expired)
	assert.True(t, w.HasComponent(e, engine.TypeOf[*component.Glyph]()))

	require.NoError(t, w.Process(time.Second))
	assert.False(t, w.HasComponent(e, engine.TypeOf[*component.Glyph]()))
}

func TestSpawnerKeepsPopulation(t *testing.T) {
	w := engine.NewWorld()
	spawner := NewSpawner(25, time.Second, 2*time.Second, bounds80x24)
	w.AddProcessor(spawner, PrioritySpawn)

	require.NoError(t, w.Process(0))
	assert.Len(t, w.GetComponent(engine.TypeOf[*component.Glyph]()), 25)

	// Population already at target: no overspawn
	require.NoError(t, w.Process(0))
	assert.Len(t, w.GetComponent(engine.TypeOf[*component.Glyph]()), 25)

	// Kill a few; the next tick refills
	pairs := w.GetComponent(engine.TypeOf[*component.Glyph]())
	for _, p := range pairs[:5] {
		w.DeleteEntityNow(p.Entity)
	}
	require.NoError(t, w.Process(0))
	assert.Len(t, w.GetComponent(engine.TypeOf[*component.Glyph]()), 25)
}

func TestSpawnedParticlesAreComplete(t *testing.T) {
	w := engine.NewWorld()
	w.AddProcessor(NewSpawner(10, time.Second, time.Second, bounds80x24), PrioritySpawn)

	require.NoError(t, w.Process(0))

	for _, p := range w.GetComponent(engine.TypeOf[*component.Glyph]()) {
		assert.True(t, w.HasComponents(p.Entity,
			engine.TypeOf[*component.Position](),
			engine.TypeOf[*component.Velocity](),
			engine.TypeOf[*component.Lifetime]()))
	}
}

func TestRenderDrawsGlyphs(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	w := engine.NewWorld()
	w.CreateEntity(
		&component.Position{X: 5, Y: 7},
		&component.Glyph{Rune: '@', Color: component.ColorGreen},
	)
	w.AddProcessor(NewRender(screen), PriorityRender)

	require.NoError(t, w.Process(0))

	cells, width, _ := screen.GetContents()
	cell := cells[7*width+5]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '@', cell.Runes[0])
}
