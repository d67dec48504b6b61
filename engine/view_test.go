package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTyped(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity(&Position{X: 3})

	pos, err := Get[*Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, 3.0, pos.X)

	_, err = Get[*Velocity](w, e)
	assert.ErrorIs(t, err, ErrComponentNotPresent)

	_, err = Get[*Position](w, e+1)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestTryGetTyped(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity(&Position{X: 3})

	pos, ok := TryGet[*Position](w, e)
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.X)

	_, ok = TryGet[*Velocity](w, e)
	assert.False(t, ok)
}

func TestEach(t *testing.T) {
	w := NewWorld()
	w.CreateEntity(&Health{HP: 1})
	w.CreateEntity(&Health{HP: 2})
	w.CreateEntity(&Position{})

	total := 0
	Each(w, func(e Entity, h *Health) {
		total += h.HP
	})
	assert.Equal(t, 3, total)
}

func TestEach2MutatesInPlace(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity(&Position{X: 0}, &Velocity{DX: 2})

	Each2(w, func(e Entity, pos *Position, vel *Velocity) {
		pos.X += vel.DX
	})

	pos, err := Get[*Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, 2.0, pos.X)
}

func TestEach3(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity(&Position{}, &Velocity{}, &Health{HP: 9})
	w.CreateEntity(&Position{}, &Velocity{})

	var seen []Entity
	Each3(w, func(e Entity, pos *Position, vel *Velocity, h *Health) {
		seen = append(seen, e)
		assert.Equal(t, 9, h.HP)
	})
	assert.Equal(t, []Entity{e1}, seen)
}
