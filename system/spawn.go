package system

import (
	"math/rand"
	"time"

	"github.com/sedgewren/husk/component"
	"github.com/sedgewren/husk/engine"
)

var glyphRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789*+~")

// Spawner keeps the particle population at the configured target
type Spawner struct {
	Target   int
	MinLife  time.Duration
	MaxLife  time.Duration
	MaxSpeed float64

	// Bounds reports the current playfield size in cells
	Bounds func() (int, int)

	rng *rand.Rand
}

func NewSpawner(target int, minLife, maxLife time.Duration, bounds func() (int, int)) *Spawner {
	return &Spawner{
		Target:   target,
		MinLife:  minLife,
		MaxLife:  maxLife,
		MaxSpeed: 12,
		Bounds:   bounds,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Spawner) Process(w *engine.World, dt time.Duration) error {
	alive := len(w.GetComponent(engine.TypeOf[*component.Glyph]()))
	if alive >= s.Target {
		return nil
	}

	width, height := s.Bounds()
	if width < 2 || height < 2 {
		return nil
	}

	for i := alive; i < s.Target; i++ {
		w.CreateEntity(
			&component.Position{
				X: float64(s.rng.Intn(width)),
				Y: float64(s.rng.Intn(height)),
			},
			&component.Velocity{
				DX: (s.rng.Float64()*2 - 1) * s.MaxSpeed,
				DY: (s.rng.Float64()*2 - 1) * s.MaxSpeed,
			},
			&component.Glyph{
				Rune:  glyphRunes[s.rng.Intn(len(glyphRunes))],
				Color: component.Color(s.rng.Intn(4)),
			},
			&component.Lifetime{Remaining: s.randomLife()},
		)
	}
	return nil
}

func (s *Spawner) randomLife() time.Duration {
	if s.MaxLife <= s.MinLife {
		return s.MinLife
	}
	return s.MinLife + time.Duration(s.rng.Int63n(int64(s.MaxLife-s.MinLife)))
}
