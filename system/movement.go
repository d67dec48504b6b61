package system

import (
	"time"

	"github.com/sedgewren/husk/component"
	"github.com/sedgewren/husk/engine"
)

// Movement integrates velocity into position
type Movement struct{}

func NewMovement() *Movement {
	return &Movement{}
}

func (s *Movement) Process(w *engine.World, dt time.Duration) error {
	sec := dt.Seconds()
	engine.Each2(w, func(e engine.Entity, pos *component.Position, vel *component.Velocity) {
		pos.X += vel.DX * sec
		pos.Y += vel.DY * sec
	})
	return nil
}

// Bounce reflects particles off the edges of the playfield
type Bounce struct {
	// Bounds reports the current playfield size in cells
	Bounds func() (int, int)
}

func NewBounce(bounds func() (int, int)) *Bounce {
	return &Bounce{Bounds: bounds}
}

func (s *Bounce) Process(w *engine.World, dt time.Duration) error {
	width, height := s.Bounds()
	maxX, maxY := float64(width-1), float64(height-1)
	engine.Each2(w, func(e engine.Entity, pos *component.Position, vel *component.Velocity) {
		if pos.X < 0 {
			pos.X = -pos.X
			vel.DX = -vel.DX
		} else if pos.X > maxX {
			pos.X = 2*maxX - pos.X
			vel.DX = -vel.DX
		}
		if pos.Y < 0 {
			pos.Y = -pos.Y
			vel.DY = -vel.DY
		} else if pos.Y > maxY {
			pos.Y = 2*maxY - pos.Y
			vel.DY = -vel.DY
		}
	})
	return nil
}
