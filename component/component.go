// Package component holds the component payloads used by the demo
// simulation. Components are plain data; behavior lives in processors.
package component

import "time"

// Position is a screen-space location in cells. Float so sub-cell
// motion survives between ticks.
type Position struct {
	X, Y float64
}

// Velocity is movement in cells per second
type Velocity struct {
	DX, DY float64
}

// Glyph is the renderable face of a particle
type Glyph struct {
	Rune  rune
	Color Color
}

// Color is the palette index for a glyph
type Color int

const (
	ColorGreen Color = iota
	ColorBlue
	ColorYellow
	ColorPurple
)

// Lifetime counts down to deferred deletion
type Lifetime struct {
	Remaining time.Duration
}
