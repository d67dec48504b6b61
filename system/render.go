package system

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sedgewren/husk/component"
	"github.com/sedgewren/husk/engine"
)

var colorStyles = map[component.Color]tcell.Style{
	component.ColorGreen:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	component.ColorBlue:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	component.ColorYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	component.ColorPurple: tcell.StyleDefault.Foreground(tcell.ColorPurple),
}

// Render draws every positioned glyph to the terminal. Runs last in
// the tick so it sees the settled state, including particles whose
// deferred deletion lands next tick.
type Render struct {
	Screen tcell.Screen
}

func NewRender(screen tcell.Screen) *Render {
	return &Render{Screen: screen}
}

func (s *Render) Process(w *engine.World, dt time.Duration) error {
	s.Screen.Clear()
	engine.Each2(w, func(e engine.Entity, pos *component.Position, glyph *component.Glyph) {
		s.Screen.SetContent(int(pos.X), int(pos.Y), glyph.Rune, nil, colorStyles[glyph.Color])
	})
	s.Screen.Show()
	return nil
}
