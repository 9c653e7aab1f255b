package world

import (
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/roster"
)

// Render draws the visible slice of the level into the screen buffer. The
// HUD is drawn by the session; the world only owns the playfield.
func (w *World) Render(s *core.Screen) {
	// Ground line across the whole view.
	s.DrawHLine(0, w.level.GroundY, s.Width(), '=', core.ColorGreen)

	for _, plat := range w.level.Platforms {
		s.DrawHLine(plat.X-w.cameraX, plat.Y, plat.W, '─', core.ColorWhite)
	}

	for i := range w.level.Treats {
		item := &w.level.Treats[i]
		if item.Collected {
			continue
		}
		w.setWorldCell(s, item.Rect.X, item.Rect.Y, '*', core.ColorYellow)
	}

	for i := range w.level.Plants {
		item := &w.level.Plants[i]
		if item.Collected {
			continue
		}
		w.setWorldCell(s, item.Rect.X, item.Rect.Y, '¥', core.ColorGreen)
	}

	for i := range w.level.Pickups {
		pk := &w.level.Pickups[i]
		if pk.Collected {
			continue
		}
		w.drawSprite(s, pk.Rect, catSprite(pk.ID), core.ColorMagenta)
	}

	for i := range w.level.Enemies {
		e := &w.level.Enemies[i]
		if !e.Alive {
			continue
		}
		color := core.ColorRed
		if e.Health > 1 {
			color = core.ColorMagenta
		}
		w.drawSprite(s, e.Rect(), [][]rune{
			[]rune("[@]"),
			[]rune("oo "),
		}, color)
	}

	// The bed goal.
	bed := w.level.Bed
	for y := bed.Y; y < bed.Bottom(); y++ {
		for x := bed.X; x < bed.Right(); x++ {
			ch := '#'
			if y == bed.Y {
				ch = '▄'
			}
			w.setWorldCell(s, x, y, ch, core.ColorBlue)
		}
	}

	for i := range w.projectiles {
		pr := &w.projectiles[i]
		w.setWorldCell(s, int(pr.X), int(pr.Y), projectileRune(pr), core.ColorCyan)
	}

	// The player blinks during the post-hit grace period.
	if w.player.graceTicks%10 < 6 {
		w.drawSprite(s, w.player.Rect(), catSprite(w.ros.ActiveID()), core.ColorYellow)
	}
}

func projectileRune(pr *Projectile) rune {
	switch {
	case pr.VelY != 0:
		return '|'
	case pr.VelX > 0:
		return '>'
	default:
		return '<'
	}
}

// catSprite returns a 2x2 glyph block for the given cat.
func catSprite(id roster.CharacterID) [][]rune {
	switch id {
	case roster.Florence:
		return [][]rune{[]rune("ʌʌ"), []rune("ɸɸ")}
	case roster.Sue:
		return [][]rune{[]rune("ʌʌ"), []rune("ʂʂ")}
	default:
		return [][]rune{[]rune("ʌʌ"), []rune("ʃʃ")}
	}
}

// setWorldCell draws a single rune at world coordinates, applying the camera.
func (w *World) setWorldCell(s *core.Screen, x, y int, ch rune, color core.Color) {
	s.SetCell(x-w.cameraX, y, ch, color)
}

// drawSprite draws a rune block anchored at the rect's top-left corner.
func (w *World) drawSprite(s *core.Screen, r core.Rect, sprite [][]rune, color core.Color) {
	for dy, row := range sprite {
		for dx, ch := range row {
			if ch == ' ' {
				continue
			}
			w.setWorldCell(s, r.X+dx, r.Y+dy, ch, color)
		}
	}
}
