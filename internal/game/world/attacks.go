package world

import (
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/combat"
)

// Projectile tuning constants, in cells per tick and ticks.
const (
	hairballSpeed    = 1.2
	hairballLifetime = 70
	meowSpeed        = 0.6
	meowLifetime     = 25
	meowOmniLifetime = 40
	poundSpeed       = 0.8
	poundLifetime    = 25
)

// Projectile is an in-flight attack: a hairball, a meow wave or a ground
// pound shockwave.
type Projectile struct {
	Kind     combat.AttackKind
	Damage   int
	X, Y     float64
	VelX     float64
	VelY     float64
	Lifetime int
}

// Rect returns the projectile's collision rectangle.
func (pr *Projectile) Rect() core.Rect {
	return core.NewRect(int(pr.X), int(pr.Y), 1, 1)
}

// spawnAttack creates the projectiles for one attack action. The omni flag
// applies only to the meow: a stored charge turns it into a four-way wave
// with a longer lifetime.
func spawnAttack(kind combat.AttackKind, damage int, from core.Rect, facingRight bool, omni bool) []Projectile {
	dir := -1.0
	if facingRight {
		dir = 1.0
	}
	x := float64(from.X + from.W/2)
	y := float64(from.Y + from.H/2)

	switch kind {
	case combat.AttackHairball:
		return []Projectile{{
			Kind: kind, Damage: damage,
			X: x, Y: y, VelX: hairballSpeed * dir,
			Lifetime: hairballLifetime,
		}}

	case combat.AttackPound:
		// The shockwave travels both directions along the floor.
		return []Projectile{
			{Kind: kind, Damage: damage, X: x, Y: float64(from.Bottom() - 1), VelX: poundSpeed, Lifetime: poundLifetime},
			{Kind: kind, Damage: damage, X: x, Y: float64(from.Bottom() - 1), VelX: -poundSpeed, Lifetime: poundLifetime},
		}

	default: // meow
		if omni {
			return []Projectile{
				{Kind: kind, Damage: damage, X: x, Y: y, VelX: meowSpeed, Lifetime: meowOmniLifetime},
				{Kind: kind, Damage: damage, X: x, Y: y, VelX: -meowSpeed, Lifetime: meowOmniLifetime},
				{Kind: kind, Damage: damage, X: x, Y: y, VelY: meowSpeed, Lifetime: meowOmniLifetime},
				{Kind: kind, Damage: damage, X: x, Y: y, VelY: -meowSpeed, Lifetime: meowOmniLifetime},
			}
		}
		return []Projectile{{
			Kind: kind, Damage: damage,
			X: x, Y: y, VelX: meowSpeed * dir,
			Lifetime: meowLifetime,
		}}
	}
}
