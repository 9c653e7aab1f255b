package world

import (
	"github.com/omacats/platformer/internal/core"
)

// Player tuning constants.
const (
	playerW         = 2
	playerH         = 2
	moveGlideTicks  = 6  // How long one movement intent keeps the cat walking
	attackCooldown  = 18 // Ticks between attacks
	damageGraceTick = 90 // Invulnerability after taking a hit
	doubleJumpScale = 0.8
	boostSpeedScale = 2.0
	boostJumpScale  = 1.5
)

// Player holds the kinematic and power-up state of the controlled cat.
// Ability parameters come from the roster's active character each tick, so
// switching cats changes handling immediately.
type Player struct {
	X, Y float64 // Top-left corner in world cells
	VelY float64

	onGround     bool
	doubleJumped bool
	facingRight  bool

	moveDir   float64 // -1, 0, +1
	moveTicks int     // Remaining glide ticks for the last movement intent

	cooldown   int // Ticks until the next attack is allowed
	graceTicks int // Remaining invulnerability ticks

	boostTicks int // Florence plant power-up timer
	treatCount int // Sue's collected treats (jump bonus stacking)
}

// newPlayer places the cat at the level spawn point.
func newPlayer(groundY int) Player {
	return Player{
		X:           spawnX,
		Y:           float64(groundY - playerH),
		onGround:    true,
		facingRight: true,
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(int(p.X), int(p.Y), playerW, playerH)
}

// respawn returns the cat to the spawn point after a hit, keeping power-up
// state but granting a grace period.
func (p *Player) respawn(groundY int) {
	p.X = spawnX
	p.Y = float64(groundY - playerH)
	p.VelY = 0
	p.onGround = true
	p.doubleJumped = false
	p.moveTicks = 0
	p.graceTicks = damageGraceTick
}

// tickTimers counts down the per-tick timers.
func (p *Player) tickTimers() {
	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.graceTicks > 0 {
		p.graceTicks--
	}
	if p.boostTicks > 0 {
		p.boostTicks--
	}
	if p.moveTicks > 0 {
		p.moveTicks--
	}
}
