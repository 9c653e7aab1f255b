// Package world runs the side-scrolling simulation for one round: player
// movement, patrolling vacuums, projectile attacks, collectibles and the bed
// goal. Each tick consumes abstract input intents and produces gameplay
// events; lives and scoring belong to the session above.
package world

import (
	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/combat"
	"github.com/omacats/platformer/internal/game/round"
	"github.com/omacats/platformer/internal/game/roster"
)

// World is the simulation state of the current round.
type World struct {
	cfg    config.GameConfig
	params round.Params
	level  *Level
	ros    *roster.Roster

	player      Player
	projectiles []Projectile

	screenW, screenH int
	cameraX          int
	defeated         int // Enemies defeated this round
}

// New builds the world for a round. The roster reference is shared with the
// session; the world reads abilities from it and performs character switches
// on it, preserving the single life pool.
func New(cfg config.GameConfig, params round.Params, ros *roster.Roster, screenW, screenH int) *World {
	lvl := GenerateLevel(params, screenH)
	return &World{
		cfg:     cfg,
		params:  params,
		level:   lvl,
		ros:     ros,
		player:  newPlayer(lvl.GroundY),
		screenW: screenW,
		screenH: screenH,
	}
}

// Params returns the round parameters this world was built from.
func (w *World) Params() round.Params {
	return w.params
}

// EnemiesDefeated returns how many vacuums have been destroyed this round.
func (w *World) EnemiesDefeated() int {
	return w.defeated
}

// CameraX returns the current camera scroll offset.
func (w *World) CameraX() int {
	return w.cameraX
}

// Level exposes the level layout for rendering and tests.
func (w *World) Level() *Level {
	return w.level
}

// PlayerRect returns the player's collision rectangle.
func (w *World) PlayerRect() core.Rect {
	return w.player.Rect()
}

// BoostTicks returns the remaining plant power-up ticks (HUD display).
func (w *World) BoostTicks() int {
	return w.player.boostTicks
}

// TreatCount returns Sue's collected treat count (HUD display).
func (w *World) TreatCount() int {
	return w.player.treatCount
}

// Step advances the simulation by one tick and returns the gameplay events
// it produced, in occurrence order.
func (w *World) Step(in core.InputFrame) []Event {
	var events []Event

	active := w.ros.Active()
	ability := active.Ability

	// Character switch first, so movement this tick uses the new cat.
	if in.Has(core.ActionSwitchCharacter) {
		if to, ok := w.ros.NextAlive(active.ID); ok {
			if err := w.ros.SwitchActive(active.ID, to); err == nil {
				events = append(events, CharacterSwitchedEvent{From: active.ID, To: to})
				active = w.ros.Active()
				ability = active.Ability
			}
		}
	}

	w.applyMovement(in)
	w.applyJump(in, ability)
	events = w.applyAttack(in, active, ability, events)
	w.integrate(ability)
	events = w.stepProjectiles(active, events)
	w.stepEnemies()
	events = w.checkEnemyContact(active, events)
	events = w.collectItems(active, events)
	events = w.checkGoal(events)

	w.player.tickTimers()
	w.updateCamera()

	return events
}

// applyMovement latches horizontal intents into a short glide, since
// terminal input delivers discrete key repeats rather than held state.
func (w *World) applyMovement(in core.InputFrame) {
	if in.Has(core.ActionMoveLeft) {
		w.player.moveDir = -1
		w.player.moveTicks = moveGlideTicks
		w.player.facingRight = false
	}
	if in.Has(core.ActionMoveRight) {
		w.player.moveDir = 1
		w.player.moveTicks = moveGlideTicks
		w.player.facingRight = true
	}
}

func (w *World) applyJump(in core.InputFrame, ability roster.Ability) {
	if !in.Has(core.ActionJump) {
		return
	}

	mult := ability.JumpMultiplier
	if w.player.boostTicks > 0 && ability.BoostTicks > 0 {
		mult *= boostJumpScale
	}
	if ability.TreatJumpBoost > 0 && w.player.treatCount > 0 {
		mult *= 1 + float64(w.player.treatCount)*ability.TreatJumpBoost
	}

	switch {
	case w.player.onGround:
		w.player.VelY = w.cfg.Physics.JumpImpulse * mult
		w.player.onGround = false
		w.player.doubleJumped = false
	case ability.DoubleJump && !w.player.doubleJumped:
		w.player.VelY = w.cfg.Physics.JumpImpulse * mult * doubleJumpScale
		w.player.doubleJumped = true
	}
}

func (w *World) applyAttack(in core.InputFrame, active *roster.Character, ability roster.Ability, events []Event) []Event {
	if !in.Has(core.ActionAttack) || w.player.cooldown > 0 {
		return events
	}

	omni := false
	if ability.Combat.Attack == combat.AttackMeow {
		omni = w.ros.UseCharge(active.ID)
	}

	w.projectiles = append(w.projectiles,
		spawnAttack(ability.Combat.Attack, ability.Combat.Damage, w.player.Rect(), w.player.facingRight, omni)...)
	w.player.cooldown = attackCooldown
	return events
}

// integrate applies horizontal glide, gravity, and collisions with
// platforms, the ground, the level bounds and the bed wall.
func (w *World) integrate(ability roster.Ability) {
	speed := w.cfg.Physics.MoveSpeed * ability.SpeedMultiplier
	if w.player.boostTicks > 0 && ability.BoostTicks > 0 {
		speed *= boostSpeedScale
	}

	if w.player.moveTicks > 0 {
		w.player.X += w.player.moveDir * speed
	}

	// The bed's right side is walled off: the level ends there.
	maxX := float64(w.level.Bed.Right() - playerW)
	w.player.X = core.ClampF(w.player.X, 0, maxX)

	w.player.VelY += w.cfg.Physics.Gravity
	if w.player.VelY > w.cfg.Physics.MaxFallSpeed {
		w.player.VelY = w.cfg.Physics.MaxFallSpeed
	}
	prevBottom := w.player.Y + playerH
	w.player.Y += w.player.VelY

	w.player.onGround = false

	// Land on platforms only when falling onto them from above.
	if w.player.VelY > 0 {
		rect := w.player.Rect()
		for _, plat := range w.level.Platforms {
			if rect.Right() <= plat.X || rect.X >= plat.Right() {
				continue
			}
			if prevBottom <= float64(plat.Y) && rect.Bottom() >= plat.Y {
				w.player.Y = float64(plat.Y - playerH)
				w.player.VelY = 0
				w.player.onGround = true
				w.player.doubleJumped = false
				break
			}
		}
	}

	// Ground line.
	groundTop := float64(w.level.GroundY - playerH)
	if w.player.Y >= groundTop {
		w.player.Y = groundTop
		w.player.VelY = 0
		w.player.onGround = true
		w.player.doubleJumped = false
	}
}

func (w *World) stepProjectiles(active *roster.Character, events []Event) []Event {
	kept := w.projectiles[:0]
	for _, pr := range w.projectiles {
		pr.X += pr.VelX
		pr.Y += pr.VelY
		pr.Lifetime--

		if pr.Lifetime <= 0 || pr.X < 0 || pr.X > float64(w.level.Length) || pr.Y < 0 || pr.Y > float64(w.screenH) {
			continue
		}

		hit := false
		rect := pr.Rect()
		for i := range w.level.Enemies {
			e := &w.level.Enemies[i]
			if !e.Alive || !rect.Intersects(e.Rect()) {
				continue
			}

			outcome := combat.ResolveAttack(
				combat.Ability{Attack: pr.Kind, Damage: pr.Damage},
				combat.Target{Health: e.Health},
			)
			switch outcome.Kind {
			case combat.OutcomeDefeat:
				e.Health = 0
				e.Alive = false
				w.defeated++
				events = append(events, EnemyDefeatedEvent{Attack: pr.Kind})
				// A meow defeat builds toward the omnidirectional meow.
				if pr.Kind == combat.AttackMeow {
					w.ros.AddCharge(active.ID)
				}
			case combat.OutcomeHit:
				e.Health -= outcome.Damage
			}
			hit = true
			break
		}

		if !hit {
			kept = append(kept, pr)
		}
	}
	w.projectiles = kept
	return events
}

func (w *World) stepEnemies() {
	for i := range w.level.Enemies {
		e := &w.level.Enemies[i]
		if !e.Alive {
			continue
		}
		e.X += e.Dir * e.Speed
		if e.X <= e.MinX {
			e.X = e.MinX
			e.Dir = 1
		}
		if e.X >= e.MaxX {
			e.X = e.MaxX
			e.Dir = -1
		}
	}
}

func (w *World) checkEnemyContact(active *roster.Character, events []Event) []Event {
	if w.player.graceTicks > 0 {
		return events
	}

	rect := w.player.Rect()
	for i := range w.level.Enemies {
		e := &w.level.Enemies[i]
		if !e.Alive || !rect.Intersects(e.Rect()) {
			continue
		}

		events = append(events, DamageTakenEvent{Character: active.ID})
		w.player.respawn(w.level.GroundY)
		w.level.ResetEnemies()
		break
	}
	return events
}

func (w *World) collectItems(active *roster.Character, events []Event) []Event {
	rect := w.player.Rect()

	for i := range w.level.Treats {
		item := &w.level.Treats[i]
		if item.Collected || !rect.Intersects(item.Rect) {
			continue
		}
		item.Collected = true
		if active.Ability.TreatJumpBoost > 0 {
			w.player.treatCount++
		}
		events = append(events, TreatCollectedEvent{})
	}

	for i := range w.level.Plants {
		item := &w.level.Plants[i]
		if item.Collected || !rect.Intersects(item.Rect) {
			continue
		}
		item.Collected = true
		if active.Ability.BoostTicks > 0 {
			w.player.boostTicks = active.Ability.BoostTicks
		}
		events = append(events, PlantCollectedEvent{})
	}

	for i := range w.level.Pickups {
		pk := &w.level.Pickups[i]
		if pk.Collected || !rect.Intersects(pk.Rect) {
			continue
		}
		pk.Collected = true
		if w.ros.Rescue(pk.ID) {
			events = append(events, CharacterRescuedEvent{ID: pk.ID})
			// The rescued cat takes over, matching the original game feel.
			if err := w.ros.SwitchActive(w.ros.ActiveID(), pk.ID); err == nil {
				events = append(events, CharacterSwitchedEvent{From: active.ID, To: pk.ID})
			}
		}
	}

	return events
}

func (w *World) checkGoal(events []Event) []Event {
	if w.level.goalReached {
		return events
	}
	if w.player.Rect().Intersects(w.level.Bed) {
		w.level.goalReached = true
		events = append(events, GoalReachedEvent{})
	}
	return events
}

// updateCamera keeps the player in the left third of the screen.
func (w *World) updateCamera() {
	target := int(w.player.X) - w.screenW/3
	w.cameraX = core.Clamp(target, 0, core.Max(0, w.level.Length-w.screenW))
}

// Resize updates the world's view of the terminal dimensions.
func (w *World) Resize(screenW, screenH int) {
	w.screenW = screenW
	w.screenH = screenH
}
