package world

import (
	"math/rand"

	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/round"
	"github.com/omacats/platformer/internal/game/roster"
)

// Layout constants in screen cells.
const (
	platformSpacing  = 16 // Horizontal distance between platform starts
	platformWidthMin = 6
	platformWidthMax = 11
	platformRiseMin  = 3 // Cells above the ground line
	platformRiseMax  = 7
	bedWidth         = 8
	bedHeight        = 3
	spawnX           = 2
	treatEvery       = 3 // A treat on every Nth platform
	plantEvery       = 5 // A plant on every Nth platform

	florencePickupAt = 0.3 // Fraction of level length where Florence waits
	suePickupAt      = 0.6 // Fraction of level length where Sue waits

	heavyEnemyEvery = 3 // Every Nth vacuum takes two hits
)

// Item is a collectible placed in the level (treat or plant).
type Item struct {
	Rect      core.Rect
	Collected bool
}

// Pickup is a caged cat waiting to be rescued mid-level.
type Pickup struct {
	ID        roster.CharacterID
	Rect      core.Rect
	Collected bool
}

// Enemy is a patrolling vacuum cleaner.
type Enemy struct {
	X      float64 // Left edge, fractional for sub-cell patrol speed
	Y      int
	W, H   int
	MinX   float64 // Patrol bounds
	MaxX   float64
	Dir    float64 // +1 or -1
	Speed  float64
	Health int
	Alive  bool
	homeX  float64 // Start of patrol, used when the level resets enemies
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(int(e.X), e.Y, e.W, e.H)
}

// Level is the static layout of one round: platforms, collectibles, enemies
// and the bed goal. Generated deterministically from the round parameters,
// so the same round index always produces the same level.
type Level struct {
	Length    int
	GroundY   int // Y of the walkable ground line
	Platforms []core.Rect
	Treats    []Item
	Plants    []Item
	Pickups   []Pickup
	Enemies   []Enemy
	Bed       core.Rect

	goalReached bool
}

// GenerateLevel builds the level for the given round. Terrain is not
// randomized between attempts: the generator is seeded by the round index,
// so regenerating round N yields an identical layout.
func GenerateLevel(p round.Params, screenH int) *Level {
	rng := rand.New(rand.NewSource(int64(p.Index) * 7919))

	groundY := screenH - 2
	lvl := &Level{
		Length:  p.Length,
		GroundY: groundY,
	}

	// Platforms march from past the spawn point to just before the bed.
	x := spawnX + 12
	bedX := p.Length - bedWidth - 2
	i := 0
	for x < bedX-platformWidthMax {
		w := platformWidthMin + rng.Intn(platformWidthMax-platformWidthMin+1)
		rise := platformRiseMin + rng.Intn(platformRiseMax-platformRiseMin+1)
		plat := core.NewRect(x, groundY-rise, w, 1)
		lvl.Platforms = append(lvl.Platforms, plat)

		if i%treatEvery == 0 {
			lvl.Treats = append(lvl.Treats, Item{
				Rect: core.NewRect(plat.X+plat.W/2, plat.Y-1, 1, 1),
			})
		}
		if i%plantEvery == plantEvery-1 {
			lvl.Plants = append(lvl.Plants, Item{
				Rect: core.NewRect(plat.X+1, plat.Y-1, 1, 1),
			})
		}

		x += platformSpacing + rng.Intn(6)
		i++
	}

	// Ground-level treats between platforms.
	for tx := spawnX + 8; tx < bedX; tx += 24 {
		lvl.Treats = append(lvl.Treats, Item{
			Rect: core.NewRect(tx, groundY-1, 1, 1),
		})
	}

	// Cat pickups at fixed fractions of the level.
	lvl.Pickups = []Pickup{
		{ID: roster.Florence, Rect: core.NewRect(int(float64(p.Length)*florencePickupAt), groundY-2, 2, 2)},
		{ID: roster.Sue, Rect: core.NewRect(int(float64(p.Length)*suePickupAt), groundY-2, 2, 2)},
	}

	// Vacuums patrol evenly spaced segments of the floor.
	if p.EnemyCount > 0 {
		segment := (bedX - spawnX - 20) / p.EnemyCount
		if segment < 8 {
			segment = 8
		}
		for n := 0; n < p.EnemyCount; n++ {
			start := float64(spawnX + 20 + n*segment)
			span := float64(6 + rng.Intn(10))
			health := 1
			if n%heavyEnemyEvery == heavyEnemyEvery-1 {
				health = 2
			}
			lvl.Enemies = append(lvl.Enemies, Enemy{
				X:      start,
				Y:      groundY - 2,
				W:      3,
				H:      2,
				MinX:   start,
				MaxX:   start + span,
				Dir:    1,
				Speed:  p.EnemySpeed,
				Health: health,
				Alive:  true,
				homeX:  start,
			})
		}
	}

	lvl.Bed = core.NewRect(bedX, groundY-bedHeight, bedWidth, bedHeight)
	return lvl
}

// GoalReached reports whether the player has reached the bed this round.
func (l *Level) GoalReached() bool {
	return l.goalReached
}

// ResetEnemies sends every surviving vacuum back to the start of its patrol.
// Called after the player takes damage, mirroring the respawn rules.
func (l *Level) ResetEnemies() {
	for i := range l.Enemies {
		if !l.Enemies[i].Alive {
			continue
		}
		l.Enemies[i].X = l.Enemies[i].homeX
		l.Enemies[i].Dir = 1
	}
}

// AliveEnemies returns the number of vacuums still patrolling.
func (l *Level) AliveEnemies() int {
	n := 0
	for i := range l.Enemies {
		if l.Enemies[i].Alive {
			n++
		}
	}
	return n
}
