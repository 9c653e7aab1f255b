package world

import (
	"testing"

	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/combat"
	"github.com/omacats/platformer/internal/game/round"
	"github.com/omacats/platformer/internal/game/roster"
)

func testParams(index int) round.Params {
	cfg := config.DefaultGameConfig()
	return round.NewManager(cfg.Rounds).DifficultyFor(index)
}

func testWorld(t *testing.T, ids ...roster.CharacterID) (*World, *roster.Roster) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if len(ids) == 0 {
		ids = []roster.CharacterID{roster.Shoogie}
	}
	ros, err := roster.New(ids, cfg)
	if err != nil {
		t.Fatalf("roster.New: %v", err)
	}
	return New(cfg, testParams(1), ros, 80, 24), ros
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGenerateLevelDeterministic(t *testing.T) {
	a := GenerateLevel(testParams(3), 24)
	b := GenerateLevel(testParams(3), 24)

	if len(a.Platforms) != len(b.Platforms) {
		t.Fatalf("platform count differs: %d vs %d", len(a.Platforms), len(b.Platforms))
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy count differs: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Errorf("enemy %d differs", i)
		}
	}
	if a.Bed != b.Bed {
		t.Errorf("bed differs: %+v vs %+v", a.Bed, b.Bed)
	}
}

func TestGenerateLevelMatchesParams(t *testing.T) {
	p := testParams(2)
	lvl := GenerateLevel(p, 24)

	if lvl.Length != p.Length {
		t.Errorf("Length = %d, want %d", lvl.Length, p.Length)
	}
	if len(lvl.Enemies) != p.EnemyCount {
		t.Errorf("enemy count = %d, want %d", len(lvl.Enemies), p.EnemyCount)
	}
	if lvl.GroundY != 22 {
		t.Errorf("GroundY = %d, want 22", lvl.GroundY)
	}
	if lvl.Bed.Right() > p.Length {
		t.Errorf("bed extends past level end: right=%d length=%d", lvl.Bed.Right(), p.Length)
	}

	heavy := 0
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		if !e.Alive {
			t.Errorf("enemy %d spawned dead", i)
		}
		if e.Speed != p.EnemySpeed {
			t.Errorf("enemy %d speed = %v, want %v", i, e.Speed, p.EnemySpeed)
		}
		if e.Health == 2 {
			heavy++
		}
	}
	if heavy == 0 {
		t.Error("expected at least one two-hit enemy")
	}
}

func TestMoveRightAdvancesPlayer(t *testing.T) {
	w, _ := testWorld(t)
	startX := w.player.X

	w.Step(frame(core.ActionMoveRight))
	if w.player.X <= startX {
		t.Errorf("X = %v, want > %v", w.player.X, startX)
	}
	if !w.player.facingRight {
		t.Error("player should face right")
	}

	// The glide keeps the cat moving for a few ticks without new input.
	mid := w.player.X
	w.Step(frame())
	if w.player.X <= mid {
		t.Error("glide should continue one tick after the intent")
	}
}

func TestJumpAndLand(t *testing.T) {
	w, _ := testWorld(t)
	groundTop := w.player.Y

	w.Step(frame(core.ActionJump))
	if w.player.onGround {
		t.Fatal("player should be airborne after jumping")
	}
	if w.player.Y >= groundTop {
		t.Errorf("Y = %v, want above %v", w.player.Y, groundTop)
	}

	for i := 0; i < 200 && !w.player.onGround; i++ {
		w.Step(frame())
	}
	if !w.player.onGround {
		t.Fatal("player never landed")
	}
	if w.player.Y != groundTop {
		t.Errorf("landed at Y = %v, want %v", w.player.Y, groundTop)
	}
}

func TestDoubleJumpOnlyForSue(t *testing.T) {
	w, _ := testWorld(t, roster.Sue)
	w.Step(frame(core.ActionJump))
	v1 := w.player.VelY
	w.Step(frame(core.ActionJump))
	if !w.player.doubleJumped {
		t.Error("Sue should double jump")
	}
	if w.player.VelY >= v1*doubleJumpScale+0.5 {
		t.Errorf("double jump velocity not applied: VelY = %v", w.player.VelY)
	}
	// A third press does nothing until landing.
	w.Step(frame(core.ActionJump))
	if !w.player.doubleJumped {
		t.Error("double jump flag should persist until landing")
	}

	w2, _ := testWorld(t, roster.Shoogie)
	w2.Step(frame(core.ActionJump))
	w2.Step(frame(core.ActionJump))
	if w2.player.doubleJumped {
		t.Error("Shoogie must not double jump")
	}
}

func TestAttackSpawnsProjectileWithCooldown(t *testing.T) {
	w, _ := testWorld(t)

	w.Step(frame(core.ActionAttack))
	if len(w.projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.projectiles))
	}
	if w.projectiles[0].Kind != combat.AttackMeow {
		t.Errorf("Kind = %v, want meow", w.projectiles[0].Kind)
	}

	// Second attack during cooldown is ignored.
	w.Step(frame(core.ActionAttack))
	if len(w.projectiles) != 1 {
		t.Errorf("cooldown violated: projectiles = %d", len(w.projectiles))
	}
}

func TestOmniMeowSpendsFullMeter(t *testing.T) {
	w, ros := testWorld(t)
	cap := ros.Member(roster.Shoogie).Ability.ChargeCap

	// A partial meter fires the ordinary directional meow.
	ros.AddCharge(roster.Shoogie)
	w.Step(frame(core.ActionAttack))
	if len(w.projectiles) != 1 {
		t.Fatalf("projectiles = %d with a partial meter, want 1", len(w.projectiles))
	}
	if got := ros.Member(roster.Shoogie).Charges; got != 1 {
		t.Fatalf("charges = %d, want 1 (partial meter is not spent)", got)
	}

	// A full meter unleashes the four-way meow and resets to zero.
	for i := 0; i < cap; i++ {
		ros.AddCharge(roster.Shoogie)
	}
	w.player.cooldown = 0
	w.projectiles = nil
	w.Step(frame(core.ActionAttack))
	if len(w.projectiles) != 4 {
		t.Fatalf("projectiles = %d, want 4 for omni meow", len(w.projectiles))
	}
	if got := ros.Member(roster.Shoogie).Charges; got != 0 {
		t.Errorf("charges = %d after omni meow, want 0", got)
	}
}

func TestProjectileDefeatsEnemy(t *testing.T) {
	w, _ := testWorld(t)

	// Plant a one-hit enemy directly in a rightward projectile's path.
	w.level.Enemies = []Enemy{{
		X: w.player.X + 4, Y: int(w.player.Y), W: 3, H: 2,
		MinX: w.player.X + 4, MaxX: w.player.X + 4,
		Dir: 1, Speed: 0, Health: 1, Alive: true,
	}}

	var events []Event
	events = append(events, w.Step(frame(core.ActionAttack))...)
	for i := 0; i < meowLifetime && w.level.AliveEnemies() > 0; i++ {
		events = append(events, w.Step(frame())...)
	}

	if w.level.AliveEnemies() != 0 {
		t.Fatal("enemy survived a direct hit")
	}
	if w.EnemiesDefeated() != 1 {
		t.Errorf("EnemiesDefeated = %d, want 1", w.EnemiesDefeated())
	}
	found := false
	for _, ev := range events {
		if _, ok := ev.(EnemyDefeatedEvent); ok {
			found = true
		}
	}
	if !found {
		t.Error("no EnemyDefeatedEvent emitted")
	}
	// A meow kill banks a charge toward the omni attack.
	if got := w.ros.Member(roster.Shoogie).Charges; got != 1 {
		t.Errorf("charges = %d, want 1 after meow defeat", got)
	}
}

func TestTwoHitEnemyTakesTwoProjectiles(t *testing.T) {
	w, _ := testWorld(t)
	w.level.Enemies = []Enemy{{
		X: w.player.X + 4, Y: int(w.player.Y), W: 3, H: 2,
		MinX: w.player.X + 4, MaxX: w.player.X + 4,
		Dir: 1, Speed: 0, Health: 2, Alive: true,
	}}

	fireAndFly := func() {
		w.player.cooldown = 0
		w.Step(frame(core.ActionAttack))
		for i := 0; i < meowLifetime && len(w.projectiles) > 0; i++ {
			w.Step(frame())
		}
	}

	fireAndFly()
	if !w.level.Enemies[0].Alive {
		t.Fatal("two-hit enemy died to one projectile")
	}
	if w.level.Enemies[0].Health != 1 {
		t.Fatalf("Health = %d after first hit, want 1", w.level.Enemies[0].Health)
	}

	fireAndFly()
	if w.level.Enemies[0].Alive {
		t.Fatal("enemy survived two hits")
	}
}

func TestEnemyContactRespawnsAndGrantsGrace(t *testing.T) {
	w, _ := testWorld(t)

	// Walk the player onto a stationary enemy.
	w.level.Enemies = []Enemy{{
		X: w.player.X, Y: int(w.player.Y), W: 3, H: 2,
		MinX: w.player.X, MaxX: w.player.X,
		Dir: 1, Speed: 0, Health: 1, Alive: true,
	}}
	w.level.Enemies[0].homeX = w.player.X

	events := w.Step(frame())
	var hit *DamageTakenEvent
	for _, ev := range events {
		if d, ok := ev.(DamageTakenEvent); ok {
			hit = &d
		}
	}
	if hit == nil {
		t.Fatal("no DamageTakenEvent on contact")
	}
	if hit.Character != roster.Shoogie {
		t.Errorf("Character = %v, want Shoogie", hit.Character)
	}
	if w.player.X != spawnX {
		t.Errorf("X = %v after respawn, want %v", w.player.X, float64(spawnX))
	}
	if w.player.graceTicks == 0 {
		t.Error("no grace period after the hit")
	}

	// Grace: touching again immediately produces no second event.
	w.player.X = w.level.Enemies[0].X
	w.player.Y = float64(w.level.Enemies[0].Y)
	for _, ev := range w.Step(frame()) {
		if _, ok := ev.(DamageTakenEvent); ok {
			t.Fatal("damage registered during the grace period")
		}
	}
}

func TestTreatCollection(t *testing.T) {
	w, _ := testWorld(t, roster.Sue)
	w.level.Treats = []Item{{Rect: w.player.Rect()}}

	events := w.Step(frame())
	collected := false
	for _, ev := range events {
		if _, ok := ev.(TreatCollectedEvent); ok {
			collected = true
		}
	}
	if !collected {
		t.Fatal("no TreatCollectedEvent")
	}
	if !w.level.Treats[0].Collected {
		t.Error("treat not marked collected")
	}
	if w.TreatCount() != 1 {
		t.Errorf("TreatCount = %d, want 1 for Sue", w.TreatCount())
	}

	// Shoogie gets the points but not the jump stacking.
	w2, _ := testWorld(t, roster.Shoogie)
	w2.level.Treats = []Item{{Rect: w2.player.Rect()}}
	w2.Step(frame())
	if w2.TreatCount() != 0 {
		t.Errorf("TreatCount = %d for Shoogie, want 0", w2.TreatCount())
	}
}

func TestPlantBoostsFlorence(t *testing.T) {
	w, _ := testWorld(t, roster.Florence)
	w.level.Plants = []Item{{Rect: w.player.Rect()}}

	w.Step(frame())
	if w.BoostTicks() == 0 {
		t.Fatal("plant did not start Florence's boost")
	}

	before := w.player.X
	w.Step(frame(core.ActionMoveRight))
	boosted := w.player.X - before

	// Compare against an unboosted Florence on the same tick.
	w2, _ := testWorld(t, roster.Florence)
	before2 := w2.player.X
	w2.Step(frame(core.ActionMoveRight))
	plain := w2.player.X - before2

	if boosted <= plain {
		t.Errorf("boosted step %v not faster than plain %v", boosted, plain)
	}
}

func TestPickupRescuesAndSwitches(t *testing.T) {
	w, ros := testWorld(t, roster.Shoogie)
	w.level.Pickups = []Pickup{{ID: roster.Florence, Rect: w.player.Rect()}}

	events := w.Step(frame())
	var rescued, switched bool
	for _, ev := range events {
		switch e := ev.(type) {
		case CharacterRescuedEvent:
			rescued = e.ID == roster.Florence
		case CharacterSwitchedEvent:
			switched = e.To == roster.Florence
		}
	}
	if !rescued {
		t.Fatal("no CharacterRescuedEvent for Florence")
	}
	if !switched {
		t.Fatal("rescue should hand control to the new cat")
	}
	if ros.ActiveID() != roster.Florence {
		t.Errorf("active = %v, want Florence", ros.ActiveID())
	}

	// A second touch of the same cage is a no-op.
	w.level.Pickups[0].Collected = false
	for _, ev := range w.Step(frame()) {
		if _, ok := ev.(CharacterRescuedEvent); ok {
			t.Fatal("re-rescued an already recruited cat")
		}
	}
}

func TestSwitchCharacterCycles(t *testing.T) {
	w, ros := testWorld(t, roster.Shoogie, roster.Florence, roster.Sue)

	events := w.Step(frame(core.ActionSwitchCharacter))
	var sw *CharacterSwitchedEvent
	for _, ev := range events {
		if e, ok := ev.(CharacterSwitchedEvent); ok {
			sw = &e
		}
	}
	if sw == nil {
		t.Fatal("no CharacterSwitchedEvent")
	}
	if sw.From != roster.Shoogie || sw.To != roster.Florence {
		t.Errorf("switch = %v->%v, want Shoogie->Florence", sw.From, sw.To)
	}
	if ros.ActiveID() != roster.Florence {
		t.Errorf("active = %v, want Florence", ros.ActiveID())
	}
}

func TestSwitchWithSoleSurvivorIsNoop(t *testing.T) {
	w, ros := testWorld(t, roster.Shoogie)
	for _, ev := range w.Step(frame(core.ActionSwitchCharacter)) {
		if _, ok := ev.(CharacterSwitchedEvent); ok {
			t.Fatal("switched with a single-cat roster")
		}
	}
	if ros.ActiveID() != roster.Shoogie {
		t.Errorf("active = %v, want Shoogie", ros.ActiveID())
	}
}

func TestGoalReachedFiresOnce(t *testing.T) {
	w, _ := testWorld(t)

	w.player.X = float64(w.level.Bed.X)
	w.player.Y = float64(w.level.Bed.Y)

	first := w.Step(frame())
	reached := false
	for _, ev := range first {
		if _, ok := ev.(GoalReachedEvent); ok {
			reached = true
		}
	}
	if !reached {
		t.Fatal("no GoalReachedEvent at the bed")
	}

	for _, ev := range w.Step(frame()) {
		if _, ok := ev.(GoalReachedEvent); ok {
			t.Fatal("GoalReachedEvent fired twice")
		}
	}
}

func TestCameraFollowsAndClamps(t *testing.T) {
	w, _ := testWorld(t)

	if w.CameraX() != 0 {
		t.Errorf("initial camera = %d, want 0", w.CameraX())
	}

	w.player.X = float64(w.level.Length / 2)
	w.Step(frame())
	if w.CameraX() == 0 {
		t.Error("camera did not follow the player")
	}

	w.player.X = float64(w.level.Length)
	w.Step(frame())
	if max := w.level.Length - 80; w.CameraX() > max {
		t.Errorf("camera = %d, want <= %d", w.CameraX(), max)
	}
}

func TestResetEnemiesReturnsSurvivorsHome(t *testing.T) {
	lvl := GenerateLevel(testParams(1), 24)
	for i := range lvl.Enemies {
		lvl.Enemies[i].X = lvl.Enemies[i].MaxX
		lvl.Enemies[i].Dir = -1
	}
	lvl.Enemies[0].Alive = false
	movedX := lvl.Enemies[0].X

	lvl.ResetEnemies()
	if lvl.Enemies[0].X != movedX {
		t.Error("dead enemy should not be moved by a reset")
	}
	for i := 1; i < len(lvl.Enemies); i++ {
		if lvl.Enemies[i].X != lvl.Enemies[i].homeX {
			t.Errorf("enemy %d not returned home", i)
		}
		if lvl.Enemies[i].Dir != 1 {
			t.Errorf("enemy %d direction not reset", i)
		}
	}
}

func TestRenderShowsGroundAndPlayer(t *testing.T) {
	w, _ := testWorld(t)
	s := core.NewScreen(80, 24)
	w.Render(s)

	if row := s.Row(w.level.GroundY); row[0] != '=' {
		t.Errorf("ground row starts with %q, want '='", row[0])
	}
	cell := s.GetCell(int(w.player.X), int(w.player.Y))
	if cell.Rune == ' ' {
		t.Error("player sprite not drawn at spawn")
	}
}
