package roster

import (
	"errors"
	"testing"

	"github.com/omacats/platformer/internal/config"
)

func newTestRoster(t *testing.T, ids []CharacterID) *Roster {
	t.Helper()
	r, err := New(ids, config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("New(%v) failed: %v", ids, err)
	}
	return r
}

func TestNewValidation(t *testing.T) {
	cfg := config.DefaultGameConfig()

	if _, err := New(nil, cfg); !errors.Is(err, ErrInvalidRoster) {
		t.Errorf("New(nil) error = %v, want ErrInvalidRoster", err)
	}
	if _, err := New([]CharacterID{CharacterID(99)}, cfg); !errors.Is(err, ErrInvalidRoster) {
		t.Errorf("New(unknown id) error = %v, want ErrInvalidRoster", err)
	}
	if _, err := New([]CharacterID{Shoogie, Shoogie}, cfg); !errors.Is(err, ErrInvalidRoster) {
		t.Errorf("New(duplicate) error = %v, want ErrInvalidRoster", err)
	}
}

func TestNewInitialState(t *testing.T) {
	r := newTestRoster(t, AllIDs())

	for _, c := range r.Members() {
		if c.Lives != 3 {
			t.Errorf("%s lives = %d, want 3", c.ID, c.Lives)
		}
		if !c.Alive {
			t.Errorf("%s should start alive", c.ID)
		}
	}
	if r.ActiveID() != Shoogie {
		t.Errorf("Active = %s, want Shoogie", r.ActiveID())
	}
}

func TestApplyDamageLifecycle(t *testing.T) {
	r := newTestRoster(t, []CharacterID{Shoogie})

	if eliminated := r.ApplyDamage(Shoogie); eliminated {
		t.Error("First damage should not eliminate")
	}
	if eliminated := r.ApplyDamage(Shoogie); eliminated {
		t.Error("Second damage should not eliminate")
	}
	if eliminated := r.ApplyDamage(Shoogie); !eliminated {
		t.Error("Third damage should eliminate")
	}

	c := r.Member(Shoogie)
	if c.Lives != 0 || c.Alive {
		t.Errorf("After elimination: lives=%d alive=%v, want 0/false", c.Lives, c.Alive)
	}

	// Further damage is a no-op: lives never go below zero and the
	// character never becomes eliminated twice.
	for i := 0; i < 5; i++ {
		if eliminated := r.ApplyDamage(Shoogie); eliminated {
			t.Error("Damage after elimination must not report elimination again")
		}
	}
	if c.Lives != 0 {
		t.Errorf("Lives = %d after extra damage, want 0", c.Lives)
	}
}

func TestSwitchActive(t *testing.T) {
	r := newTestRoster(t, AllIDs())

	if err := r.SwitchActive(Shoogie, Florence); err != nil {
		t.Errorf("SwitchActive to alive target failed: %v", err)
	}
	if r.ActiveID() != Florence {
		t.Errorf("Active = %s, want Florence", r.ActiveID())
	}

	// Switching to self is refused
	if err := r.SwitchActive(Florence, Florence); !errors.Is(err, ErrNoAliveCandidate) {
		t.Errorf("Switch to self error = %v, want ErrNoAliveCandidate", err)
	}

	// Switching to an eliminated character is refused
	for i := 0; i < 3; i++ {
		r.ApplyDamage(Sue)
	}
	if err := r.SwitchActive(Florence, Sue); !errors.Is(err, ErrNoAliveCandidate) {
		t.Errorf("Switch to dead target error = %v, want ErrNoAliveCandidate", err)
	}
	if r.ActiveID() != Florence {
		t.Error("Failed switch must not change the active character")
	}
}

func TestIsPartyWiped(t *testing.T) {
	r := newTestRoster(t, AllIDs())

	if r.IsPartyWiped() {
		t.Error("Fresh roster must not be wiped")
	}

	for _, id := range []CharacterID{Shoogie, Florence} {
		for i := 0; i < 3; i++ {
			r.ApplyDamage(id)
		}
	}
	if r.IsPartyWiped() {
		t.Error("One cat alive: not wiped")
	}

	for i := 0; i < 3; i++ {
		r.ApplyDamage(Sue)
	}
	if !r.IsPartyWiped() {
		t.Error("All cats dead: party is wiped")
	}
}

func TestNextAlive(t *testing.T) {
	r := newTestRoster(t, AllIDs())

	next, ok := r.NextAlive(Shoogie)
	if !ok || next != Florence {
		t.Errorf("NextAlive(Shoogie) = %s/%v, want Florence/true", next, ok)
	}

	for i := 0; i < 3; i++ {
		r.ApplyDamage(Florence)
	}
	next, ok = r.NextAlive(Shoogie)
	if !ok || next != Sue {
		t.Errorf("NextAlive skipping dead = %s/%v, want Sue/true", next, ok)
	}

	for _, id := range []CharacterID{Shoogie, Sue} {
		for i := 0; i < 3; i++ {
			r.ApplyDamage(id)
		}
	}
	if _, ok := r.NextAlive(Shoogie); ok {
		t.Error("NextAlive with everyone dead should report false")
	}
}

func TestRescue(t *testing.T) {
	r := newTestRoster(t, []CharacterID{Shoogie})

	if r.Member(Florence) != nil {
		t.Fatal("Florence should not be recruited yet")
	}
	if !r.Rescue(Florence) {
		t.Fatal("Rescue(Florence) should succeed")
	}
	c := r.Member(Florence)
	if c == nil || c.Lives != 3 || !c.Alive {
		t.Errorf("Rescued cat state = %+v, want 3 lives, alive", c)
	}

	if r.Rescue(Florence) {
		t.Error("Rescuing an already recruited cat should return false")
	}
	if r.Rescue(CharacterID(42)) {
		t.Error("Rescuing an unknown id should return false")
	}
}

func TestChargeSaturation(t *testing.T) {
	r := newTestRoster(t, []CharacterID{Shoogie})
	cap := r.Member(Shoogie).Ability.ChargeCap
	if cap <= 0 {
		t.Fatal("Shoogie should have a charge cap")
	}

	for i := 0; i < cap+10; i++ {
		r.AddCharge(Shoogie)
	}
	if got := r.Member(Shoogie).Charges; got != cap {
		t.Errorf("Charges = %d, want saturation at %d", got, cap)
	}

	if !r.UseCharge(Shoogie) {
		t.Fatal("UseCharge with a full meter should succeed")
	}
	if got := r.Member(Shoogie).Charges; got != 0 {
		t.Errorf("Charges = %d after use, want 0", got)
	}
	if r.UseCharge(Shoogie) {
		t.Error("UseCharge with an empty meter should fail")
	}

	// A partial meter cannot be spent.
	r.AddCharge(Shoogie)
	if r.UseCharge(Shoogie) {
		t.Error("UseCharge below the cap should fail")
	}
}
