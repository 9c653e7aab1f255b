package combat

import "testing"

func TestResolveAttack(t *testing.T) {
	tests := []struct {
		name    string
		ability Ability
		target  Target
		want    OutcomeKind
		damage  int
	}{
		{"hit survives", Ability{AttackMeow, 1}, Target{Health: 3}, OutcomeHit, 1},
		{"exact defeat", Ability{AttackHairball, 2}, Target{Health: 2}, OutcomeDefeat, 2},
		{"overkill defeat", Ability{AttackPound, 5}, Target{Health: 1}, OutcomeDefeat, 5},
		{"already down", Ability{AttackMeow, 1}, Target{Health: 0}, OutcomeMiss, 0},
		{"negative health", Ability{AttackMeow, 1}, Target{Health: -2}, OutcomeMiss, 0},
		{"zero damage", Ability{AttackMeow, 0}, Target{Health: 3}, OutcomeMiss, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAttack(tt.ability, tt.target)
			if got.Kind != tt.want {
				t.Errorf("ResolveAttack() kind = %v, want %v", got.Kind, tt.want)
			}
			if got.Damage != tt.damage {
				t.Errorf("ResolveAttack() damage = %d, want %d", got.Damage, tt.damage)
			}
		})
	}
}

func TestResolveAttackIsPure(t *testing.T) {
	ab := Ability{Attack: AttackMeow, Damage: 1}
	target := Target{Health: 3}

	first := ResolveAttack(ab, target)
	second := ResolveAttack(ab, target)

	if first != second {
		t.Errorf("Same inputs produced different outcomes: %+v vs %+v", first, second)
	}
	if target.Health != 3 {
		t.Error("ResolveAttack must not mutate the target")
	}
}

func TestParseAttackKind(t *testing.T) {
	if ParseAttackKind("hairball") != AttackHairball {
		t.Error("ParseAttackKind(hairball) failed")
	}
	if ParseAttackKind("pound") != AttackPound {
		t.Error("ParseAttackKind(pound) failed")
	}
	if ParseAttackKind("meow") != AttackMeow {
		t.Error("ParseAttackKind(meow) failed")
	}
	if ParseAttackKind("") != AttackMeow {
		t.Error("Unknown attack kinds should fall back to meow")
	}
}
