package player

import "testing"

func TestDefaultStats(t *testing.T) {
	s := DefaultStats()
	if s.Health != 100 || s.Stamina != 100 || s.Charisma != 10 || s.Gold != 50 {
		t.Errorf("DefaultStats() = %+v, want 100/100/10/50", s)
	}
}

func TestApplyClampsAtZero(t *testing.T) {
	s := Stats{Health: 3, Stamina: 0, Charisma: 1, Gold: 2}
	got := s.Apply(Effect{Health: -10, Stamina: -1, Gold: -5})

	if got.Health != 0 || got.Stamina != 0 || got.Gold != 0 {
		t.Errorf("Apply should clamp at zero, got %+v", got)
	}
	if got.Charisma != 1 {
		t.Errorf("untouched stat changed: %+v", got)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := Stats{Gold: 10}
	_ = s.Apply(Effect{Gold: -4})
	if s.Gold != 10 {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestCanAfford(t *testing.T) {
	s := Stats{Gold: 2}
	if !s.CanAfford(Effect{Gold: -2}) {
		t.Error("exact gold should be affordable")
	}
	if s.CanAfford(Effect{Gold: -3}) {
		t.Error("cost above balance should not be affordable")
	}
	if !s.CanAfford(Effect{Charisma: 1}) {
		t.Error("free effects are always affordable")
	}
}
