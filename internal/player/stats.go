// Package player holds the persistent player stats model.
package player

// Stats are the persistent character attributes. All values are clamped
// at zero; there is no upper cap.
type Stats struct {
	Health   int
	Stamina  int
	Charisma int
	Gold     int
}

// DefaultStats returns the stats a new character starts with.
func DefaultStats() Stats {
	return Stats{
		Health:   100,
		Stamina:  100,
		Charisma: 10,
		Gold:     50,
	}
}

// Effect is a delta applied to stats by an interior action.
type Effect struct {
	Health   int
	Stamina  int
	Charisma int
	Gold     int
}

// CanAfford reports whether the stats cover the gold cost of an effect.
func (s Stats) CanAfford(e Effect) bool {
	return s.Gold+e.Gold >= 0
}

// Apply returns the stats with the effect applied, clamping every
// attribute at zero.
func (s Stats) Apply(e Effect) Stats {
	return Stats{
		Health:   clampZero(s.Health + e.Health),
		Stamina:  clampZero(s.Stamina + e.Stamina),
		Charisma: clampZero(s.Charisma + e.Charisma),
		Gold:     clampZero(s.Gold + e.Gold),
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
