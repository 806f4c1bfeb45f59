package locomotion

// BoostConfig tunes the speed boost.
type BoostConfig struct {
	Multiplier float32
	Distance   float32 // distance after which the boost ends
}

// DefaultBoostConfig returns a 2.5x boost lasting 10 units.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{Multiplier: 2.5, Distance: 10}
}

// Boost tracks an active speed boost and the distance covered under it.
type Boost struct {
	Active   bool
	Traveled float32
}

// Trigger starts a boost. It does nothing while one is already running.
func (b *Boost) Trigger() bool {
	if b.Active {
		return false
	}
	b.Active = true
	b.Traveled = 0
	return true
}

// Factor is the speed multiplier to apply this step.
func (b *Boost) Factor(cfg BoostConfig) float32 {
	if b.Active {
		return cfg.Multiplier
	}
	return 1
}

// Advance adds distance covered while boosting. It reports true on the step
// the boost runs out.
func (b *Boost) Advance(distance float32, cfg BoostConfig) bool {
	if !b.Active {
		return false
	}
	b.Traveled += distance
	if b.Traveled >= cfg.Distance {
		b.Active = false
		return true
	}
	return false
}
