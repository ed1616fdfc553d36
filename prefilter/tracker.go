package prefilter

// Tracker wraps a Prefilter with effectiveness tracking across subjects.
//
// Every subject the prefilter admits is a candidate; candidates the regex
// engine then confirms are matches. When too few candidates turn out to
// match, the prefilter is only adding work, so the tracker retires it and
// admits every subject from then on.
//
// Algorithm:
//  1. Track candidates (admitted subjects) and confirms (actual matches)
//  2. Every N candidates, check the confirms/candidates ratio
//  3. If the ratio is below the threshold, disable the prefilter
//  4. Once disabled, never re-enable
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for _, line := range lines {
//	    if !tracker.Admit(line) {
//	        continue
//	    }
//	    if engineMatches(line) {
//	        tracker.Confirm()
//	    }
//	}
type Tracker struct {
	inner Prefilter

	candidates uint64
	confirms   uint64
	rejected   uint64

	checkInterval  uint64
	minEfficiency  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable ratio of confirms/candidates.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is the number of candidates before the first check.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker wraps pf with the default configuration. A nil prefilter gives
// a tracker that admits everything.
func NewTracker(pf Prefilter) *Tracker {
	return NewTrackerWithConfig(pf, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps pf with a custom configuration.
func NewTrackerWithConfig(pf Prefilter, config TrackerConfig) *Tracker {
	return &Tracker{
		inner:         pf,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        pf != nil,
	}
}

// Admit reports whether subject must be handed to the regex engine.
func (t *Tracker) Admit(subject []byte) bool {
	if !t.active {
		return true
	}

	if t.inner.Find(subject, 0) < 0 {
		t.rejected++
		return false
	}

	t.candidates++
	t.checkEffectiveness()
	return true
}

// Confirm records that the last admitted subject matched.
func (t *Tracker) Confirm() {
	t.confirms++
}

// IsActive reports whether the prefilter is still consulted.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the tracking counters.
func (t *Tracker) Stats() (candidates, confirms, rejected uint64, active bool) {
	return t.candidates, t.confirms, t.rejected, t.active
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	if float64(t.confirms)/float64(t.candidates) < t.minEfficiency {
		t.active = false
	}
}
