package models

// CounterState is the displayed value of an animated counter.
// Current only moves up, one step at a time, and stops at Target.
type CounterState struct {
	Current int
	Target  int
}

// Tick advances the counter by one. It returns false once the target is reached.
func (s *CounterState) Tick() bool {
	if s.Current >= s.Target {
		return false
	}
	s.Current++
	return true
}

// Done reports whether the counter has reached its target
func (s *CounterState) Done() bool {
	return s.Current >= s.Target
}
