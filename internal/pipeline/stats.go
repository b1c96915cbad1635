package pipeline

// RunStats tracks aggregate counters across one or more phases.
type RunStats struct {
	Total      int // Files discovered.
	Current    int // Index of the file being processed (1-based).
	Moved      int // Files moved, or planned in a dry run.
	Unified    int // RAVDESS inputs.
	Secondary  int // ASVP-ESD inputs.
	Collisions int // Moves onto a path already claimed in the same pass.
	Pruned     int // Directories removed.
}

// Add accumulates other into s. Current is not summed.
func (s *RunStats) Add(other RunStats) {
	s.Total += other.Total
	s.Moved += other.Moved
	s.Unified += other.Unified
	s.Secondary += other.Secondary
	s.Collisions += other.Collisions
	s.Pruned += other.Pruned
}
