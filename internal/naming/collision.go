package naming

// DestinationTracker records which input claimed each output path during a
// run. It only reports collisions; moves onto a claimed path still replace
// the earlier file. Not safe for concurrent use.
type DestinationTracker struct {
	owners map[string]string // output path -> input path that claimed it
}

// NewDestinationTracker creates a ready-to-use tracker.
func NewDestinationTracker() *DestinationTracker {
	return &DestinationTracker{owners: make(map[string]string)}
}

// Claim registers input as the writer of output. If a different input
// already claimed output, that input is returned with collided=true.
// Re-claiming by the same input is not a collision.
func (t *DestinationTracker) Claim(input, output string) (previous string, collided bool) {
	owner, exists := t.owners[output]
	t.owners[output] = input
	if !exists || owner == input {
		return "", false
	}
	return owner, true
}

// Len returns the number of distinct output paths claimed.
func (t *DestinationTracker) Len() int {
	return len(t.owners)
}
