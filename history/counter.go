package history

// versionCounter is the monotonic version source for a History.
//
// It is deliberately separate from timeline indices: eviction shortens the
// snapshot slice, but the counter never rolls back, so a version number is a
// permanent identity rather than an array position.
//
// The counter needs no synchronization because a History has a single
// logical owner by contract.
type versionCounter struct {
	seq int64
}

// next returns the next version number and advances the counter.
// The first call returns 1.
func (c *versionCounter) next() int64 {
	c.seq++
	return c.seq
}
