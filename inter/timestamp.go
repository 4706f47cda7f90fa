package inter

import "time"

// Timestamp is milliseconds since the Unix epoch. It is monotonic per chain
// (every child's timestamp exceeds its parent's) but not tied to any single
// node's wall clock — nodes read it from an injected TimeSource, never from
// time.Now directly (spec.md §5, "Clock").
type Timestamp int64

// FromUnixSeconds converts a Unix timestamp in seconds into a Timestamp.
func FromUnixSeconds(sec int64) Timestamp {
	return Timestamp(sec * int64(time.Second/time.Millisecond))
}

// FromUnixNano converts a Unix timestamp in nanoseconds into a Timestamp.
func FromUnixNano(nsec int64) Timestamp {
	return Timestamp(nsec / int64(time.Millisecond))
}

// Time renders t as a standard library time.Time (UTC).
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// Sub returns the signed duration between t and other.
func (t Timestamp) Sub(other Timestamp) time.Duration {
	return time.Duration(int64(t)-int64(other)) * time.Millisecond
}
