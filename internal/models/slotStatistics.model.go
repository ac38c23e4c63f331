package models

// SlotStatistics is a point in time read of the counters derived from the heart
// and rating tables. It is never persisted.
type SlotStatistics struct {
	HeartCount    int
	ThumbsUp      int
	ThumbsDown    int
	AverageRating float64
}
