package model

// ScoreID identifies a stored score record. IDs are assigned
// monotonically at insertion and never reused
type ScoreID int64

// Score represents a submitted high-score record. Records are immutable
// once stored; the only mutation is deletion by the owning handle
type Score struct {
	ID        ScoreID
	Level     string
	Handle    Handle
	Score     float64
	Timestamp string
}
