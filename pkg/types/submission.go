package types

import (
	"time"
)

// Submission is one water-butt capacity claim. Litres is a pointer because
// historical rows imported from the first version of the campaign sheet may
// carry a NULL capacity; aggregation counts those as zero.
type Submission struct {
	ID        string    `db:"id"`
	Litres    *int64    `db:"litres"`
	Postcode  string    `db:"postcode"`
	PhotoKey  string    `db:"photo_key"`
	Approved  bool      `db:"approved"`
	CreatedAt time.Time `db:"created_at"`
}

// Summary is the derived view over the full submission set. It is recomputed
// from a full re-read on every change, never maintained incrementally.
type Summary struct {
	Approved       []*Submission
	Pending        []*Submission
	TotalLitres    int64
	GoalLitres     int64
	FillPercentage float64
}
