// Package claims holds the submission, moderation and aggregation logic for
// water-butt capacity claims. It talks to the outside world only through the
// two adapter interfaces below, so the store and photo backends stay
// swappable and the workflows stay testable.
package claims

import (
	"context"
	"io"
	"time"

	"waterbutt/pkg/types"
)

type SubmissionStore interface {
	Submissions(ctx context.Context) ([]*types.Submission, error)
	CreateSubmission(ctx context.Context, submission *types.Submission) error
	ApproveSubmission(ctx context.Context, submissionID string) error
}

type PhotoStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	store      SubmissionStore
	photos     PhotoStore
	goalLitres int64

	now func() time.Time
}

func New(store SubmissionStore, photos PhotoStore, goalLitres int64) *Service {
	return &Service{
		store:      store,
		photos:     photos,
		goalLitres: goalLitres,
		now:        time.Now,
	}
}

// Refresh re-reads the full submission set and derives a fresh summary.
// Aggregates are never mutated incrementally; a failed read is reported as a
// FetchError so callers can keep their previous summary.
func (s *Service) Refresh(ctx context.Context) (*types.Summary, error) {
	submissions, err := s.store.Submissions(ctx)
	if err != nil {
		return nil, &types.FetchError{Err: err}
	}

	return Summarize(submissions, s.goalLitres), nil
}
