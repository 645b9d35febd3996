package claims

import (
	"context"

	"waterbutt/pkg/types"
)

// Approve marks a single submission approved and re-derives the summary.
// Approval is monotonic and idempotent: repeat calls for the same id succeed
// without double counting, since the total is recomputed from the full set.
// An unknown id surfaces as ErrSubmissionNotFound from the store.
func (s *Service) Approve(ctx context.Context, submissionID string) (*types.Summary, error) {
	if err := s.store.ApproveSubmission(ctx, submissionID); err != nil {
		return nil, err
	}

	return s.Refresh(ctx)
}
