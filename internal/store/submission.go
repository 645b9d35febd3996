package store

import (
	"context"
	"fmt"
	"time"

	"waterbutt/internal/utils"
	"waterbutt/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const submissionTableName = "waterbutt.submissions"

var submissionColumns = utils.StructTagValues(types.Submission{})

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Submissions returns every submission, newest first. The whole table is
// read on each refresh; aggregates are always derived from this full set.
func (r *SubmissionRepository) Submissions(ctx context.Context) ([]*types.Submission, error) {

	query, args, err := psql().Select(submissionColumns...).From(submissionTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate submissions query: %w", err)
	}

	var submissions = make([]*types.Submission, 0)
	err = pgxscan.Select(ctx, r.pool, &submissions, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to fetch submissions")
	}

	return submissions, nil
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *types.Submission) error {

	submission.ID = utils.NanoID()
	submission.CreatedAt = time.Now()

	submissionMap := utils.StructToMap(submission)

	query, args, err := psql().Insert(submissionTableName).SetMap(submissionMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert submission query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create submission")

}

// ApproveSubmission flips approved to true on a single row. Approving an
// already-approved row is a no-op success; an unknown id is NotFound.
func (r *SubmissionRepository) ApproveSubmission(ctx context.Context, submissionID string) error {

	query, args, err := psql().Update(submissionTableName).
		Set("approved", true).
		Where(sq.Eq{"id": submissionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate approve query for submission %s: %w", submissionID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "failed to approve submission")
	}

	if tag.RowsAffected() == 0 {
		return types.ErrSubmissionNotFound
	}

	return nil
}
