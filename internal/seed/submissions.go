package seed

import (
	"context"
	"fmt"
	"math/rand"

	"waterbutt/internal/store"
	"waterbutt/internal/utils"
	"waterbutt/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

var fakePostcodeAreas = []string{
	"BS1", "BS3", "BS5", "BA1", "BA2", "GL1", "GL50", "TA1", "EX1", "PL4",
}

var fakeCapacities = []int64{
	100, 150, 200, 210, 250, 300, 350, 500, 650, 800, 1000, 1500,
}

// roughly two thirds of seeded submissions arrive pre-approved so the gauge
// shows something on a fresh database
const approvedWeight = 66

// SeedFakeSubmissions inserts count fake submissions and returns them. With
// reset, the table is truncated first.
func SeedFakeSubmissions(
	ctx context.Context,
	pool *pgxpool.Pool,
	submissionRepo *store.SubmissionRepository,
	count int,
	reset bool,
) ([]*types.Submission, error) {

	if reset {
		if _, err := pool.Exec(ctx, "TRUNCATE waterbutt.submissions"); err != nil {
			return nil, fmt.Errorf("failed to truncate submissions: %w", err)
		}
	}

	created := make([]*types.Submission, 0, count)

	for i := 0; i < count; i++ {
		submission := &types.Submission{
			Litres:   utils.Int64Ptr(fakeCapacities[rand.Intn(len(fakeCapacities))]),
			Postcode: fakePostcode(),
			PhotoKey: fmt.Sprintf("butts/seed-%s.jpg", utils.NanoIDSize(8)),
			Approved: rand.Intn(100) < approvedWeight,
		}

		if err := submissionRepo.CreateSubmission(ctx, submission); err != nil {
			return nil, fmt.Errorf("failed to create seeded submission: %w", err)
		}

		created = append(created, submission)
	}

	return created, nil
}

func fakePostcode() string {
	area := fakePostcodeAreas[rand.Intn(len(fakePostcodeAreas))]
	return fmt.Sprintf("%s %d%c%c", area, 1+rand.Intn(9), 'A'+rune(rand.Intn(26)), 'A'+rune(rand.Intn(26)))
}
