package claims

import (
	"sort"

	"waterbutt/internal/utils"
	"waterbutt/pkg/types"
)

// Summarize partitions submissions into approved/pending and derives the
// running total and fill percentage. Pure; safe on an empty or nil set.
// A NULL litres value counts as zero rather than failing the sum.
func Summarize(submissions []*types.Submission, goalLitres int64) *types.Summary {

	summary := &types.Summary{
		Approved:   make([]*types.Submission, 0, len(submissions)),
		Pending:    make([]*types.Submission, 0),
		GoalLitres: goalLitres,
	}

	for _, submission := range submissions {
		if submission.Approved {
			summary.Approved = append(summary.Approved, submission)
			summary.TotalLitres += utils.PtrInt64(submission.Litres)
			continue
		}
		summary.Pending = append(summary.Pending, submission)
	}

	sort.SliceStable(summary.Approved, func(i, j int) bool {
		return summary.Approved[i].CreatedAt.After(summary.Approved[j].CreatedAt)
	})

	summary.FillPercentage = fillPercentage(summary.TotalLitres, goalLitres)

	return summary
}

func fillPercentage(totalLitres, goalLitres int64) float64 {
	if goalLitres <= 0 || totalLitres <= 0 {
		return 0
	}

	pct := float64(totalLitres) / float64(goalLitres) * 100
	if pct > 100 {
		return 100
	}

	return pct
}
