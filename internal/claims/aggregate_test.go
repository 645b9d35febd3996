package claims

import (
	"math"
	"testing"
	"time"

	"waterbutt/pkg/types"
)

const testGoalLitres = int64(43000030)

func TestSummarizeEmptySet(t *testing.T) {
	summary := Summarize(nil, testGoalLitres)

	if len(summary.Approved) != 0 || len(summary.Pending) != 0 {
		t.Fatalf("expected empty partitions, got %d approved %d pending", len(summary.Approved), len(summary.Pending))
	}
	if summary.TotalLitres != 0 {
		t.Fatalf("expected zero total, got %d", summary.TotalLitres)
	}
	if summary.FillPercentage != 0 {
		t.Fatalf("expected zero percentage, got %f", summary.FillPercentage)
	}
}

func TestSummarizePartitionAndOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	submissions := []*types.Submission{
		{ID: "a", Litres: litresPtr(100), Postcode: "BS1 1AA", Approved: true, CreatedAt: base},
		{ID: "b", Litres: litresPtr(200), Postcode: "BS2 2BB", Approved: false, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Litres: litresPtr(300), Postcode: "BS3 3CC", Approved: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "d", Litres: litresPtr(400), Postcode: "BS4 4DD", Approved: true, CreatedAt: base.Add(time.Minute)},
	}

	summary := Summarize(submissions, testGoalLitres)

	if len(summary.Approved)+len(summary.Pending) != len(submissions) {
		t.Fatalf("partitions don't cover the set: %d + %d != %d", len(summary.Approved), len(summary.Pending), len(submissions))
	}

	wantOrder := []string{"c", "d", "a"}
	for i, id := range wantOrder {
		if summary.Approved[i].ID != id {
			t.Fatalf("approved[%d] = %s, want %s (newest first)", i, summary.Approved[i].ID, id)
		}
	}

	if len(summary.Pending) != 1 || summary.Pending[0].ID != "b" {
		t.Fatalf("unexpected pending partition: %+v", summary.Pending)
	}

	if summary.TotalLitres != 800 {
		t.Fatalf("expected total 800, got %d", summary.TotalLitres)
	}
}

func TestSummarizeTreatsNilLitresAsZero(t *testing.T) {
	submissions := []*types.Submission{
		{ID: "a", Litres: litresPtr(500), Approved: true},
		{ID: "b", Litres: nil, Approved: true},
	}

	summary := Summarize(submissions, testGoalLitres)

	if summary.TotalLitres != 500 {
		t.Fatalf("expected nil litres to count as zero, got total %d", summary.TotalLitres)
	}
}

func TestSummarizeFillPercentageClamped(t *testing.T) {
	over := []*types.Submission{
		{ID: "a", Litres: litresPtr(testGoalLitres * 3), Approved: true},
	}

	summary := Summarize(over, testGoalLitres)
	if summary.FillPercentage != 100 {
		t.Fatalf("expected percentage capped at 100, got %f", summary.FillPercentage)
	}

	summary = Summarize(nil, 0)
	if summary.FillPercentage != 0 {
		t.Fatalf("expected zero percentage with zero goal, got %f", summary.FillPercentage)
	}
}

func TestSummarizeReferenceScenario(t *testing.T) {
	submissions := []*types.Submission{
		{ID: "a", Litres: litresPtr(500), Postcode: "AB1 2CD", Approved: true},
		{ID: "b", Litres: litresPtr(1000), Postcode: "XY9 8ZZ", Approved: false},
	}

	summary := Summarize(submissions, testGoalLitres)

	if summary.TotalLitres != 500 {
		t.Fatalf("expected total 500, got %d", summary.TotalLitres)
	}

	want := float64(500) / float64(testGoalLitres) * 100
	if math.Abs(summary.FillPercentage-want) > 1e-9 {
		t.Fatalf("expected percentage %f, got %f", want, summary.FillPercentage)
	}
	if summary.FillPercentage <= 0 || summary.FillPercentage >= 0.002 {
		t.Fatalf("percentage out of expected band: %f", summary.FillPercentage)
	}

	if len(summary.Pending) != 1 || summary.Pending[0].Postcode != "XY9 8ZZ" {
		t.Fatalf("unexpected pending: %+v", summary.Pending)
	}
	if len(summary.Approved) != 1 || summary.Approved[0].Postcode != "AB1 2CD" {
		t.Fatalf("unexpected approved: %+v", summary.Approved)
	}
}

func TestNormalizePostcode(t *testing.T) {
	cases := map[string]string{
		" ab1 2cd ": "AB1 2CD",
		"BS1 1AA":   "BS1 1AA",
		"  ":        "",
		"ta1 9xx":   "TA1 9XX",
	}

	for input, want := range cases {
		if got := NormalizePostcode(input); got != want {
			t.Fatalf("NormalizePostcode(%q) = %q, want %q", input, got, want)
		}
	}
}
