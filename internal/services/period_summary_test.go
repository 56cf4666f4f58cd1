package services

import (
	"math"
	"testing"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

func TestBuildPeriodSummaryCompletedPeriod(t *testing.T) {
	period := makePeriod("No Late Snacks", "2024-01-01", "2024-01-14")
	start := 80.0
	end := 77.0

	summary := BuildPeriodSummary(period, &start, &end, mustParseDay("2024-03-01"))

	if summary.IsOngoing {
		t.Fatal("period with an end date must not be ongoing")
	}
	if summary.DurationDays != 14 {
		t.Fatalf("duration = %d, want 14", summary.DurationDays)
	}
	if summary.WeightChange == nil {
		t.Fatal("expected a weight change with both boundary weights present")
	}
	if summary.WeightChange.Change != -3.0 {
		t.Fatalf("change = %v, want -3.0", summary.WeightChange.Change)
	}
	if math.Abs(summary.WeightChange.ChangePerWeek-(-1.5)) > 1e-9 {
		t.Fatalf("change per week = %v, want -1.5", summary.WeightChange.ChangePerWeek)
	}
	if summary.WeightChange.StartWeight != 80 || summary.WeightChange.EndWeight != 77 {
		t.Fatalf("unexpected boundary weights: %+v", summary.WeightChange)
	}
}

func TestBuildPeriodSummaryOngoingPeriodRunsThroughToday(t *testing.T) {
	period := makeOngoingPeriod("Intermittent Fasting", "2024-01-01")

	summary := BuildPeriodSummary(period, nil, nil, mustParseDay("2024-01-10"))

	if !summary.IsOngoing {
		t.Fatal("period without an end date must be ongoing")
	}
	if summary.DurationDays != 10 {
		t.Fatalf("duration = %d, want 10", summary.DurationDays)
	}
}

func TestBuildPeriodSummaryMissingBoundaryWeight(t *testing.T) {
	period := makePeriod("Low-Carb", "2024-01-01", "2024-01-14")
	start := 80.0

	summary := BuildPeriodSummary(period, &start, nil, mustParseDay("2024-03-01"))
	if summary.WeightChange != nil {
		t.Fatalf("expected no weight change without an end weight, got %+v", summary.WeightChange)
	}

	summary = BuildPeriodSummary(period, nil, &start, mustParseDay("2024-03-01"))
	if summary.WeightChange != nil {
		t.Fatalf("expected no weight change without a start weight, got %+v", summary.WeightChange)
	}
}

func TestBuildPeriodSummarySingleDayPeriod(t *testing.T) {
	period := makePeriod("One Day Fast", "2024-03-10", "2024-03-10")
	start := 80.0
	end := 79.5

	summary := BuildPeriodSummary(period, &start, &end, mustParseDay("2024-03-20"))

	if summary.DurationDays != 1 {
		t.Fatalf("duration = %d, want 1", summary.DurationDays)
	}
	if summary.WeightChange == nil {
		t.Fatal("expected a weight change")
	}
	if math.Abs(summary.WeightChange.ChangePerWeek-(-3.5)) > 1e-9 {
		t.Fatalf("change per week = %v, want -3.5", summary.WeightChange.ChangePerWeek)
	}
}

func TestBuildPeriodSummaryDurationAcrossDSTTransition(t *testing.T) {
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	start, err := ParseDay("2024-03-25", helsinki)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	end, err := ParseDay("2024-04-05", helsinki)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}

	period := models.DietaryPeriod{Name: "Spring Reset", StartDate: start, EndDate: &end, IsActive: true}
	startWeight := 82.0
	endWeight := 80.0

	summary := BuildPeriodSummary(period, &startWeight, &endWeight, mustParseDay("2024-05-01"))

	// The spring-forward hour on 2024-03-31 must not shorten the period.
	if summary.DurationDays != 12 {
		t.Fatalf("duration = %d, want 12", summary.DurationDays)
	}
	if summary.WeightChange == nil {
		t.Fatal("expected a weight change")
	}
	wantPerWeek := -2.0 / 12 * 7
	if math.Abs(summary.WeightChange.ChangePerWeek-wantPerWeek) > 1e-9 {
		t.Fatalf("change per week = %v, want %v", summary.WeightChange.ChangePerWeek, wantPerWeek)
	}
}

func TestEffectiveEndDate(t *testing.T) {
	today := mustParseDay("2024-05-01")

	closed := makePeriod("Closed", "2024-01-01", "2024-01-14")
	end, ongoing := EffectiveEndDate(closed, today)
	if ongoing || !end.Equal(mustParseDay("2024-01-14")) {
		t.Fatalf("closed period: end=%v ongoing=%v", end, ongoing)
	}

	open := makeOngoingPeriod("Open", "2024-01-01")
	end, ongoing = EffectiveEndDate(open, today)
	if !ongoing || !end.Equal(today) {
		t.Fatalf("open period: end=%v ongoing=%v", end, ongoing)
	}
}
