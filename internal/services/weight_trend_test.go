package services

import (
	"math"
	"testing"

	"github.com/skoskinen/painovahti/internal/models"
)

func TestBuildWeightTrendWeeklyLoss(t *testing.T) {
	history := []models.WeightLog{
		makeLog("2024-01-15", 78),
		makeLog("2024-01-08", 79),
		makeLog("2024-01-01", 80),
	}

	trend, ok := BuildWeightTrend(history, 30)
	if !ok {
		t.Fatal("expected a trend from three samples")
	}
	if trend.CurrentWeight != 78 || trend.StartWeight != 80 {
		t.Fatalf("unexpected endpoints: current=%v start=%v", trend.CurrentWeight, trend.StartWeight)
	}
	if trend.WeightChange != -2 {
		t.Fatalf("weight change = %v, want -2", trend.WeightChange)
	}
	if trend.Trend != TrendLosing {
		t.Fatalf("trend = %q, want %q", trend.Trend, TrendLosing)
	}
	if trend.DaysElapsed != 30 {
		t.Fatalf("days elapsed = %d, want 30", trend.DaysElapsed)
	}
	if math.Abs(trend.ChangePercentage-(-2.5)) > 1e-9 {
		t.Fatalf("change percentage = %v, want -2.5", trend.ChangePercentage)
	}
}

func TestBuildWeightTrendNeedsAtLeastTwoSamples(t *testing.T) {
	if _, ok := BuildWeightTrend(nil, 30); ok {
		t.Fatal("expected no trend from empty history")
	}
	if _, ok := BuildWeightTrend([]models.WeightLog{makeLog("2024-01-01", 80)}, 30); ok {
		t.Fatal("expected no trend from a single sample")
	}
}

func TestBuildWeightTrendGainingAndStable(t *testing.T) {
	gaining := []models.WeightLog{
		makeLog("2024-01-10", 81.5),
		makeLog("2024-01-01", 80),
	}
	trend, ok := BuildWeightTrend(gaining, 14)
	if !ok || trend.Trend != TrendGaining {
		t.Fatalf("expected gaining trend, got %+v ok=%v", trend, ok)
	}

	stable := []models.WeightLog{
		makeLog("2024-01-10", 80),
		makeLog("2024-01-01", 80),
	}
	trend, ok = BuildWeightTrend(stable, 14)
	if !ok || trend.Trend != TrendStable {
		t.Fatalf("expected stable trend, got %+v ok=%v", trend, ok)
	}
	if trend.WeightChange != 0 || trend.ChangePercentage != 0 {
		t.Fatalf("expected zero change, got %+v", trend)
	}
}

func TestBuildWeightTrendZeroStartWeightSkipsPercentage(t *testing.T) {
	history := []models.WeightLog{
		makeLog("2024-01-10", 75),
		makeLog("2024-01-01", 0),
	}

	trend, ok := BuildWeightTrend(history, 14)
	if !ok {
		t.Fatal("expected a trend")
	}
	if trend.ChangePercentage != 0 {
		t.Fatalf("change percentage = %v, want 0 for zero start weight", trend.ChangePercentage)
	}
}

func makeLog(day string, weightKg float64) models.WeightLog {
	return models.WeightLog{Date: mustParseDay(day), WeightKg: weightKg}
}
