package services

import (
	"errors"
	"testing"
	"time"
)

func TestValidateWeightValueBounds(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		wantErr  error
	}{
		{name: "zero rejected", weightKg: 0, wantErr: ErrWeightNotPositive},
		{name: "negative rejected", weightKg: -5, wantErr: ErrWeightNotPositive},
		{name: "barely positive accepted", weightKg: 0.01, wantErr: nil},
		{name: "typical accepted", weightKg: 82.4, wantErr: nil},
		{name: "upper bound accepted", weightKg: 500, wantErr: nil},
		{name: "above upper bound rejected", weightKg: 500.01, wantErr: ErrWeightUnrealistic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeightValue(tt.weightKg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateWeightValue(%v) = %v, want %v", tt.weightKg, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWeightInput(t *testing.T) {
	today := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   WeightInput
		wantErr error
	}{
		{name: "past date ok", input: WeightInput{Date: "2024-06-01", WeightKg: 80}, wantErr: nil},
		{name: "today ok", input: WeightInput{Date: "2024-06-15", WeightKg: 80}, wantErr: nil},
		{name: "future date rejected", input: WeightInput{Date: "2024-06-16", WeightKg: 80}, wantErr: ErrFutureWeightDate},
		{name: "malformed date rejected", input: WeightInput{Date: "15.06.2024", WeightKg: 80}, wantErr: ErrInvalidDate},
		{name: "empty date rejected", input: WeightInput{Date: "", WeightKg: 80}, wantErr: ErrInvalidDate},
		{name: "weight checked before date", input: WeightInput{Date: "not-a-date", WeightKg: 0}, wantErr: ErrWeightNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ValidateWeightInput(tt.input, today, time.UTC)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				want := mustParseDay(tt.input.Date)
				if !day.Equal(want) {
					t.Fatalf("day = %v, want %v", day, want)
				}
			}
		})
	}
}

func TestIsWeightValidationError(t *testing.T) {
	for _, err := range []error{ErrWeightNotPositive, ErrWeightUnrealistic, ErrInvalidDate, ErrFutureWeightDate} {
		if !IsWeightValidationError(err) {
			t.Fatalf("%v should be a validation error", err)
		}
	}
	if IsWeightValidationError(errors.New("disk on fire")) {
		t.Fatal("store failures are not validation errors")
	}
	if IsWeightValidationError(nil) {
		t.Fatal("nil is not a validation error")
	}
}
