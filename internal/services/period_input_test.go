package services

import (
	"errors"
	"testing"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

func TestValidatePeriodInput(t *testing.T) {
	tests := []struct {
		name    string
		input   PeriodInput
		wantErr error
	}{
		{
			name:    "closed period ok",
			input:   PeriodInput{StartDate: "2024-02-01", EndDate: "2024-02-14", Name: "Low-Carb"},
			wantErr: nil,
		},
		{
			name:    "open-ended period ok",
			input:   PeriodInput{StartDate: "2024-02-01", Name: "Intermittent Fasting"},
			wantErr: nil,
		},
		{
			name:    "end equal to start ok",
			input:   PeriodInput{StartDate: "2024-02-01", EndDate: "2024-02-01", Name: "One Day Fast"},
			wantErr: nil,
		},
		{
			name:    "end before start rejected",
			input:   PeriodInput{StartDate: "2024-02-10", EndDate: "2024-02-01", Name: "Backwards"},
			wantErr: ErrPeriodEndBeforeStart,
		},
		{
			name:    "malformed start rejected",
			input:   PeriodInput{StartDate: "01/02/2024", Name: "Bad Start"},
			wantErr: ErrInvalidPeriodStart,
		},
		{
			name:    "malformed end rejected",
			input:   PeriodInput{StartDate: "2024-02-01", EndDate: "soon", Name: "Bad End"},
			wantErr: ErrInvalidPeriodEnd,
		},
		{
			name:    "blank name rejected",
			input:   PeriodInput{StartDate: "2024-02-01", Name: "   "},
			wantErr: ErrPeriodNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := ValidatePeriodInput(tt.input, time.UTC)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !normalized.StartDate.Equal(mustParseDay(tt.input.StartDate)) {
				t.Fatalf("start = %v, want %v", normalized.StartDate, tt.input.StartDate)
			}
			if tt.input.EndDate == "" && normalized.EndDate != nil {
				t.Fatalf("expected nil end date, got %v", *normalized.EndDate)
			}
			if tt.input.EndDate != "" && (normalized.EndDate == nil || !normalized.EndDate.Equal(mustParseDay(tt.input.EndDate))) {
				t.Fatalf("end = %v, want %v", normalized.EndDate, tt.input.EndDate)
			}
		})
	}
}

func TestValidatePeriodInputNormalizesProtocol(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		want     string
	}{
		{name: "known tag kept", protocol: models.ProtocolIntermittentFasting, want: models.ProtocolIntermittentFasting},
		{name: "unknown tag becomes custom", protocol: "keto-extreme", want: models.ProtocolCustom},
		{name: "blank becomes custom", protocol: "", want: models.ProtocolCustom},
		{name: "surrounding whitespace trimmed", protocol: "  portion_control  ", want: models.ProtocolPortionControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := ValidatePeriodInput(PeriodInput{StartDate: "2024-02-01", Name: "Test", ProtocolType: tt.protocol}, time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if normalized.ProtocolType != tt.want {
				t.Fatalf("protocol = %q, want %q", normalized.ProtocolType, tt.want)
			}
		})
	}
}

func TestValidatePeriodInputTrimsName(t *testing.T) {
	normalized, err := ValidatePeriodInput(PeriodInput{StartDate: "2024-02-01", Name: "  No Late Snacks  "}, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Name != "No Late Snacks" {
		t.Fatalf("name = %q, want trimmed", normalized.Name)
	}
}
