package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestPlanningRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request PlanningRequest
		wantErr error
	}{
		{
			name: "valid cost request",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeCost,
				Budget:          floatPtr(800),
			},
		},
		{
			name: "valid time request without budget",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeTime,
			},
		},
		{
			name: "missing source city",
			request: PlanningRequest{
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeTime,
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "missing destination city",
			request: PlanningRequest{
				SourceCity: "Ithaca",
				DepartDate: "2026-03-10",
				ReturnDate: "2026-03-14",
				Preference: OptimizeTime,
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "invalid preference",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeFor("comfort"),
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "malformed depart date",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "03/10/2026",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeTime,
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "return date equals depart date",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-10",
				Preference:      OptimizeTime,
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "return date before depart date",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-14",
				ReturnDate:      "2026-03-10",
				Preference:      OptimizeTime,
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "cost preference without budget",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeCost,
			},
			wantErr: ErrMissingBudget,
		},
		{
			name: "cost preference with zero budget",
			request: PlanningRequest{
				SourceCity:      "Ithaca",
				DestinationCity: "Chicago",
				DepartDate:      "2026-03-10",
				ReturnDate:      "2026-03-14",
				Preference:      OptimizeCost,
				Budget:          floatPtr(0),
			},
			wantErr: ErrMissingBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlanningRequest_EffectiveBudget(t *testing.T) {
	withBudget := PlanningRequest{Budget: floatPtr(500)}
	assert.Equal(t, float64(600), withBudget.EffectiveBudget())

	unbounded := PlanningRequest{}
	assert.True(t, math.IsInf(unbounded.EffectiveBudget(), 1))
}

func TestOptimizeFor_IsValid(t *testing.T) {
	assert.True(t, OptimizeCost.IsValid())
	assert.True(t, OptimizeTime.IsValid())
	assert.False(t, OptimizeFor("").IsValid())
	assert.False(t, OptimizeFor("speed").IsValid())
}
