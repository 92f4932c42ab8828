package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardline/rostering-backend-go/internal/pkg/validator"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func validGenerateRequest() GenerateScheduleRequest {
	return GenerateScheduleRequest{
		StartDate: "2025-03-03",
		EndDate:   "2025-03-09",
		CoverageRequirements: []CoverageRequirementDTO{
			{
				Date:      "2025-03-03",
				ShiftType: "day",
				LevelRequirements: []LevelRequirementDTO{
					{Level: 1, Count: 2},
				},
			},
		},
	}
}

func TestGenerateScheduleRequest_Validate(t *testing.T) {
	t.Parallel()

	req := validGenerateRequest()
	assert.NoError(t, req.Validate())
}

func TestGenerateScheduleRequest_ValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *GenerateScheduleRequest)
		wantKey string
	}{
		{
			name:    "missing start date",
			mutate:  func(r *GenerateScheduleRequest) { r.StartDate = "" },
			wantKey: "start_date",
		},
		{
			name:    "malformed end date",
			mutate:  func(r *GenerateScheduleRequest) { r.EndDate = "09-03-2025" },
			wantKey: "end_date",
		},
		{
			name: "start after end",
			mutate: func(r *GenerateScheduleRequest) {
				r.StartDate = "2025-03-10"
				r.EndDate = "2025-03-03"
			},
			wantKey: "start_date",
		},
		{
			name:    "no coverage requirements",
			mutate:  func(r *GenerateScheduleRequest) { r.CoverageRequirements = nil },
			wantKey: "coverage_requirements",
		},
		{
			name: "unknown shift type",
			mutate: func(r *GenerateScheduleRequest) {
				r.CoverageRequirements[0].ShiftType = "graveyard"
			},
			wantKey: "coverage_requirements[0].shift_type",
		},
		{
			name: "off is not a coverage shift",
			mutate: func(r *GenerateScheduleRequest) {
				r.CoverageRequirements[0].ShiftType = "off"
			},
			wantKey: "coverage_requirements[0].shift_type",
		},
		{
			name: "empty level requirements",
			mutate: func(r *GenerateScheduleRequest) {
				r.CoverageRequirements[0].LevelRequirements = nil
			},
			wantKey: "coverage_requirements[0].level_requirements",
		},
		{
			name: "zero headcount",
			mutate: func(r *GenerateScheduleRequest) {
				r.CoverageRequirements[0].LevelRequirements[0].Count = 0
			},
			wantKey: "coverage_requirements[0].level_requirements[0].count",
		},
		{
			name: "negative level",
			mutate: func(r *GenerateScheduleRequest) {
				r.CoverageRequirements[0].LevelRequirements[0].Level = -1
			},
			wantKey: "coverage_requirements[0].level_requirements[0].level",
		},
		{
			name:    "invalid team id",
			mutate:  func(r *GenerateScheduleRequest) { r.TeamIDs = []string{"not-a-uuid"} },
			wantKey: "team_ids[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validGenerateRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantKey)
		})
	}
}

func TestGenerateScheduleRequest_OptionsDefaults(t *testing.T) {
	t.Parallel()

	req := validGenerateRequest()

	opts := req.Options()
	assert.True(t, opts.EnforceFairness)
	assert.False(t, opts.EnforceMentorshipPairing)
	assert.False(t, opts.PrioritizePreferences)
}

func TestGenerateScheduleRequest_OptionsOverrides(t *testing.T) {
	t.Parallel()

	off := false
	req := validGenerateRequest()
	req.GenerationOptions = &GenerationOptionsDTO{
		EnforceFairness:          &off,
		EnforceMentorshipPairing: true,
	}

	opts := req.Options()
	assert.False(t, opts.EnforceFairness)
	assert.True(t, opts.EnforceMentorshipPairing)
}

func TestAssignmentFilter_Validate(t *testing.T) {
	t.Parallel()

	valid := AssignmentFilter{StartDate: "2025-03-03", EndDate: "2025-03-09"}
	assert.NoError(t, valid.Validate())

	missing := AssignmentFilter{}
	err := missing.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)

	inverted := AssignmentFilter{StartDate: "2025-03-09", EndDate: "2025-03-03"}
	assert.Error(t, inverted.Validate())
}

func TestDateKey(t *testing.T) {
	t.Parallel()

	key := DateKey(ShiftStart(mustDate(t, "2025-03-03"), ShiftDay))
	assert.Equal(t, "2025-03-03", key)
}

func TestShiftClock(t *testing.T) {
	t.Parallel()

	d := mustDate(t, "2025-03-03")

	assert.Equal(t, 7, ShiftStart(d, ShiftDay).Hour())
	assert.Equal(t, 15, ShiftStart(d, ShiftEvening).Hour())
	assert.Equal(t, 23, ShiftStart(d, ShiftNight).Hour())

	// The night shift runs across midnight and ends the following morning.
	nightEnd := ShiftEnd(d, ShiftNight)
	assert.Equal(t, 7, nightEnd.Hour())
	assert.Equal(t, 4, nightEnd.Day())
}

func TestShiftTypeIsWorking(t *testing.T) {
	t.Parallel()

	assert.True(t, ShiftDay.IsWorking())
	assert.True(t, ShiftEvening.IsWorking())
	assert.True(t, ShiftNight.IsWorking())
	assert.False(t, ShiftOff.IsWorking())
	assert.False(t, ShiftType("").IsWorking())
}
