package patternrisk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

func TestBuildSequence(t *testing.T) {
	t.Parallel()

	shifts := map[string]roster.ShiftType{
		"2025-03-03": roster.ShiftDay,
		"2025-03-05": roster.ShiftNight,
	}
	onLeave := map[string]bool{"2025-03-04": true}

	days := buildSequence(day("2025-03-03"), day("2025-03-06"), shifts, onLeave)

	require.Len(t, days, 4)

	assert.Equal(t, roster.ShiftDay, days[0].Shift)
	assert.False(t, days[0].OnLeave)

	// Unassigned days are filled with off.
	assert.Equal(t, roster.ShiftOff, days[1].Shift)
	assert.True(t, days[1].OnLeave)

	assert.Equal(t, roster.ShiftNight, days[2].Shift)
	assert.Equal(t, roster.ShiftOff, days[3].Shift)
	assert.Equal(t, day("2025-03-06"), days[3].Date)
}

func TestBuildSequence_NoStoredShifts(t *testing.T) {
	t.Parallel()

	days := buildSequence(day("2025-03-03"), day("2025-03-05"), nil, nil)

	require.Len(t, days, 3)
	for _, d := range days {
		assert.Equal(t, roster.ShiftOff, d.Shift)
		assert.False(t, d.Working())
	}
}

func TestBuildSequence_LeaveMasksAssignedShift(t *testing.T) {
	t.Parallel()

	shifts := map[string]roster.ShiftType{"2025-03-03": roster.ShiftNight}
	onLeave := map[string]bool{"2025-03-03": true}

	days := buildSequence(day("2025-03-03"), day("2025-03-03"), shifts, onLeave)

	require.Len(t, days, 1)
	assert.False(t, days[0].Working())
	assert.Equal(t, roster.ShiftOff, days[0].EffectiveShift())
}
