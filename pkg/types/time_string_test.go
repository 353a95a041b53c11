package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    TimeString
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:30", expected: 570},
		{name: "evening", input: "19:00", expected: 1140},
		{name: "postgres time with seconds", input: "14:30:00", expected: 870},
		{name: "no separator", input: "0930", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage hours", input: "ab:30", wantErr: true},
		{name: "garbage minutes", input: "09:xx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.ToMinutes()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("09:05"), NewTimeStringFromMinutes(545))
	assert.Equal(t, TimeString("23:59"), NewTimeStringFromMinutes(1439))
}

func TestRoundTrip(t *testing.T) {
	// Минуты -> строка -> минуты без потерь
	for _, minutes := range []int{0, 1, 59, 60, 570, 825, 1439} {
		ts := NewTimeStringFromMinutes(minutes)
		got, err := ts.ToMinutes()
		require.NoError(t, err)
		assert.Equal(t, minutes, got)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, TimeString("09:26"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:15")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = NewTimeStringFromString("not-a-time")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), ts)

	_, err = TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:00"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}
