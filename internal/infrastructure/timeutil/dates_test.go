package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", input: "2025-01-04", want: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "not a leap year", input: "2025-02-29", wantErr: true},
		{name: "not zero padded", input: "2025-1-4", wantErr: true},
		{name: "timestamp", input: "2025-01-04T10:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDate_UsesOwnLocation(t *testing.T) {
	loc := time.FixedZone("MST", -7*3600)
	assert.Equal(t, "2024-12-31", FormatDate(time.Date(2024, 12, 31, 23, 0, 0, 0, loc)))
}

func TestToday(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 6, 1, 23, 30, 0, 0, time.FixedZone("EDT", -4*3600)))
	assert.Equal(t, "2025-06-02", Today(clock))
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got)

	got, err = AddDays("2024-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	_, err = AddDays("bad", 1)
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2024-12-26", "2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = DaysBetween("2025-01-05", "2024-12-26")
	require.NoError(t, err)
	assert.Equal(t, -10, n)

	_, err = DaysBetween("2025-01-05", "tomorrow")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	dates, err := DateRange("2024-12-30", "2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, dates)

	dates, err = DateRange("2025-01-02", "2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-02"}, dates)

	dates, err = DateRange("2025-01-03", "2025-01-02")
	require.NoError(t, err)
	assert.Empty(t, dates)
}
