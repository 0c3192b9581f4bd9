package localtime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name      string
		ts        string
		wantDate  string
		wantClock string
		wantErr   bool
	}{
		{
			name:      "morning with T separator",
			ts:        "2025-06-27T09:00:00",
			wantDate:  "27/06/2025",
			wantClock: "9:00 AM",
		},
		{
			name:      "space separator as written by Compose",
			ts:        "2025-06-27 09:00:00",
			wantDate:  "27/06/2025",
			wantClock: "9:00 AM",
		},
		{
			name:      "midnight becomes 12 AM",
			ts:        "2025-01-05T00:15:00",
			wantDate:  "05/01/2025",
			wantClock: "12:15 AM",
		},
		{
			name:      "noon becomes 12 PM",
			ts:        "2025-01-05T12:30:00",
			wantDate:  "05/01/2025",
			wantClock: "12:30 PM",
		},
		{
			name:      "13 becomes 1 PM",
			ts:        "2025-01-05T13:05:00",
			wantDate:  "05/01/2025",
			wantClock: "1:05 PM",
		},
		{
			name:      "late evening",
			ts:        "2025-12-31T23:59:00",
			wantDate:  "31/12/2025",
			wantClock: "11:59 PM",
		},
		{
			name:    "missing separator",
			ts:      "2025-06-27",
			wantErr: true,
		},
		{
			name:    "non numeric hour",
			ts:      "2025-06-27Txx:00:00",
			wantErr: true,
		},
		{
			name:    "empty string",
			ts:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock, err := Decompose(tt.ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantClock, clock)
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    string
		wantErr bool
	}{
		{
			name:  "12-hour morning",
			date:  "2025-06-27",
			clock: "9:00 AM",
			want:  "2025-06-27 09:00:00",
		},
		{
			name:  "12 AM maps to hour zero",
			date:  "2025-06-27",
			clock: "12:00 AM",
			want:  "2025-06-27 00:00:00",
		},
		{
			name:  "12 PM stays twelve",
			date:  "2025-06-27",
			clock: "12:45 PM",
			want:  "2025-06-27 12:45:00",
		},
		{
			name:  "other PM hours add twelve",
			date:  "2025-06-27",
			clock: "3:05 PM",
			want:  "2025-06-27 15:05:00",
		},
		{
			name:  "bare 24-hour fallback",
			date:  "2025-06-27",
			clock: "21:30",
			want:  "2025-06-27 21:30:00",
		},
		{
			name:  "lowercase suffix and single-digit date parts padded",
			date:  "2025-3-1",
			clock: "7:05 pm",
			want:  "2025-03-01 19:05:00",
		},
		{
			name:    "hour out of range",
			date:    "2025-06-27",
			clock:   "25:00",
			wantErr: true,
		},
		{
			name:    "malformed date",
			date:    "June 27",
			clock:   "9:00 AM",
			wantErr: true,
		},
		{
			name:    "malformed time",
			date:    "2025-06-27",
			clock:   "soon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.date, tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Composing a 12-hour time and decomposing the stored string must recover the
// same wall clock for every valid hour and minute.
func TestComposeDecomposeRoundTrip(t *testing.T) {
	for hours := 0; hours < 24; hours++ {
		for _, minutes := range []int{0, 1, 30, 59} {
			hour12 := hours
			switch {
			case hours == 0:
				hour12 = 12
			case hours > 12:
				hour12 = hours - 12
			}
			ampm := "AM"
			if hours >= 12 {
				ampm = "PM"
			}
			clock := fmt.Sprintf("%d:%02d %s", hour12, minutes, ampm)

			stored, err := Compose("2025-06-27", clock)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("2025-06-27 %02d:%02d:00", hours, minutes), stored)

			date, gotClock, err := Decompose(stored)
			require.NoError(t, err)
			assert.Equal(t, "27/06/2025", date)
			assert.Equal(t, clock, gotClock)
		}
	}
}
