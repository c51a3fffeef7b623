package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name     string
		now      time.Time
		hour     int
		loc      *time.Location
		expected time.Duration
	}{
		{
			name:     "before refresh hour",
			now:      time.Date(2025, 4, 11, 6, 30, 0, 0, tokyo),
			hour:     8,
			loc:      tokyo,
			expected: 90 * time.Minute,
		},
		{
			name:     "after refresh hour rolls to tomorrow",
			now:      time.Date(2025, 4, 11, 9, 0, 0, 0, tokyo),
			hour:     8,
			loc:      tokyo,
			expected: 23 * time.Hour,
		},
		{
			name:     "exactly at refresh hour waits a full day",
			now:      time.Date(2025, 4, 11, 8, 0, 0, 0, tokyo),
			hour:     8,
			loc:      tokyo,
			expected: 24 * time.Hour,
		},
		{
			name:     "now in another zone is converted",
			now:      time.Date(2025, 4, 10, 22, 0, 0, 0, time.UTC), // 07:00 JST
			hour:     8,
			loc:      tokyo,
			expected: time.Hour,
		},
		{
			name:     "nil location uses UTC",
			now:      time.Date(2025, 4, 11, 23, 0, 0, 0, time.UTC),
			hour:     0,
			loc:      nil,
			expected: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TimeUntilNextRefresh(tt.now, tt.hour, tt.loc)
			if got != tt.expected {
				t.Errorf("TimeUntilNextRefresh() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTimeUntilNextRefresh_AlwaysPositive(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		d := TimeUntilNextRefresh(start.Add(time.Duration(i)*30*time.Minute), 8, time.UTC)
		if d <= 0 || d > 24*time.Hour {
			t.Errorf("iteration %d: expected duration in (0, 24h], got %v", i, d)
		}
	}
}
