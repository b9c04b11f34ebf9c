package streak

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(d int) *time.Time {
	t := day(d)
	return &t
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name        string
		before      Streak
		activityDay time.Time
		expected    Streak
		changed     bool
	}{
		{
			name:        "first ever activity",
			before:      Streak{},
			activityDay: day(10),
			expected:    Streak{CurrentLen: 1, LongestLen: 1, LastDay: dayPtr(10)},
			changed:     true,
		},
		{
			name:        "same day is a no-op",
			before:      Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
			activityDay: day(10),
			expected:    Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
		},
		{
			name:        "next day extends the run",
			before:      Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
			activityDay: day(11),
			expected:    Streak{CurrentLen: 4, LongestLen: 5, LastDay: dayPtr(11)},
			changed:     true,
		},
		{
			name:        "extending past the record raises it",
			before:      Streak{CurrentLen: 5, LongestLen: 5, LastDay: dayPtr(10)},
			activityDay: day(11),
			expected:    Streak{CurrentLen: 6, LongestLen: 6, LastDay: dayPtr(11)},
			changed:     true,
		},
		{
			name:        "earlier day is ignored",
			before:      Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
			activityDay: day(8),
			expected:    Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
		},
		{
			name:        "gap restarts the run",
			before:      Streak{CurrentLen: 3, LongestLen: 5, LastDay: dayPtr(10)},
			activityDay: day(13),
			expected:    Streak{CurrentLen: 1, LongestLen: 5, LastDay: dayPtr(13)},
			changed:     true,
		},
		{
			name:        "intraday timestamp is truncated",
			before:      Streak{CurrentLen: 1, LongestLen: 1, LastDay: dayPtr(10)},
			activityDay: time.Date(2026, time.March, 11, 23, 45, 0, 0, time.UTC),
			expected:    Streak{CurrentLen: 2, LongestLen: 2, LastDay: dayPtr(11)},
			changed:     true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.before
			changed := Apply(&s, tc.activityDay)
			assert.Equal(t, tc.changed, changed)
			assert.Equal(t, tc.expected, s)
			assert.GreaterOrEqual(t, s.LongestLen, s.CurrentLen)
		})
	}
}

func TestClassify(t *testing.T) {
	learnerID := uuid.New()
	today := day(10)

	testCases := []struct {
		name             string
		streak           Streak
		hasActivityToday bool
		expectedState    State
		expectedDays     *int
	}{
		{
			name:          "never active",
			streak:        Streak{LearnerID: learnerID},
			expectedState: StateInactive,
		},
		{
			name:             "no record yet but active today",
			streak:           Streak{LearnerID: learnerID},
			hasActivityToday: true,
			expectedState:    StateActive,
		},
		{
			name:          "counted today",
			streak:        Streak{LearnerID: learnerID, CurrentLen: 4, LongestLen: 4, LastDay: dayPtr(10)},
			expectedState: StateActive,
			expectedDays:  intPtr(0),
		},
		{
			name:          "yesterday only",
			streak:        Streak{LearnerID: learnerID, CurrentLen: 4, LongestLen: 4, LastDay: dayPtr(9)},
			expectedState: StateAtRisk,
			expectedDays:  intPtr(1),
		},
		{
			name:             "yesterday counted and active today",
			streak:           Streak{LearnerID: learnerID, CurrentLen: 4, LongestLen: 4, LastDay: dayPtr(9)},
			hasActivityToday: true,
			expectedState:    StateActive,
			expectedDays:     intPtr(1),
		},
		{
			name:          "gone for three days",
			streak:        Streak{LearnerID: learnerID, CurrentLen: 4, LongestLen: 4, LastDay: dayPtr(7)},
			expectedState: StateBroken,
			expectedDays:  intPtr(3),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status := Classify(&tc.streak, today, tc.hasActivityToday)
			assert.Equal(t, tc.expectedState, status.State)
			assert.Equal(t, tc.expectedDays, status.DaysSinceLast)
			assert.Equal(t, tc.streak.CurrentLen, status.CurrentLength)
			assert.Equal(t, tc.streak.LongestLen, status.LongestLength)
		})
	}
}

func intPtr(v int) *int {
	return &v
}

func TestRecompute(t *testing.T) {
	testCases := []struct {
		name            string
		dates           []time.Time
		expectedCurrent int
		expectedLongest int
		expectedLast    *time.Time
	}{
		{
			name: "no history",
		},
		{
			name:            "single day",
			dates:           []time.Time{day(10)},
			expectedCurrent: 1,
			expectedLongest: 1,
			expectedLast:    dayPtr(10),
		},
		{
			name:            "long run then a lone trailing day",
			dates:           []time.Time{day(1), day(2), day(3), day(10)},
			expectedCurrent: 1,
			expectedLongest: 3,
			expectedLast:    dayPtr(10),
		},
		{
			name:            "trailing run is the longest",
			dates:           []time.Time{day(1), day(5), day(6), day(7), day(8)},
			expectedCurrent: 4,
			expectedLongest: 4,
			expectedLast:    dayPtr(8),
		},
		{
			name:            "unsorted with duplicates",
			dates:           []time.Time{day(7), day(5), day(6), day(6), day(1)},
			expectedCurrent: 3,
			expectedLongest: 3,
			expectedLast:    dayPtr(7),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			current, longest, last := Recompute(tc.dates)
			assert.Equal(t, tc.expectedCurrent, current)
			assert.Equal(t, tc.expectedLongest, longest)
			if tc.expectedLast == nil {
				assert.Nil(t, last)
			} else {
				require.NotNil(t, last)
				assert.Equal(t, *tc.expectedLast, *last)
			}
		})
	}
}
