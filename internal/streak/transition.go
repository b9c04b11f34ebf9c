package streak

import (
	"sort"
	"time"

	"github.com/avdeenkov/linguatrack/internal/dateutil"
)

// Apply advances the streak for qualifying activity on day and reports
// whether the state changed. The transition only ever moves forward:
// same-day repeats and out-of-order backfill dates leave the state as-is,
// and a missed day is not noticed until the next activity arrives.
func Apply(s *Streak, day time.Time) bool {
	day = dateutil.DayOf(day)

	if s.LastDay == nil {
		s.CurrentLen = 1
		s.LastDay = &day
		if s.LongestLen < 1 {
			s.LongestLen = 1
		}
		return true
	}

	switch gap := dateutil.DaysBetween(*s.LastDay, day); {
	case gap <= 0:
		// Already counted, or a backfill for an earlier day. History
		// repair goes through Recalculate, not through here.
		return false
	case gap == 1:
		s.CurrentLen++
	default:
		s.CurrentLen = 1
	}
	s.LastDay = &day
	if s.CurrentLen > s.LongestLen {
		s.LongestLen = s.CurrentLen
	}
	return true
}

// Classify derives the read-only status descriptor. It never mutates the
// streak: a broken streak stays at its stored length until the next
// activity restarts it.
func Classify(s *Streak, today time.Time, hasActivityToday bool) Status {
	status := Status{
		LearnerID:     s.LearnerID,
		CurrentLength: s.CurrentLen,
		LongestLength: s.LongestLen,
		LastActiveDay: s.LastDay,
	}

	if s.LastDay == nil {
		if hasActivityToday {
			status.State = StateActive
		} else {
			status.State = StateInactive
		}
		return status
	}

	daysSince := dateutil.DaysBetween(*s.LastDay, today)
	status.DaysSinceLast = &daysSince
	switch {
	case hasActivityToday || daysSince == 0:
		status.State = StateActive
	case daysSince == 1:
		status.State = StateAtRisk
	default:
		status.State = StateBroken
	}
	return status
}

// Recompute derives streak lengths from the full set of qualifying
// activity dates. The longest run of consecutive days gives the longest
// length; the run ending at the most recent date gives the current
// length. Duplicate dates and arbitrary order are tolerated.
func Recompute(activeDates []time.Time) (current, longest int, lastDay *time.Time) {
	if len(activeDates) == 0 {
		return 0, 0, nil
	}

	seen := make(map[time.Time]struct{}, len(activeDates))
	days := make([]time.Time, 0, len(activeDates))
	for _, date := range activeDates {
		day := dateutil.DayOf(date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if dateutil.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	return run, longest, &last
}
