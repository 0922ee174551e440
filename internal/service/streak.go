package service

import (
	"time"

	"evermore/couple-app/internal/domain"
)

// nextStreak computes the new streak count and last-activity date after a
// completion on the calendar date today.
//
// Only the daily ritual feeds the streak; other activity types leave both
// values untouched. Completing on the day after the previous completion
// extends the streak, completing again on the same day is idempotent, and
// any other gap (including a clock moving backwards) resets the streak to 1.
func nextStreak(streak int, lastActivityDate *string, today time.Time, activityType domain.ActivityType) (int, *string) {
	if activityType != domain.ActivityDailyRitual {
		return streak, lastActivityDate
	}

	todayStr := today.Format(domain.DateLayout)

	if lastActivityDate == nil {
		return 1, &todayStr
	}

	last, err := time.Parse(domain.DateLayout, *lastActivityDate)
	if err != nil {
		// Unparseable stored date; treat as a fresh start.
		return 1, &todayStr
	}

	switch {
	case sameDate(today, last.AddDate(0, 0, 1)):
		return streak + 1, &todayStr
	case sameDate(today, last):
		return streak, &todayStr
	default:
		return 1, &todayStr
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
