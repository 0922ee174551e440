package service

import "evermore/couple-app/internal/domain"

// progressIncrement is the fixed point award applied to each bond dimension
// for one completion of an activity type.
type progressIncrement struct {
	Communication float64
	Intimacy      float64
	Trust         float64
	TreeGrowth    float64
}

// Fixed award table. Initialized once, read-only afterwards.
var progressIncrements = map[domain.ActivityType]progressIncrement{
	domain.ActivityDailyRitual:       {Communication: 0.5, Intimacy: 0.3, Trust: 0.2, TreeGrowth: 3},
	domain.ActivityWeeklyGesture:     {Communication: 1.0, Intimacy: 1.5, Trust: 1.0, TreeGrowth: 8},
	domain.ActivityMonthlyBigGesture: {Communication: 2.0, Intimacy: 3.0, Trust: 2.5, TreeGrowth: 15},
}

const progressCap = 100

// applyProgress returns the new progress and tree growth after one completion
// of the given activity type. Every dimension is capped at 100; increments
// are positive so no floor is needed.
func applyProgress(current domain.Progress, treeGrowth float64, activityType domain.ActivityType) (domain.Progress, float64, error) {
	inc, ok := progressIncrements[activityType]
	if !ok {
		return current, treeGrowth, ErrInvalidActivityType
	}

	next := domain.Progress{
		Communication: capAt(current.Communication+inc.Communication, progressCap),
		Intimacy:      capAt(current.Intimacy+inc.Intimacy, progressCap),
		Trust:         capAt(current.Trust+inc.Trust, progressCap),
	}
	return next, capAt(treeGrowth+inc.TreeGrowth, progressCap), nil
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
