package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType identifies one of the three recurring activity cadences.
type ActivityType string

const (
	ActivityDailyRitual       ActivityType = "dailyRitual"
	ActivityWeeklyGesture     ActivityType = "weeklyGesture"
	ActivityMonthlyBigGesture ActivityType = "monthlyBigGesture"
)

// IsValid reports whether t is one of the three recognized activity types.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityDailyRitual, ActivityWeeklyGesture, ActivityMonthlyBigGesture:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used for completion dates and
// last-activity tracking (date only, no time component).
const DateLayout = "2006-01-02"

// Progress holds the three bond-score dimensions. Each value stays in [0,100].
type Progress struct {
	Communication float64 `bson:"communication" json:"communication"`
	Intimacy      float64 `bson:"intimacy" json:"intimacy"`
	Trust         float64 `bson:"trust" json:"trust"`
}

// Activity is one cadence slot of a couple (daily ritual, weekly gesture or
// monthly big gesture). The slot is mutated in place on completion, never
// replaced or deleted.
type Activity struct {
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// ActivityEntry is one immutable record in a couple's activity history.
// The title is captured at completion time, not a live reference to the slot.
type ActivityEntry struct {
	ActivityType  ActivityType `bson:"activityType" json:"activityType"`
	ActivityTitle string       `bson:"activityTitle" json:"activityTitle"`
	CompletedDate string       `bson:"completedDate" json:"completedDate"` // DateLayout
	CompletedAt   time.Time    `bson:"completedAt" json:"completedAt"`
}

// CoupleData is the full persisted progress state for one couple.
// activityHistory is append-only; insertion order is chronological order.
type CoupleData struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoupleID          string             `bson:"coupleId" json:"coupleId"` // Unique
	Progress          Progress           `bson:"progress" json:"progress"`
	TreeGrowth        float64            `bson:"treeGrowth" json:"treeGrowth"`
	Streak            int                `bson:"streak" json:"streak"`
	LastActivityDate  *string            `bson:"lastActivityDate,omitempty" json:"lastActivityDate,omitempty"` // DateLayout
	DailyRitual       Activity           `bson:"dailyRitual" json:"dailyRitual"`
	WeeklyGesture     Activity           `bson:"weeklyGesture" json:"weeklyGesture"`
	MonthlyBigGesture Activity           `bson:"monthlyBigGesture" json:"monthlyBigGesture"`
	ActivityHistory   []ActivityEntry    `bson:"activityHistory" json:"activityHistory"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Slot returns a pointer to the activity slot matching the given type,
// or nil for an unrecognized type.
func (d *CoupleData) Slot(t ActivityType) *Activity {
	switch t {
	case ActivityDailyRitual:
		return &d.DailyRitual
	case ActivityWeeklyGesture:
		return &d.WeeklyGesture
	case ActivityMonthlyBigGesture:
		return &d.MonthlyBigGesture
	}
	return nil
}

// DefaultActivities returns the catalog of default activity slots used when
// a couple's state is first created. The catalog is fixed at startup and
// never mutated afterwards, so reads need no synchronization.
func DefaultActivities() (daily, weekly, monthly Activity) {
	daily = Activity{
		Title:       "2-Minute Gratitude Hug",
		Description: "Share a warm, mindful hug while expressing one thing you're grateful for about each other",
	}
	weekly = Activity{
		Title:       "Cook Together",
		Description: "Prepare a meal together, trying a new recipe or recreating a favorite dish",
	}
	monthly = Activity{
		Title:       "Plan Weekend Adventure",
		Description: "Design and plan a special weekend activity that you both will enjoy",
	}
	return daily, weekly, monthly
}
