package service

import (
	"context"
	"errors"
	"time"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCoupleNotFound      = errors.New("couple data not found")
	ErrInvalidActivityType = errors.New("invalid activity type")
)

// CompletionResult is what a successful activity completion reports back.
type CompletionResult struct {
	Progress   domain.Progress
	TreeGrowth float64
	Streak     int
}

// CoupleService orchestrates the progress, streak and history updates that
// happen when a couple completes an activity.
type CoupleService interface {
	GetOrCreate(ctx context.Context, coupleID string) (*domain.CoupleData, error)
	CompleteActivity(ctx context.Context, coupleID string, activityType domain.ActivityType) (*CompletionResult, error)
}

// coupleService implements the CoupleService interface.
type coupleService struct {
	coupleRepo repository.CoupleDataRepository
	locks      *coupleLocker
	now        func() time.Time
}

// NewCoupleService creates a new instance of coupleService.
func NewCoupleService(coupleRepo repository.CoupleDataRepository) CoupleService {
	return &coupleService{
		coupleRepo: coupleRepo,
		locks:      newCoupleLocker(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreate returns the couple's state, lazily creating a zeroed state
// with the default activity catalog on first access. This is the only
// creation path for couple state; write operations never create it.
func (s *coupleService) GetOrCreate(ctx context.Context, coupleID string) (*domain.CoupleData, error) {
	data, err := s.coupleRepo.GetByCoupleID(ctx, coupleID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	daily, weekly, monthly := domain.DefaultActivities()
	data = &domain.CoupleData{
		CoupleID:          coupleID,
		DailyRitual:       daily,
		WeeklyGesture:     weekly,
		MonthlyBigGesture: monthly,
		ActivityHistory:   []domain.ActivityEntry{},
	}

	if err := s.coupleRepo.Create(ctx, data); err != nil {
		// Lost a creation race; the document written by the winner is the
		// state to return.
		if errors.Is(err, repository.ErrDuplicate) {
			return s.coupleRepo.GetByCoupleID(ctx, coupleID)
		}
		return nil, err
	}
	return data, nil
}

// CompleteActivity applies one completion of the given activity type:
// progress and tree growth move by the fixed award table, the streak follows
// the daily-ritual rules, the matching slot is flagged complete, and an
// immutable history entry is appended. The whole new state is written back
// as a single unit.
//
// The load and the store are serialized per couple so two racing completions
// for the same couple cannot overwrite each other.
func (s *coupleService) CompleteActivity(ctx context.Context, coupleID string, activityType domain.ActivityType) (*CompletionResult, error) {
	if !activityType.IsValid() {
		return nil, ErrInvalidActivityType
	}

	lock := s.locks.get(coupleID)
	lock.Lock()
	defer lock.Unlock()

	data, err := s.coupleRepo.GetByCoupleID(ctx, coupleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, err
	}

	now := s.now()

	newProgress, newTreeGrowth, err := applyProgress(data.Progress, data.TreeGrowth, activityType)
	if err != nil {
		return nil, err
	}

	newStreak, newLastDate := nextStreak(data.Streak, data.LastActivityDate, now, activityType)

	slot := data.Slot(activityType)
	slot.Completed = true
	completedAt := now
	slot.CompletedAt = &completedAt

	data.Progress = newProgress
	data.TreeGrowth = newTreeGrowth
	data.Streak = newStreak
	data.LastActivityDate = newLastDate
	data.ActivityHistory = append(data.ActivityHistory, domain.ActivityEntry{
		ActivityType:  activityType,
		ActivityTitle: slot.Title,
		CompletedDate: now.Format(domain.DateLayout),
		CompletedAt:   now,
	})
	data.UpdatedAt = now

	if err := s.coupleRepo.Update(ctx, data); err != nil {
		return nil, err
	}

	return &CompletionResult{
		Progress:   newProgress,
		TreeGrowth: newTreeGrowth,
		Streak:     newStreak,
	}, nil
}
