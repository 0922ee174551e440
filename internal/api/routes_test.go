package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Stub services ---

type stubCoupleService struct {
	data          *domain.CoupleData
	result        *service.CompletionResult
	getErr        error
	completeErr   error
	completedType domain.ActivityType
}

func (s *stubCoupleService) GetOrCreate(_ context.Context, coupleID string) (*domain.CoupleData, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	data := *s.data
	data.CoupleID = coupleID
	return &data, nil
}

func (s *stubCoupleService) CompleteActivity(_ context.Context, _ string, activityType domain.ActivityType) (*service.CompletionResult, error) {
	s.completedType = activityType
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return s.result, nil
}

type stubCalendarService struct {
	month *service.MonthSummary
	day   *service.DaySummary
	err   error
}

func (s *stubCalendarService) MonthSummary(_ context.Context, _ string, _, _ int) (*service.MonthSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.month, nil
}

func (s *stubCalendarService) DaySummary(_ context.Context, _ string, _, _, _ int) (*service.DaySummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.day, nil
}

type stubAccountService struct {
	account *domain.CoupleAccount
	err     error
}

func (s *stubAccountService) Register(_ context.Context, email string, partnerEmail *string, coupleID string) (*domain.CoupleAccount, error) {
	if s.err != nil {
		return nil, s.err
	}
	account := *s.account
	account.Email = email
	account.PartnerEmail = partnerEmail
	if coupleID != "" {
		account.CoupleID = coupleID
	}
	return &account, nil
}

func newTestRouter(couple *stubCoupleService, calendar *stubCalendarService, account *stubAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, couple, calendar, account)
	return router
}

func defaultCoupleStub() *stubCoupleService {
	daily, weekly, monthly := domain.DefaultActivities()
	return &stubCoupleService{
		data: &domain.CoupleData{
			DailyRitual:       daily,
			WeeklyGesture:     weekly,
			MonthlyBigGesture: monthly,
			ActivityHistory:   []domain.ActivityEntry{},
		},
		result: &service.CompletionResult{
			Progress:   domain.Progress{Communication: 0.5, Intimacy: 0.3, Trust: 0.2},
			TreeGrowth: 3,
			Streak:     1,
		},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestGetCoupleDataReturnsFreshState(t *testing.T) {
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CoupleDataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.Progress{}, resp.Progress)
	assert.Equal(t, 0.0, resp.TreeGrowth)
	assert.Equal(t, 0, resp.Streak)
	assert.Equal(t, "2-Minute Gratitude Hug", resp.DailyRitual.Title)
	assert.False(t, resp.DailyRitual.Completed)
}

func TestCompleteActivitySuccess(t *testing.T) {
	couple := defaultCoupleStub()
	router := newTestRouter(couple, &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodPost, "/api/couple-data/demo-1/complete-activity",
		gin.H{"activityType": "dailyRitual"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ActivityDailyRitual, couple.completedType)

	var resp CompleteActivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Activity completed successfully", resp.Message)
	assert.InDelta(t, 0.5, resp.NewProgress.Communication, 1e-9)
	assert.InDelta(t, 3, resp.TreeGrowth, 1e-9)
	assert.Equal(t, 1, resp.Streak)
}

func TestCompleteActivityUnknownCoupleIs404(t *testing.T) {
	couple := defaultCoupleStub()
	couple.completeErr = service.ErrCoupleNotFound
	router := newTestRouter(couple, &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodPost, "/api/couple-data/nope/complete-activity",
		gin.H{"activityType": "dailyRitual"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteActivityInvalidTypeIs400(t *testing.T) {
	couple := defaultCoupleStub()
	couple.completeErr = service.ErrInvalidActivityType
	router := newTestRouter(couple, &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodPost, "/api/couple-data/demo-1/complete-activity",
		gin.H{"activityType": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteActivityMissingBodyIs400(t *testing.T) {
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodPost, "/api/couple-data/demo-1/complete-activity", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCalendarMonth(t *testing.T) {
	calendar := &stubCalendarService{
		month: &service.MonthSummary{
			Year:  2026,
			Month: 9,
			Activities: []domain.ActivityEntry{
				{ActivityType: domain.ActivityDailyRitual, ActivityTitle: "2-Minute Gratitude Hug", CompletedDate: "2026-09-01"},
			},
			ActivityDensity: map[string][]domain.ActivityEntry{
				"2026-09-01": {{ActivityType: domain.ActivityDailyRitual, CompletedDate: "2026-09-01"}},
			},
			TotalActivities: 1,
		},
	}
	router := newTestRouter(defaultCoupleStub(), calendar, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1/calendar/2026/9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.MonthSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 1, resp.TotalActivities)
	assert.Contains(t, resp.ActivityDensity, "2026-09-01")
}

func TestGetCalendarMonthBadParams(t *testing.T) {
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1/calendar/abc/9", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1/calendar/2026/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCalendarMonthUnknownCoupleIs404(t *testing.T) {
	calendar := &stubCalendarService{err: service.ErrCoupleNotFound}
	router := newTestRouter(defaultCoupleStub(), calendar, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/nope/calendar/2026/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCalendarDay(t *testing.T) {
	calendar := &stubCalendarService{
		day: &service.DaySummary{
			Date:          "2026-09-01",
			Activities:    []domain.ActivityEntry{{ActivityType: domain.ActivityDailyRitual, CompletedDate: "2026-09-01"}},
			ActivityCount: 1,
		},
	}
	router := newTestRouter(defaultCoupleStub(), calendar, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1/calendar/2026/9/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.DaySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, 1, resp.ActivityCount)
}

func TestGetCalendarDayInvalidDateIs400(t *testing.T) {
	calendar := &stubCalendarService{err: service.ErrInvalidDate}
	router := newTestRouter(defaultCoupleStub(), calendar, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/api/couple-data/demo-1/calendar/2026/9/32", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAccount(t *testing.T) {
	account := &stubAccountService{
		account: &domain.CoupleAccount{CoupleID: "generated-id"},
	}
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, account)

	rec := doJSON(t, router, http.MethodPost, "/api/couples",
		gin.H{"email": "ana@example.com", "partnerEmail": "ben@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ana@example.com", resp.Email)
	require.NotNil(t, resp.PartnerEmail)
	assert.Equal(t, "ben@example.com", *resp.PartnerEmail)
	assert.Equal(t, "generated-id", resp.CoupleID)
}

func TestCreateAccountDuplicateIs400(t *testing.T) {
	account := &stubAccountService{err: service.ErrEmailTaken}
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, account)

	rec := doJSON(t, router, http.MethodPost, "/api/couples", gin.H{"email": "ana@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAccountInvalidEmailIs400(t *testing.T) {
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodPost, "/api/couples", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRootAndPing(t *testing.T) {
	router := newTestRouter(defaultCoupleStub(), &stubCalendarService{}, &stubAccountService{})

	rec := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Evermore API")
}
