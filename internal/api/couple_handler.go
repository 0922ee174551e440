package api

import (
	"errors"
	"fmt"
	"net/http"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CoupleHandler holds the couple service dependency.
type CoupleHandler struct {
	coupleService service.CoupleService
}

// NewCoupleHandler creates a new CoupleHandler.
func NewCoupleHandler(coupleService service.CoupleService) *CoupleHandler {
	return &CoupleHandler{coupleService: coupleService}
}

// --- Request/Response Structs ---

type CompleteActivityRequest struct {
	ActivityType domain.ActivityType `json:"activityType" binding:"required"`
}

// CoupleDataResponse is the read view of a couple's state. The raw history
// is served through the calendar endpoints, not here.
type CoupleDataResponse struct {
	Progress          domain.Progress `json:"progress"`
	TreeGrowth        float64         `json:"treeGrowth"`
	Streak            int             `json:"streak"`
	DailyRitual       domain.Activity `json:"dailyRitual"`
	WeeklyGesture     domain.Activity `json:"weeklyGesture"`
	MonthlyBigGesture domain.Activity `json:"monthlyBigGesture"`
}

type CompleteActivityResponse struct {
	Message     string          `json:"message"`
	NewProgress domain.Progress `json:"newProgress"`
	TreeGrowth  float64         `json:"treeGrowth"`
	Streak      int             `json:"streak"`
}

// --- Handler Methods ---

// GetCoupleData returns the couple's progress, activities and tree growth.
// A couple seen for the first time gets a zeroed state with the default
// activity catalog.
func (h *CoupleHandler) GetCoupleData(c *gin.Context) {
	coupleID := c.Param("coupleId")

	data, err := h.coupleService.GetOrCreate(c.Request.Context(), coupleID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load couple data")
		return
	}

	c.JSON(http.StatusOK, CoupleDataResponse{
		Progress:          data.Progress,
		TreeGrowth:        data.TreeGrowth,
		Streak:            data.Streak,
		DailyRitual:       data.DailyRitual,
		WeeklyGesture:     data.WeeklyGesture,
		MonthlyBigGesture: data.MonthlyBigGesture,
	})
}

// CompleteActivity marks an activity as complete and updates progress,
// streak and history.
func (h *CoupleHandler) CompleteActivity(c *gin.Context) {
	coupleID := c.Param("coupleId")

	var req CompleteActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.coupleService.CompleteActivity(c.Request.Context(), coupleID, req.ActivityType)
	if err != nil {
		if errors.Is(err, service.ErrCoupleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidActivityType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred completing the activity")
		}
		return
	}

	c.JSON(http.StatusOK, CompleteActivityResponse{
		Message:     "Activity completed successfully",
		NewProgress: result.Progress,
		TreeGrowth:  result.TreeGrowth,
		Streak:      result.Streak,
	})
}
