package api

import (
	"errors"
	"net/http"
	"strconv"

	"evermore/couple-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler holds the calendar service dependency.
type CalendarHandler struct {
	calendarService service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// GetMonth returns the activity completions for one month plus the per-day
// density map used by the calendar heatmap.
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	coupleID := c.Param("coupleId")

	year, month, ok := h.intParams(c, "year", "month")
	if !ok {
		return
	}

	summary, err := h.calendarService.MonthSummary(c.Request.Context(), coupleID, year, month)
	if err != nil {
		h.abortCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDay returns all activities completed on a specific day.
func (h *CalendarHandler) GetDay(c *gin.Context) {
	coupleID := c.Param("coupleId")

	year, month, ok := h.intParams(c, "year", "month")
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid day parameter")
		return
	}

	summary, err := h.calendarService.DaySummary(c.Request.Context(), coupleID, year, month, day)
	if err != nil {
		h.abortCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CalendarHandler) intParams(c *gin.Context, yearKey, monthKey string) (year, month int, ok bool) {
	year, err := strconv.Atoi(c.Param(yearKey))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid year parameter")
		return 0, 0, false
	}
	month, err = strconv.Atoi(c.Param(monthKey))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid month parameter")
		return 0, 0, false
	}
	return year, month, true
}

func (h *CalendarHandler) abortCalendarError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCoupleNotFound) {
		abortWithError(c, http.StatusNotFound, err.Error())
	} else if errors.Is(err, service.ErrInvalidDate) {
		abortWithError(c, http.StatusBadRequest, err.Error())
	} else {
		abortWithError(c, http.StatusInternalServerError, "Failed to load calendar data")
	}
}
