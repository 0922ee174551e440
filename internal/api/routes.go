package api

import (
	"net/http"

	"evermore/couple-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the Evermore API route table onto the gin engine.
// All application routes live under the /api prefix.
func SetupRoutes(
	router *gin.Engine,
	coupleService service.CoupleService,
	calendarService service.CalendarService,
	accountService service.AccountService,
) {
	coupleHandler := NewCoupleHandler(coupleService)
	calendarHandler := NewCalendarHandler(calendarService)
	accountHandler := NewAccountHandler(accountService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Evermore API - Nurturing Love Through Action"})
		})

		apiGroup.POST("/couples", accountHandler.CreateAccount)

		coupleData := apiGroup.Group("/couple-data/:coupleId")
		{
			coupleData.GET("", coupleHandler.GetCoupleData)
			coupleData.POST("/complete-activity", coupleHandler.CompleteActivity)
			coupleData.GET("/calendar/:year/:month", calendarHandler.GetMonth)
			coupleData.GET("/calendar/:year/:month/:day", calendarHandler.GetDay)
		}
	}
}
