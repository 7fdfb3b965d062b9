package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/planora/calendar-backend/internal/calendar"
	"github.com/planora/calendar-backend/internal/event"
	"github.com/planora/calendar-backend/internal/export"
	"github.com/planora/calendar-backend/internal/series"
	"github.com/planora/calendar-backend/middleware"
)

// Register wires repositories, services and handlers and mounts all routes.
func Register(router *gin.Engine, db *gorm.DB) {
	// Init repositories & services
	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	seriesRepo := series.NewRepository(db)
	seriesSvc := series.NewService(seriesRepo)
	seriesHandler := series.NewHandler(seriesSvc)

	// The calendar service consumes the event and series services as plain
	// data sources; every view is recomputed from them per request.
	calendarSvc := calendar.NewService(eventSvc, seriesSvc)
	calendarHandler := calendar.NewHandler(calendarSvc)

	exportSvc := export.NewService(calendarSvc)
	exportHandler := export.NewHandler(exportSvc)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// 📌 One-off events
	events := api.Group("/events")
	{
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEventByID)
		events.PATCH("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
		events.POST("/:id/move", eventHandler.MoveEvent)
	}

	// 📌 Recurring series
	seriesRoutes := api.Group("/series")
	{
		seriesRoutes.POST("", seriesHandler.CreateSeries)
		seriesRoutes.GET("", seriesHandler.ListSeries)
		seriesRoutes.GET("/:id", seriesHandler.GetSeriesByID)
		seriesRoutes.PATCH("/:id", seriesHandler.UpdateSeries)
		seriesRoutes.DELETE("/:id", seriesHandler.DeleteSeries)
	}

	// 📌 Computed calendar views
	calendarRoutes := api.Group("/calendar")
	{
		calendarRoutes.GET("/month", calendarHandler.GetMonthView)
		calendarRoutes.GET("/week", calendarHandler.GetWeekView)
	}

	// 📌 Agenda export
	api.GET("/export/agenda", exportHandler.ExportAgenda)
}
