package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/services"
)

// OverviewHandler serves the read-only screens: Dashboard, Mood Calendar and Support Hub.
type OverviewHandler struct {
	dashboardService *services.DashboardService
	calendarService  *services.CalendarService
	supportService   *services.SupportService
}

func NewOverviewHandler(dashboardService *services.DashboardService, calendarService *services.CalendarService, supportService *services.SupportService) *OverviewHandler {
	return &OverviewHandler{
		dashboardService: dashboardService,
		calendarService:  calendarService,
		supportService:   supportService,
	}
}

// Dashboard returns latest mood, average intensity and latest study hours.
func (h *OverviewHandler) Dashboard(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), username)
	if err != nil {
		respondInternal(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardDTO(*summary))
}

// Calendar returns the mood calendar for the current month, or for
// ?year=&month= when both are given.
func (h *OverviewHandler) Calendar(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	var (
		cal *services.MoodCalendar
		err error
	)

	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		cal, err = h.calendarService.CurrentMonth(c.Request.Context(), username)
	} else {
		year, yErr := strconv.Atoi(yearStr)
		month, mErr := strconv.Atoi(monthStr)
		if yErr != nil || mErr != nil || year < 1 || year > 9999 {
			apierrors.BadRequest(c, "year and month must both be numbers")
			return
		}
		cal, err = h.calendarService.Month(c.Request.Context(), username, year, time.Month(month))
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		respondInternal(c, err, "Failed to load calendar")
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarDTO(*cal))
}

// Support returns the static Support Hub content.
func (h *OverviewHandler) Support(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSupportDTO(h.supportService.Content()))
}

// Reflect returns a generated supportive message about the latest mood.
func (h *OverviewHandler) Reflect(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	msg, err := h.supportService.Reflect(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIServiceNotConfigured):
			apierrors.ServiceUnavailable(c, "AI service is not configured. Please set OPENAI_API_KEY environment variable.")
		case errors.Is(err, services.ErrNoMoodEntries):
			apierrors.NotFound(c, "Log a mood first to get a reflection")
		default:
			respondInternal(c, err, "Failed to generate reflection")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
	})
}
