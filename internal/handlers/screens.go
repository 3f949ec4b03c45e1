package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
)

// Screen keys used for client-side navigation.
const (
	ScreenLogin        = "login"
	ScreenDashboard    = "dashboard"
	ScreenLogMood      = "log_mood"
	ScreenCalendar     = "mood_calendar"
	ScreenProductivity = "study_productivity"
	ScreenSupport      = "support_hub"
)

var mainScreens = []dto.ScreenDTO{
	{Key: ScreenDashboard, Title: "Dashboard", Path: "/api/dashboard", Method: http.MethodGet},
	{Key: ScreenLogMood, Title: "Log Mood", Path: "/api/moods", Method: http.MethodPost},
	{Key: ScreenCalendar, Title: "Mood Calendar", Path: "/api/calendar", Method: http.MethodGet},
	{Key: ScreenProductivity, Title: "Study & Productivity", Path: "/api/productivity", Method: http.MethodPost},
	{Key: ScreenSupport, Title: "Support Hub", Path: "/api/support", Method: http.MethodGet},
}

// ListScreens returns the main navigation, Dashboard first.
func ListScreens(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    username,
		"screens": mainScreens,
		"logout":  gin.H{"path": "/api/auth/logout", "method": http.MethodPost},
	})
}
