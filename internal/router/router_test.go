package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
	"github.com/yukikurage/campus-wellness-api/internal/handlers"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// client replays the session cookie like a browser would.
type client struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return w
}

func setupEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitMetrics()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.MoodEntry{}, &models.ProductivityEntry{}))

	clock := func() time.Time { return time.Date(2026, time.October, 15, 12, 0, 0, 0, time.Local) }
	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	productivityRepo := repository.NewProductivityRepository(db)

	engine := New(Options{
		SessionStore: cookie.NewStore([]byte("test-secret")),
		DB:           db,
	}, Handlers{
		Auth:         handlers.NewAuthHandler(services.NewAuthService(userRepo)),
		Mood:         handlers.NewMoodHandler(services.NewMoodService(moodRepo, clock)),
		Productivity: handlers.NewProductivityHandler(services.NewProductivityService(productivityRepo, clock)),
		Overview: handlers.NewOverviewHandler(
			services.NewDashboardService(moodRepo, productivityRepo),
			services.NewCalendarService(moodRepo, clock),
			services.NewSupportService(moodRepo, nil),
		),
	})
	return engine, db
}

func newClient(t *testing.T, engine *gin.Engine) *client {
	return &client{t: t, engine: engine, cookies: map[string]*http.Cookie{}}
}

func TestHealthAndMetrics(t *testing.T) {
	engine, _ := setupEngine(t)
	c := newClient(t, engine)

	w := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)

	w = c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wellness_http_requests_total")
}

func TestMainScreensRequireLogin(t *testing.T) {
	engine, _ := setupEngine(t)
	c := newClient(t, engine)

	for _, path := range []string{"/api/screens", "/api/dashboard", "/api/moods", "/api/calendar", "/api/productivity", "/api/support"} {
		w := c.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)

		var resp struct {
			Code    string `json:"code"`
			Details struct {
				Redirect string `json:"redirect"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), path)
		assert.Equal(t, "UNAUTHORIZED", resp.Code, path)
		assert.Equal(t, "/api/auth/login", resp.Details.Redirect, path)
	}
}

func TestJournalFlow(t *testing.T) {
	engine, _ := setupEngine(t)
	c := newClient(t, engine)
	creds := map[string]string{"username": "alice", "password": "pass123"}

	w := c.do(http.MethodPost, "/api/auth/signup", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPost, "/api/auth/signup", creds)
	require.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "alice", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, c.cookies)

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	var dash dto.DashboardDTO
	w = c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, "No logs yet", dash.LatestMood.Value)
	assert.Equal(t, "-", dash.AverageIntensity.Value)
	assert.Equal(t, "No logs", dash.LatestStudyHours.Value)

	for _, entry := range []map[string]interface{}{
		{"mood": "Happy", "intensity": 7, "trigger": "Friends"},
		{"mood": "Sad", "intensity": 3, "trigger": "Exams", "note": "tough quiz"},
	} {
		w = c.do(http.MethodPost, "/api/moods", entry)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = c.do(http.MethodPost, "/api/productivity", map[string]interface{}{"study_hours": 4, "energy_level": 6})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, "5.0", dash.AverageIntensity.Value)
	assert.Equal(t, "4", dash.LatestStudyHours.Value)

	var cal dto.CalendarDTO
	w = c.do(http.MethodGet, "/api/calendar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cal))
	assert.Equal(t, "October 2026", cal.Title)
	assert.False(t, cal.Empty)

	// Latest entry of the day wins
	for _, week := range cal.Weeks {
		for _, day := range week {
			if day.Day == 15 {
				assert.Equal(t, models.MoodSad.Marker(), day.Marker)
			}
		}
	}

	w = c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/api/auth/login")
}

func TestSessionsAreIsolatedPerClient(t *testing.T) {
	engine, _ := setupEngine(t)
	alice := newClient(t, engine)
	bob := newClient(t, engine)

	for _, cl := range []struct {
		c    *client
		name string
	}{{alice, "alice"}, {bob, "bob"}} {
		creds := map[string]string{"username": cl.name, "password": "pw"}
		require.Equal(t, http.StatusCreated, cl.c.do(http.MethodPost, "/api/auth/signup", creds).Code)
		require.Equal(t, http.StatusOK, cl.c.do(http.MethodPost, "/api/auth/login", creds).Code)
	}

	w := alice.do(http.MethodPost, "/api/moods", map[string]interface{}{"mood": "Calm", "intensity": 5, "trigger": "Family"})
	require.Equal(t, http.StatusCreated, w.Code)

	var moods dto.MoodListResponse
	w = bob.do(http.MethodGet, "/api/moods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moods))
	assert.Empty(t, moods.Entries)

	w = alice.do(http.MethodGet, "/api/auth/me", nil)
	assert.Contains(t, w.Body.String(), "alice")
	w = bob.do(http.MethodGet, "/api/auth/me", nil)
	assert.Contains(t, w.Body.String(), "bob")
}
