// Package session keeps the authenticated username in a per-client session
// record. Nothing about the login state lives in process memory.
package session

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/config"
	"github.com/yukikurage/campus-wellness-api/internal/constants"
)

// NewStore builds the session store selected by SESSION_STORE.
func NewStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	switch cfg.SessionStore {
	case "cookie", "":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	case "redis":
		s, err := redisStore.NewStore(
			10,    // Redis pool size
			"tcp", // network type
			cfg.RedisHost+":"+cfg.RedisPort,
			"", // username (empty for default user)
			"", // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = s
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// Middleware attaches the session record to each request.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(constants.SessionCookieName, store)
}

// Username returns the logged-in username, if any.
func Username(c *gin.Context) (string, bool) {
	v, ok := sessions.Default(c).Get(constants.SessionKeyUsername).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Login marks the session as authenticated for username.
func Login(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(constants.SessionKeyUsername, username)
	return s.Save()
}

// Logout clears the session.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}
