package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codedex_backend/internal/config"
	"codedex_backend/internal/middleware"
	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Logout, Session, and the UpdateProfile guards never touch the database, so
// they can be exercised against a router with nil repositories.
func authTestRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour

	ctrl := NewAuthController(
		service.NewAuthService(nil, cfg),
		service.NewUserService(nil, nil, cfg),
		false,
	)

	router := gin.New()
	router.POST("/api/logout", ctrl.Logout)
	router.GET("/api/auth/session", ctrl.Session)
	router.POST("/api/user/update-profile", middleware.AuthMiddleware(cfg), ctrl.UpdateProfile)
	return router
}

func sessionToken(t *testing.T, userID string) string {
	t.Helper()
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: userID},
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     model.RoleUser,
	}
	token, err := util.GenerateSessionToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestSessionReturnsIdentity(t *testing.T) {
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: sessionToken(t, "user-1")})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestSessionWithoutCookie(t *testing.T) {
	router := authTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	router := authTestRouter()

	user := &model.User{UUIDBase: model.UUIDBase{ID: "user-1"}, Email: "ada@example.com", Role: model.RoleUser}
	expired, err := util.GenerateSessionToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: expired})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Logging out clears the cookie, and a browser following the flow has no
// session token left to send, so the next session check is unauthenticated.
func TestLogoutThenSessionCheckUnauthenticated(t *testing.T) {
	router := authTestRouter()
	token := sessionToken(t, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, util.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func postUpdateProfile(t *testing.T, router *gin.Engine, sessionUserID string, body UpdateProfileRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/update-profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if sessionUserID != "" {
		req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: sessionToken(t, sessionUserID)})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	router := authTestRouter()

	w := postUpdateProfile(t, router, "", UpdateProfileRequest{UserID: "user-1", Name: "Grace"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileRejectsOtherUser(t *testing.T) {
	router := authTestRouter()

	w := postUpdateProfile(t, router, "user-1", UpdateProfileRequest{UserID: "user-2", Name: "Grace"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	router := authTestRouter()

	w := postUpdateProfile(t, router, "user-1", UpdateProfileRequest{UserID: "user-1", Name: "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileRejectsOverlongName(t *testing.T) {
	router := authTestRouter()

	w := postUpdateProfile(t, router, "user-1", UpdateProfileRequest{
		UserID: "user-1",
		Name:   strings.Repeat("a", 51),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
