package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codedex_backend/internal/config"
	"codedex_backend/internal/model"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-0123456789"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func signedToken(t *testing.T, role model.UserRole, expiration time.Duration) string {
	t.Helper()
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: "user-1"},
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     role,
	}
	token, err := util.GenerateSessionToken(user, testSecret, expiration)
	require.NoError(t, err)
	return token
}

func authedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	router := authedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidCookie(t *testing.T) {
	router := authedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleUser, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	router := authedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, model.RoleUser, time.Hour))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := authedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleUser, -time.Minute)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestTryAuthMiddlewarePassesWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", TryAuthMiddleware(testConfig()), func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": nil})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "null")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleUser, time.Hour)})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

type fakeRoleChecker struct {
	role model.UserRole
	err  error
}

func (f *fakeRoleChecker) GetRole(userID string) (model.UserRole, error) {
	return f.role, f.err
}

func adminRouter(cfg *config.Config, checker RoleChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin",
		AuthMiddleware(cfg),
		RoleMiddleware(checker, cfg, model.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRoleMiddlewareRejectsNonAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RecheckAdminRole = true
	router := adminRouter(cfg, &fakeRoleChecker{role: model.RoleUser})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleUser, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RecheckAdminRole = true
	router := adminRouter(cfg, &fakeRoleChecker{role: model.RoleAdmin})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleAdmin, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// A demoted admin still holds a cookie claiming ADMIN; the store recheck has to
// catch that.
func TestRoleMiddlewareRecheckCatchesDemotion(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RecheckAdminRole = true
	router := adminRouter(cfg, &fakeRoleChecker{role: model.RoleUser})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleAdmin, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareRecheckDisabledTrustsToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RecheckAdminRole = false
	router := adminRouter(cfg, &fakeRoleChecker{role: model.RoleUser})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: signedToken(t, model.RoleAdmin, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// Rotating the signing secret through a config reload must invalidate every
// outstanding session token.
func TestAuthMiddlewareSecretRotationRevokesSessions(t *testing.T) {
	cfg := testConfig()
	router := authedRouter(cfg)

	token := signedToken(t, model.RoleUser, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	rotated := &config.Config{}
	rotated.JWT.Secret = "rotated-secret-after-reload-01234"
	rotated.JWT.ExpireTime = time.Hour
	cfg.ApplyReloadable(rotated)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
