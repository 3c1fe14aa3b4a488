package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"codedex_backend/internal/config"
	"codedex_backend/internal/middleware"
	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"
	"codedex_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "controller-test-secret-0123456789"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type stubExercises struct {
	bySlug map[string]*model.Exercise
}

func (s *stubExercises) FindBySlug(slug string) (*model.Exercise, error) {
	if e, ok := s.bySlug[slug]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCompletions struct {
	totals map[string]int
}

func (s *stubCompletions) CompleteExercise(userID, exerciseID string, xp int) (*model.UserProgress, int, error) {
	now := time.Now()
	s.totals[userID] += xp
	return &model.UserProgress{
		UserID:      userID,
		ExerciseID:  exerciseID,
		Status:      model.StatusCompleted,
		CompletedAt: &now,
	}, s.totals[userID], nil
}

func progressTestRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour

	xp := 10
	svc := service.NewProgressService(
		&stubExercises{bySlug: map[string]*model.Exercise{
			"hello-world": {UUIDBase: model.UUIDBase{ID: "ex-1"}, Slug: "hello-world", XPValue: &xp},
		}},
		&stubCompletions{totals: make(map[string]int)},
	)
	ctrl := NewProgressController(svc)

	router := gin.New()
	router.POST("/api/progress/update", middleware.AuthMiddleware(cfg), ctrl.UpdateProgress)
	return router
}

func postProgress(t *testing.T, router *gin.Engine, sessionUserID string, body UpdateProgressRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/progress/update", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	if sessionUserID != "" {
		user := &model.User{
			UUIDBase: model.UUIDBase{ID: sessionUserID},
			Email:    "ada@example.com",
			Role:     model.RoleUser,
		}
		token, err := util.GenerateSessionToken(user, testSecret, time.Hour)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateProgressRequiresSession(t *testing.T) {
	router := progressTestRouter()

	w := postProgress(t, router, "", UpdateProgressRequest{UserID: "user-1", ExerciseSlug: "hello-world"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProgressRejectsOtherUser(t *testing.T) {
	router := progressTestRouter()

	w := postProgress(t, router, "user-1", UpdateProgressRequest{UserID: "user-2", ExerciseSlug: "hello-world"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProgressUnknownExercise(t *testing.T) {
	router := progressTestRouter()

	w := postProgress(t, router, "user-1", UpdateProgressRequest{UserID: "user-1", ExerciseSlug: "nope"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "nope")
}

func TestUpdateProgressHappyPath(t *testing.T) {
	router := progressTestRouter()

	w := postProgress(t, router, "user-1", UpdateProgressRequest{UserID: "user-1", ExerciseSlug: "hello-world"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			UpdatedUserProgress struct {
				ExerciseID  string  `json:"exerciseId"`
				Status      string  `json:"status"`
				CompletedAt *string `json:"completedAt"`
			} `json:"updatedUserProgress"`
			TotalXP int `json:"total_xp"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ex-1", resp.Data.UpdatedUserProgress.ExerciseID)
	assert.Equal(t, string(model.StatusCompleted), resp.Data.UpdatedUserProgress.Status)
	assert.NotNil(t, resp.Data.UpdatedUserProgress.CompletedAt)
	assert.Equal(t, 10, resp.Data.TotalXP)

	// Same exercise again: XP is credited on every call.
	w = postProgress(t, router, "user-1", UpdateProgressRequest{UserID: "user-1", ExerciseSlug: "hello-world"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.Data.TotalXP)
}
