package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dojoroll/models"
)

func newMilestoneRouter(fs *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewMilestoneController(fs, zap.NewNop())
	r.GET("/milestones", c.CheckMilestones)
	return r
}

func getMilestones(t *testing.T, r *gin.Engine) (*httptest.ResponseRecorder, []models.MilestoneEvent) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/milestones", nil))
	var events []models.MilestoneEvent
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	}
	return w, events
}

func TestCheckMilestonesFiresAtThreshold(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{
		UID: "u1", DisplayName: "Alice", GiCount: 12, NogiCount: 13,
	})
	r := newMilestoneRouter(fs)

	w, events := getMilestones(t, r)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, events, 1)
	assert.Equal(t, models.MilestoneEvent{Name: "Alice", Type: "Total BJJ Classes", Count: 25}, events[0])

	assert.Equal(t, 25, fs.user("u1").TotalMilestone)
}

func TestCheckMilestonesSecondScanIsEmpty(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{
		UID: "u1", DisplayName: "Alice", GiCount: 12, NogiCount: 13,
	})
	r := newMilestoneRouter(fs)

	_, first := getMilestones(t, r)
	require.Len(t, first, 1)

	w, second := getMilestones(t, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, second)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCheckMilestonesBelowThreshold(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", DisplayName: "Alice", GiCount: 10, NogiCount: 9})
	r := newMilestoneRouter(fs)

	w, events := getMilestones(t, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, events)
	assert.Equal(t, 0, fs.user("u1").TotalMilestone)
}

func TestCheckMilestonesFiresForSkippedThresholds(t *testing.T) {
	// 20 -> 55 between scans: 25 and 50 both fire, nothing is lost.
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", DisplayName: "Alice", GiCount: 30, NogiCount: 25})
	r := newMilestoneRouter(fs)

	_, events := getMilestones(t, r)
	require.Len(t, events, 2)
	assert.Equal(t, 25, events[0].Count)
	assert.Equal(t, 50, events[1].Count)
	assert.Equal(t, 50, fs.user("u1").TotalMilestone)
}

func TestCheckMilestonesPartiallyAcknowledged(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", DisplayName: "Alice", GiCount: 40, NogiCount: 12, TotalMilestone: 25})
	r := newMilestoneRouter(fs)

	_, events := getMilestones(t, r)
	require.Len(t, events, 1)
	assert.Equal(t, 50, events[0].Count)
	assert.Equal(t, 50, fs.user("u1").TotalMilestone)
}

func TestCheckMilestonesEmailFallback(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", Email: "alice@example.com", GiCount: 25})
	r := newMilestoneRouter(fs)

	_, events := getMilestones(t, r)
	require.Len(t, events, 1)
	assert.Equal(t, "alice@example.com", events[0].Name)
}

func TestCheckMilestonesMultipleUsersInStoreOrder(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", DisplayName: "Alice", GiCount: 25})
	fs.addUser(models.UserProfile{UID: "u2", DisplayName: "Bob", GiCount: 3})
	fs.addUser(models.UserProfile{UID: "u3", DisplayName: "Cara", NogiCount: 25})
	r := newMilestoneRouter(fs)

	_, events := getMilestones(t, r)
	require.Len(t, events, 2)
	assert.Equal(t, "Alice", events[0].Name)
	assert.Equal(t, "Cara", events[1].Name)
}

func TestCheckMilestonesStoreError(t *testing.T) {
	fs := newFakeStore()
	fs.usersErr = errors.New("firestore unavailable")
	r := newMilestoneRouter(fs)

	w, _ := getMilestones(t, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestScanAcknowledgeFailureAborts(t *testing.T) {
	fs := newFakeStore()
	fs.addUser(models.UserProfile{UID: "u1", DisplayName: "Alice", GiCount: 25})
	fs.ackErr = errors.New("write denied")

	c := NewMilestoneController(fs, zap.NewNop())
	_, err := c.Scan(context.Background())
	assert.Error(t, err)
}
