// filepath: internal/api/handlers/notification_handler_test.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"riseup/internal/models"
	"riseup/internal/services"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListNotifications(t *testing.T) {
	h, m := setupHandlerTest(t)
	list := []models.Notification{{ID: 1, Title: "7-day streak!", Type: "achievement"}}
	m.Notifications.On("List", mock.Anything, testUser.ID, true).Return(list, nil)
	m.Notifications.On("List", mock.Anything, testUser.ID, false).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.ListNotifications(rr, jsonRequest(t, http.MethodGet, "/api/notifications?unread=true", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "7-day streak!")

	rr = httptest.NewRecorder()
	h.ListNotifications(rr, jsonRequest(t, http.MethodGet, "/api/notifications", nil))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestMarkNotificationRead(t *testing.T) {
	h, m := setupHandlerTest(t)
	m.Notifications.On("MarkRead", mock.Anything, testUser.ID, int64(4)).Return(nil)
	m.Notifications.On("MarkRead", mock.Anything, testUser.ID, int64(5)).Return(fmt.Errorf("%w: notification 5", services.ErrNotFound))

	rr := serve("/api/notifications/{id}", h.MarkNotificationRead, jsonRequest(t, http.MethodPatch, "/api/notifications/4", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve("/api/notifications/{id}", h.MarkNotificationRead, jsonRequest(t, http.MethodPatch, "/api/notifications/5", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve("/api/notifications/{id}", h.MarkNotificationRead, jsonRequest(t, http.MethodPatch, "/api/notifications/0", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTriggerHousekeeping(t *testing.T) {
	h, m := setupHandlerTest(t)
	report := &models.HousekeepingReport{PurgedTokens: 2, BackupPath: "/tmp/b.db", RanAt: time.Unix(0, 0).UTC(), Message: "ok"}
	m.Housekeeping.On("TriggerHousekeeping").Return(report, nil).Once()
	m.Auditor.On("Log", mock.Anything, "housekeeping.run", "alice", "database", mock.Anything).Return()

	rr := httptest.NewRecorder()
	h.TriggerHousekeeping(rr, jsonRequest(t, http.MethodPost, "/api/housekeeping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"purged_tokens":2`)

	m.Housekeeping.On("TriggerHousekeeping").Return(nil, errors.New("disk full")).Once()
	rr = httptest.NewRecorder()
	h.TriggerHousekeeping(rr, jsonRequest(t, http.MethodPost, "/api/housekeeping", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetInfoAndHealth(t *testing.T) {
	h, m := setupHandlerTest(t)
	m.Info.On("GetInfo").Return(models.Info{ServiceName: "RiseUp API", Version: "v1.0.0-test"})

	rr := httptest.NewRecorder()
	h.GetInfo(rr, httptest.NewRequest(http.MethodGet, "/api/info", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var info models.Info
	decode(t, rr, &info)
	assert.Equal(t, "RiseUp API", info.ServiceName)

	rr = httptest.NewRecorder()
	HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK\n", rr.Body.String())
}
