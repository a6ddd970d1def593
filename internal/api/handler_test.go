package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictive-maintenance-backend/config"
	"predictive-maintenance-backend/internal/fixtures"
	"predictive-maintenance-backend/internal/model"
	"predictive-maintenance-backend/internal/service"
	"predictive-maintenance-backend/internal/store"
)

// newTestRouter builds a router over a fresh fixture store with latency
// disabled and a generous rate limit so tests never throttle.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := service.New(store.New(fixtures.Load()), service.Latency{}, nil)
	cfg := config.Default()
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	return NewRouter(svc, cfg, nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	testCases := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       gin.H{"email": "sarah@northfield.io", "password": "admin123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       gin.H{"email": "sarah@northfield.io", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       gin.H{"email": "sarah@northfield.io"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			body:       nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)
			w := doJSON(t, router, http.MethodPost, "/api/auth/login", tc.body)
			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusOK {
				var result service.LoginResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Empty(t, result.User.Password)
				assert.Contains(t, result.Token, "mock-token-")
			}
		})
	}
}

func TestGetMachineNotFoundIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/machines/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Machine not found"}`, w.Body.String())
}

func TestGetMachinesWithQueryFilters(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/machines?status=critical", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var machines []model.Machine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &machines))
	require.Len(t, machines, 1)
	assert.Equal(t, "ENGINE-012", machines[0].AssetID)
}

func TestSensorHistoryRouteBeatsGenericMachineRoute(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/machines/1/sensor-history?hours=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []model.SensorReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 3)
}

func TestCreateMachineEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/machines", gin.H{
		"name": "CNC Milling Machine 2", "type": "CNC", "location": "Building C",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var m model.Machine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "CNC-002", m.AssetID)
	assert.Equal(t, model.StatusHealthy, m.Status)
}

func TestCreateMachineMissingFieldsIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/machines", gin.H{"name": "No type"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWorkOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/work-orders", gin.H{
		"title": "Grease conveyor bearings", "machine_id": 5, "priority": "low",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 105, created.ID)
	assert.Regexp(t, `^WO-\d{4}-105$`, created.WONumber)
	assert.Equal(t, "CONV-003", created.AssetID)
}

func TestAddWorkOrderNoteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/work-orders/102/notes", gin.H{
		"user": "Tom Beck", "text": "Started teardown.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	missing := doJSON(t, router, http.MethodPost, "/api/work-orders/102/notes", gin.H{"user": "Tom Beck"})
	assert.Equal(t, http.StatusBadRequest, missing.Code, "missing note text short-circuits at the adapter")
}

func TestAcknowledgeAlertEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/alerts/1/acknowledge", gin.H{"user": "James Okafor"})
	require.Equal(t, http.StatusOK, w.Code)

	var a model.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.True(t, a.Acknowledged)
	require.NotNil(t, a.AcknowledgedBy)
	assert.Equal(t, "James Okafor", *a.AcknowledgedBy)

	notFound := doJSON(t, router, http.MethodPut, "/api/alerts/999/acknowledge", gin.H{"user": "James Okafor"})
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.JSONEq(t, `{"message":"Alert not found"}`, notFound.Body.String())
}

func TestUpdateAvatarMissingPayloadIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/users/1/avatar", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Avatar is required"}`, w.Body.String())
}

func TestDeleteEndpointsReturn204(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/machines/5", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	again := doJSON(t, router, http.MethodDelete, "/api/machines/5", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestExportMissingTypeIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/reports/export", gin.H{"id": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ok := doJSON(t, router, http.MethodPost, "/api/reports/export", gin.H{"type": "machine_report", "id": 3})
	assert.Equal(t, http.StatusOK, ok.Code)
}

func TestTrainEndpointReturns202(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ai/model/train", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	var result service.TrainResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "training_started", result.Status)
}

func TestDashboardStatsCached(t *testing.T) {
	router := newTestRouter(t)

	first := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Cache"))

	second := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestInvalidIDIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/machines/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
