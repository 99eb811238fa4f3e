package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/service"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetricService struct {
	saveCalls  int
	savedItems []*dto.MetricPreferenceItemDTO
	addCalls   int
	addedValue float64
}

func (s *stubMetricService) GetDefinitions(_ context.Context) ([]*model.MetricDefinition, error) {
	return nil, nil
}

func (s *stubMetricService) GetClientMetrics(_ context.Context, _, _ uint64) (*dto.ClientMetricsDTO, error) {
	return &dto.ClientMetricsDTO{}, nil
}

func (s *stubMetricService) SavePreferences(_ context.Context, _, _ uint64, items []*dto.MetricPreferenceItemDTO) error {
	s.saveCalls++
	s.savedItems = items
	return nil
}

func (s *stubMetricService) AddMetricValue(_ context.Context, _, _, _ uint64, value float64) error {
	s.addCalls++
	s.addedValue = value
	return nil
}

func newMetricTestRouter(svc service.MetricService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("coach_id", uint64(1)) })
	h := NewMetricHandler(svc)
	r.POST("/api/clients/:client_id/metrics", h.SavePreferences)
	r.POST("/api/clients/:client_id/metrics/:metric_id", h.AddMetricValue)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, payload string) *dto.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return &body
}

func TestSavePreferencesRejectsNonArrayPayload(t *testing.T) {
	svc := &stubMetricService{}
	r := newMetricTestRouter(svc)

	// metricsToSave 类型不对要报参数错误，而不是落到系统异常
	body := postJSON(t, r, "/api/clients/10/metrics", `{"metricsToSave":"nope"}`)

	assert.Equal(t, 400, body.Code)
	assert.Zero(t, svc.saveCalls)
}

func TestSavePreferencesEmptyArrayClears(t *testing.T) {
	svc := &stubMetricService{}
	r := newMetricTestRouter(svc)

	body := postJSON(t, r, "/api/clients/10/metrics", `{"metricsToSave":[]}`)

	assert.Equal(t, 200, body.Code)
	assert.Equal(t, 1, svc.saveCalls)
	assert.Empty(t, svc.savedItems)
}

func TestSavePreferencesMissingFieldRejected(t *testing.T) {
	svc := &stubMetricService{}
	r := newMetricTestRouter(svc)

	body := postJSON(t, r, "/api/clients/10/metrics", `{}`)

	assert.Equal(t, 400, body.Code)
	assert.Zero(t, svc.saveCalls)
}

func TestAddMetricValueMissingValueRejected(t *testing.T) {
	svc := &stubMetricService{}
	r := newMetricTestRouter(svc)

	body := postJSON(t, r, "/api/clients/10/metrics/3", `{}`)

	assert.Equal(t, 400, body.Code)
	assert.Zero(t, svc.addCalls)
}

func TestAddMetricValueAccepted(t *testing.T) {
	svc := &stubMetricService{}
	r := newMetricTestRouter(svc)

	body := postJSON(t, r, "/api/clients/10/metrics/3", `{"value":72.5}`)

	assert.Equal(t, 200, body.Code)
	assert.Equal(t, 1, svc.addCalls)
	assert.InDelta(t, 72.5, svc.addedValue, 0.0001)
}
