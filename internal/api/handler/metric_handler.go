package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/pkg/response"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MetricHandler struct {
	metricSvc service.MetricService
}

func NewMetricHandler(metricSvc service.MetricService) *MetricHandler {
	return &MetricHandler{metricSvc: metricSvc}
}

func (s *MetricHandler) GetDefinitions(c *gin.Context) {
	definitions, err := s.metricSvc.GetDefinitions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, definitions)
}

func (s *MetricHandler) GetClientMetrics(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	metrics, err := s.metricSvc.GetClientMetrics(c.Request.Context(), coachID, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

func (s *MetricHandler) SavePreferences(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var saveDTO dto.SavePreferencesDTO
	if err = c.ShouldBind(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.metricSvc.SavePreferences(c.Request.Context(), coachID, clientID, saveDTO.MetricsToSave)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MetricHandler) AddMetricValue(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	metricID, err := strconv.ParseUint(c.Param("metric_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var valueDTO dto.AddMetricValueDTO
	if err = c.ShouldBind(&valueDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&valueDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.metricSvc.AddMetricValue(c.Request.Context(), coachID, clientID, metricID, *valueDTO.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
