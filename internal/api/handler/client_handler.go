package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/pkg/response"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/repository"
	"TrainerHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientSvc service.ClientService
}

func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

func (s *ClientHandler) ListClients(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	filter := &repository.ClientListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
		Order:    c.Query("order"),
	}
	rows, err := s.clientSvc.ListClients(c.Request.Context(), coachID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *ClientHandler) CreateClient(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	var createDTO dto.CreateClientDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	client, err := s.clientSvc.CreateClient(c.Request.Context(), coachID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, client)
}

func (s *ClientHandler) GetClient(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	client, err := s.clientSvc.GetClient(c.Request.Context(), coachID, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, client)
}

func (s *ClientHandler) UpdateClient(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateClientDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	client, err := s.clientSvc.UpdateClient(c.Request.Context(), coachID, clientID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, client)
}

func (s *ClientHandler) DeleteClient(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.clientSvc.DeleteClient(c.Request.Context(), coachID, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
