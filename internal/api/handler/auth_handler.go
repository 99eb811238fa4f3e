package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/pkg/response"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	coachSvc service.CoachService
}

func NewAuthHandler(coachSvc service.CoachService) *AuthHandler {
	return &AuthHandler{coachSvc: coachSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.coachSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *AuthHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	err := c.ShouldBind(&credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.coachSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.coachSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) GetCoachInfo(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	coachDTO, err := s.coachSvc.GetCoachInfo(c.Request.Context(), coachID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, coachDTO)
}

func (s *AuthHandler) ChangePassword(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	var changePasswordDTO dto.ChangePasswordDTO
	err := c.ShouldBind(&changePasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&changePasswordDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.coachSvc.ChangePassword(c.Request.Context(), coachID, &changePasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ForgotPassword(c *gin.Context) {
	var forgotPasswordDTO dto.ForgotPasswordDTO
	err := c.ShouldBind(&forgotPasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&forgotPasswordDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.coachSvc.ForgotPassword(c.Request.Context(), &forgotPasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ResetPassword(c *gin.Context) {
	var resetPasswordDTO dto.ResetPasswordDTO
	err := c.ShouldBind(&resetPasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&resetPasswordDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.coachSvc.ResetPassword(c.Request.Context(), &resetPasswordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
