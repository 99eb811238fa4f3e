package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/pkg/consts"
	"TrainerHub/internal/pkg/redis"
	"TrainerHub/internal/pkg/security"
	"TrainerHub/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const passwordResetTTL = 30 * time.Minute

type CoachService interface {
	Register(ctx context.Context, registerDTO *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetCoachInfo(ctx context.Context, coachID uint64) (*dto.CoachDTO, error)
	ChangePassword(ctx context.Context, coachID uint64, changeDTO *dto.ChangePasswordDTO) error
	ForgotPassword(ctx context.Context, forgotDTO *dto.ForgotPasswordDTO) error
	ResetPassword(ctx context.Context, resetDTO *dto.ResetPasswordDTO) error
}

type coachServiceImpl struct {
	coachRepo repository.CoachRepo
}

func NewCoachService(coachRepo repository.CoachRepo) CoachService {
	return &coachServiceImpl{coachRepo: coachRepo}
}

func (s *coachServiceImpl) Register(ctx context.Context, registerDTO *dto.RegisterDTO) (string, error) {
	email := strings.ToLower(strings.TrimSpace(registerDTO.Email))

	existing, err := s.coachRepo.GetCoachByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrCoachEmailExist
	}

	hashed, err := security.HashPassword(registerDTO.Password)
	if err != nil {
		return "", err
	}

	coach := &model.Coach{
		Email:        email,
		Password:     hashed,
		FirstName:    registerDTO.FirstName,
		LastName:     registerDTO.LastName,
		BusinessName: registerDTO.BusinessName,
	}
	if err = s.coachRepo.CreateCoach(ctx, coach); err != nil {
		return "", err
	}

	return security.GenerateToken(coach.ID, coach.Email)
}

func (s *coachServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	email := strings.ToLower(strings.TrimSpace(credentialDTO.Email))

	coach, err := s.coachRepo.GetCoachByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if coach == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credentialDTO.Password, coach.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(coach.ID, coach.Email)
}

// Logout 把 token 的签名段写入黑名单，保留到 token 自然过期
func (s *coachServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.JWTExpirationTime)
}

func (s *coachServiceImpl) GetCoachInfo(ctx context.Context, coachID uint64) (*dto.CoachDTO, error) {
	coach, err := s.coachRepo.GetCoachByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrCoachNotFound
	}

	coachDTO := &dto.CoachDTO{}
	if err = copier.Copy(coachDTO, coach); err != nil {
		return nil, err
	}
	coachDTO.CoachID = &coach.ID
	return coachDTO, nil
}

func (s *coachServiceImpl) ChangePassword(ctx context.Context, coachID uint64, changeDTO *dto.ChangePasswordDTO) error {
	coach, err := s.coachRepo.GetCoachByID(ctx, coachID)
	if err != nil {
		return err
	}
	if coach == nil {
		return ErrCoachNotFound
	}
	if err = security.CheckPasswordHash(*changeDTO.OldPassword, coach.Password); err != nil {
		return ErrPasswordIncorrect
	}

	hashed, err := security.HashPassword(*changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.coachRepo.UpdatePassword(ctx, coachID, hashed)
}

// ForgotPassword 不暴露邮箱是否存在，未注册邮箱直接静默返回
func (s *coachServiceImpl) ForgotPassword(ctx context.Context, forgotDTO *dto.ForgotPasswordDTO) error {
	email := strings.ToLower(strings.TrimSpace(forgotDTO.Email))

	coach, err := s.coachRepo.GetCoachByEmail(ctx, email)
	if err != nil {
		return err
	}
	if coach == nil {
		return nil
	}

	token := uuid.NewString()
	if err = redis.SetWithExpiration(ctx, consts.PasswordResetKey+token, email, passwordResetTTL); err != nil {
		return err
	}

	// TODO: 接入邮件服务后改为发送重置链接
	log.InfoContext(ctx, "password reset token issued", "email", email, "token", token)
	return nil
}

func (s *coachServiceImpl) ResetPassword(ctx context.Context, resetDTO *dto.ResetPasswordDTO) error {
	key := consts.PasswordResetKey + *resetDTO.ResetToken
	email, err := redis.GetValue(ctx, key)
	if err != nil {
		return err
	}
	if email == "" || !strings.EqualFold(email, *resetDTO.Email) {
		return ErrResetTokenIncorrect
	}

	coach, err := s.coachRepo.GetCoachByEmail(ctx, email)
	if err != nil {
		return err
	}
	if coach == nil {
		return ErrCoachNotFound
	}

	hashed, err := security.HashPassword(*resetDTO.NewPassword)
	if err != nil {
		return err
	}
	if err = s.coachRepo.UpdatePassword(ctx, coach.ID, hashed); err != nil {
		return err
	}

	return redis.DeleteKey(ctx, key)
}
