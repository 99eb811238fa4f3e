package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Email        string  `json:"email" binding:"required" validate:"required,email"`
	Password     string  `json:"password" binding:"required" validate:"min=6,max=72"`
	FirstName    string  `json:"first_name" validate:"max=50"`
	LastName     string  `json:"last_name" validate:"max=50"`
	BusinessName *string `json:"business_name,omitempty" validate:"omitempty,max=100"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

// CoachDTO 教练信息
type CoachDTO struct {
	CoachID      *uint64    `json:"coach_id,omitempty"`
	Email        *string    `json:"email,omitempty"`
	FirstName    *string    `json:"first_name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	BusinessName *string    `json:"business_name,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword *string `json:"old_password" binding:"required" validate:"min=6,max=72"`
	NewPassword *string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}

// ForgotPasswordDTO 申请重置密码
type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// ResetPasswordDTO 凭重置口令设置新密码
type ResetPasswordDTO struct {
	Email       *string `json:"email" binding:"required" validate:"required,email"`
	ResetToken  *string `json:"reset_token" binding:"required"`
	NewPassword *string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}
