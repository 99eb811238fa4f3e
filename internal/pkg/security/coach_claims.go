package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "TrainerHub"
	JWTExpirationTime        = time.Hour * 24
)

// CoachClaims 定义了我们 Token 中需要包含的业务信息
type CoachClaims struct {
	CoachID uint64 `json:"coach_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}
