package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
	PasswordResetKey  = "auth:password:reset:"
	MediaTempKey      = "media:temp:meta"
)
