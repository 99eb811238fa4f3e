package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrCoachNotFound       = errors.New("账号不存在")
	ErrCoachEmailExist     = errors.New("邮箱已注册")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrResetTokenIncorrect = errors.New("重置口令错误或已过期")
	// 客户不存在与客户不属于当前教练统一返回同一个错误，避免暴露资源是否存在
	ErrClientNotFound   = errors.New("客户不存在或无权访问")
	ErrMetricNotFound   = errors.New("指标不存在")
	ErrMetricCatalog    = errors.New("加载指标目录失败")
	ErrExerciseNotFound = errors.New("动作不存在")
	ErrPreferenceDelete = errors.New("删除旧的指标偏好失败")
	ErrPreferenceInsert = errors.New("保存指标偏好失败")
	ErrFileNotSupported = errors.New("不支持的文件类型")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrCoachNotFound:       NotFound,
	ErrCoachEmailExist:     BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrResetTokenIncorrect: Unauthorized,
	ErrClientNotFound:      NotFound,
	ErrMetricNotFound:      NotFound,
	ErrMetricCatalog:       BadRequest,
	ErrExerciseNotFound:    NotFound,
	ErrPreferenceDelete:    BadRequest,
	ErrPreferenceInsert:    BadRequest,
	ErrFileNotSupported:    BadRequest,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
