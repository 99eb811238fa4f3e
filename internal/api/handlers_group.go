package api

import "TrainerHub/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler     *handler.AuthHandler
	ClientHandler   *handler.ClientHandler
	MetricHandler   *handler.MetricHandler
	ExerciseHandler *handler.ExerciseHandler
	MediaHandler    *handler.MediaHandler
}
