package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/pkg/response"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exerciseSvc service.ExerciseService
}

func NewExerciseHandler(exerciseSvc service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseSvc: exerciseSvc}
}

func (s *ExerciseHandler) ListExercises(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	var filter dto.ExerciseListFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}
	exercises, err := s.exerciseSvc.ListExercises(c.Request.Context(), coachID, &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, exercises)
}

func (s *ExerciseHandler) GetExercise(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	exerciseID, err := strconv.ParseUint(c.Param("exercise_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	isCustom := c.Query("is_custom") == "true"
	exercise, err := s.exerciseSvc.GetExercise(c.Request.Context(), coachID, exerciseID, isCustom)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, exercise)
}

func (s *ExerciseHandler) CreateExercise(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	var createDTO dto.CreateExerciseDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	exercise, err := s.exerciseSvc.CreateExercise(c.Request.Context(), coachID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, exercise)
}

func (s *ExerciseHandler) UpdateExercise(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	exerciseID, err := strconv.ParseUint(c.Param("exercise_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateExerciseDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	exercise, err := s.exerciseSvc.UpdateExercise(c.Request.Context(), coachID, exerciseID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, exercise)
}

func (s *ExerciseHandler) DeleteExercise(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	exerciseID, err := strconv.ParseUint(c.Param("exercise_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.exerciseSvc.DeleteExercise(c.Request.Context(), coachID, exerciseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ExerciseHandler) ListBodyParts(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	values, err := s.exerciseSvc.ListBodyParts(c.Request.Context(), coachID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, values)
}

func (s *ExerciseHandler) ListMuscleGroups(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	values, err := s.exerciseSvc.ListMuscleGroups(c.Request.Context(), coachID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, values)
}

func (s *ExerciseHandler) ListEquipment(c *gin.Context) {
	coachID := c.GetUint64("coach_id")
	values, err := s.exerciseSvc.ListEquipment(c.Request.Context(), coachID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, values)
}
