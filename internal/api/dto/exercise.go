package dto

import "time"

// ExerciseDTO 动作库条目，全局动作与自建动作合并后的统一视图
type ExerciseDTO struct {
	ID             uint64    `json:"id"`
	BaseExerciseID *uint64   `json:"base_exercise_id,omitempty"`
	Name           string    `json:"name"`
	GifURL         *string   `json:"gif_url"`
	ThumbnailURL   *string   `json:"thumbnail_url"`
	Equipments     []string  `json:"equipments"`
	TargetMuscles  []string  `json:"target_muscles"`
	BodyParts      []string  `json:"body_parts"`
	Instructions   []string  `json:"instructions"`
	Status         string    `json:"status"`
	IsCustom       bool      `json:"is_custom"`
	IsUserExercise bool      `json:"is_user_exercise"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExerciseListFilterDTO 动作列表筛选参数，来自 query string
type ExerciseListFilterDTO struct {
	SortBy        string `form:"sortBy"`
	Order         string `form:"order"`
	Equipments    string `form:"equipments"`
	TargetMuscles string `form:"target_muscles"`
	BodyParts     string `form:"body_parts"`
	Status        string `form:"status"`
	Search        string `form:"search"`
	IsCustom      string `form:"is_custom"`
}

// CreateExerciseDTO 新建自建动作
type CreateExerciseDTO struct {
	Name           string   `json:"name" binding:"required" validate:"required,max=150"`
	BaseExerciseID *uint64  `json:"base_exercise_id,omitempty"`
	GifURL         *string  `json:"gif_url,omitempty"`
	ThumbnailURL   *string  `json:"thumbnail_url,omitempty"`
	Equipments     []string `json:"equipments,omitempty"`
	TargetMuscles  []string `json:"target_muscles,omitempty"`
	BodyParts      []string `json:"body_parts,omitempty"`
	Instructions   []string `json:"instructions,omitempty"`
}

// UpdateExerciseDTO 更新自建动作
type UpdateExerciseDTO struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=150"`
	GifURL        *string  `json:"gif_url,omitempty"`
	ThumbnailURL  *string  `json:"thumbnail_url,omitempty"`
	Equipments    []string `json:"equipments,omitempty"`
	TargetMuscles []string `json:"target_muscles,omitempty"`
	BodyParts     []string `json:"body_parts,omitempty"`
	Instructions  []string `json:"instructions,omitempty"`
	Status        *string  `json:"status,omitempty"`
}
