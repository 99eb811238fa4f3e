package model

import (
	"time"
)

// UserExercise 教练自建动作，可基于全局动作派生
type UserExercise struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	CoachID        uint64    `gorm:"not null;index:idx_user_exercise_coach" json:"coach_id"`
	BaseExerciseID *uint64   `gorm:"column:base_exercise_id" json:"base_exercise_id"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name"`
	GifURL         *string   `gorm:"type:varchar(512);column:gif_url" json:"gif_url"`
	ThumbnailURL   *string   `gorm:"type:varchar(512);column:thumbnail_url" json:"thumbnail_url"`
	Equipments     []string  `gorm:"type:json;serializer:json" json:"equipments"`
	TargetMuscles  []string  `gorm:"type:json;serializer:json;column:target_muscles" json:"target_muscles"`
	BodyParts      []string  `gorm:"type:json;serializer:json;column:body_parts" json:"body_parts"`
	Instructions   []string  `gorm:"type:json;serializer:json" json:"instructions"`
	Status         string    `gorm:"type:varchar(30);default:'active'" json:"status"`
	IsCustom       bool      `gorm:"not null;default:true" json:"is_custom"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserExercise) TableName() string {
	return "user_exercises"
}
