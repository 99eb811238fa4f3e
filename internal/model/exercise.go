package model

import (
	"time"
)

// Exercise 全局动作库条目
type Exercise struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name"`
	GifURL        *string   `gorm:"type:varchar(512);column:gif_url" json:"gif_url"`
	ThumbnailURL  *string   `gorm:"type:varchar(512);column:thumbnail_url" json:"thumbnail_url"`
	Equipments    []string  `gorm:"type:json;serializer:json" json:"equipments"`
	TargetMuscles []string  `gorm:"type:json;serializer:json;column:target_muscles" json:"target_muscles"`
	BodyParts     []string  `gorm:"type:json;serializer:json;column:body_parts" json:"body_parts"`
	Instructions  []string  `gorm:"type:json;serializer:json" json:"instructions"`
	Status        string    `gorm:"type:varchar(30);default:'active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}
