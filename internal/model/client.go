package model

import (
	"time"
)

type Client struct {
	ID         uint64  `gorm:"primaryKey" json:"id"`
	CoachID    uint64  `gorm:"not null;index:idx_client_coach" json:"coach_id"`
	Name       string  `gorm:"type:varchar(120);not null" json:"name"`
	FirstName  string  `gorm:"type:varchar(50)" json:"first_name"`
	LastName   string  `gorm:"type:varchar(50)" json:"last_name"`
	Email      *string `gorm:"type:varchar(255)" json:"email"`
	ClientType string  `gorm:"type:varchar(30);default:'Online'" json:"client_type"`
	Status     string  `gorm:"type:varchar(30);default:'Connected'" json:"status"`
	AvatarURL  *string `gorm:"type:varchar(512)" json:"avatar_url"`
	AssignedTo *string `gorm:"type:varchar(100)" json:"assigned_to"`

	// 训练与任务完成率快照，由客户端应用侧回写
	LastTrainingCompletion    *int `gorm:"column:last_training_completion" json:"last_training_completion"`
	LastTraining30dCompletion *int `gorm:"column:last_training_30d_completion" json:"last_training_30d_completion"`
	LastTaskCompletion        *int `gorm:"column:last_task_completion" json:"last_task_completion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
