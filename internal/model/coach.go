package model

import (
	"time"
)

type Coach struct {
	ID           uint64  `gorm:"primaryKey"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_coach_email"`
	Password     string  `gorm:"column:password_hash;type:varchar(255);not null"`
	FirstName    string  `gorm:"type:varchar(50)"`
	LastName     string  `gorm:"type:varchar(50)"`
	BusinessName *string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Clients []Client `gorm:"foreignKey:CoachID;references:ID"`
}

func (Coach) TableName() string {
	return "coaches"
}
