package model

import (
	"time"
)

// MetricValue 单次测量记录，只增不改
type MetricValue struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ClientID   uint64    `gorm:"not null;index:idx_value_client_metric" json:"client_id"`
	MetricID   uint64    `gorm:"not null;index:idx_value_client_metric" json:"metric_id"`
	Value      float64   `gorm:"not null" json:"value"`
	RecordedAt time.Time `gorm:"not null;index:idx_value_recorded" json:"recorded_at"`
}

func (MetricValue) TableName() string {
	return "client_metrics"
}
