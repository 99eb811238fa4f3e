package model

// MetricDefinition 全局指标目录条目，由外部目录管理流程维护，本服务只读
type MetricDefinition struct {
	ID   uint64  `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"type:varchar(100);not null" json:"name"`
	Unit *string `gorm:"type:varchar(30)" json:"unit"`
}

func (MetricDefinition) TableName() string {
	return "metric_definitions"
}
