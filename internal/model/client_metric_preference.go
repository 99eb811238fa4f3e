package model

// ClientMetricPreference 每个 (客户, 指标) 的展示顺序与可见性覆盖
type ClientMetricPreference struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	ClientID     uint64 `gorm:"not null;uniqueIndex:idx_client_metric" json:"client_id"`
	MetricID     uint64 `gorm:"not null;uniqueIndex:idx_client_metric" json:"metric_id"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
	IsVisible    bool   `gorm:"not null;default:true" json:"is_visible"`
}

func (ClientMetricPreference) TableName() string {
	return "client_metric_preferences"
}
