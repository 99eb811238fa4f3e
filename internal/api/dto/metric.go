package dto

// MetricSummaryDTO 指标最新值概要
type MetricSummaryDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Value        *string `json:"value"`      // 最新值，无记录时为 null
	LastUpdate   *string `json:"lastUpdate"` // 形如 "Jan 2"，无记录时为 null
	Unit         *string `json:"unit"`
	DisplayOrder int     `json:"displayOrder"`
}

// MetricPointDTO 时间序列中的一个点
type MetricPointDTO struct {
	Date  string  `json:"date"` // 2006-01-02
	Value float64 `json:"value"`
}

// MetricHistoryDTO 指标历史序列与首末涨跌幅
type MetricHistoryDTO struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Unit          *string           `json:"unit"`
	Data          []*MetricPointDTO `json:"data"`
	PercentChange string            `json:"percentChange"` // 保留两位小数的字符串
	DisplayOrder  int               `json:"displayOrder"`
}

// ClientMetricsDTO GET /clients/:id/metrics 的返回体
type ClientMetricsDTO struct {
	MetricsData           []*MetricSummaryDTO `json:"metricsData"`
	MetricsHistoricalData []*MetricHistoryDTO `json:"metricsHistoricalData"`
}

// MetricPreferenceItemDTO 保存偏好时的一行
type MetricPreferenceItemDTO struct {
	ID           uint64 `json:"id" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
	IsVisible    *bool  `json:"isVisible,omitempty"` // 缺省视为 true
}

// SavePreferencesDTO POST /clients/:id/metrics 的请求体
type SavePreferencesDTO struct {
	MetricsToSave []*MetricPreferenceItemDTO `json:"metricsToSave" binding:"required"`
}

// AddMetricValueDTO 追加一次测量
type AddMetricValueDTO struct {
	Value *float64 `json:"value" binding:"required"`
}
