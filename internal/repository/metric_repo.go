package repository

import (
	"TrainerHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type MetricRepo interface {
	GetAllDefinitions(ctx context.Context) ([]*model.MetricDefinition, error)
	GetDefinition(ctx context.Context, id uint64) (*model.MetricDefinition, error)
	GetPreferences(ctx context.Context, clientID uint64) ([]*model.ClientMetricPreference, error)
	DeletePreferences(ctx context.Context, clientID uint64) error
	InsertPreferences(ctx context.Context, prefs []*model.ClientMetricPreference) error
	GetLatestValue(ctx context.Context, clientID, metricID uint64) (*model.MetricValue, error)
	GetValueSeries(ctx context.Context, clientID, metricID uint64) ([]*model.MetricValue, error)
	InsertValue(ctx context.Context, value *model.MetricValue) error
}

type metricRepoImpl struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepo {
	return &metricRepoImpl{db: db}
}

func (s *metricRepoImpl) GetAllDefinitions(ctx context.Context) ([]*model.MetricDefinition, error) {
	definitions := make([]*model.MetricDefinition, 0)
	if err := s.db.WithContext(ctx).Find(&definitions).Error; err != nil {
		return nil, err
	}
	return definitions, nil
}

func (s *metricRepoImpl) GetDefinition(ctx context.Context, id uint64) (*model.MetricDefinition, error) {
	var definition model.MetricDefinition
	err := s.db.WithContext(ctx).First(&definition, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &definition, nil
}

func (s *metricRepoImpl) GetPreferences(ctx context.Context, clientID uint64) ([]*model.ClientMetricPreference, error) {
	prefs := make([]*model.ClientMetricPreference, 0)
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("display_order ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// DeletePreferences 与 InsertPreferences 配套实现整体替换。
// 两步刻意不放进同一个事务：删除成功而插入失败时客户退回“无偏好”
// 状态，按名称兜底排序，而不是留下新旧混合的偏好集。
func (s *metricRepoImpl) DeletePreferences(ctx context.Context, clientID uint64) error {
	return s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.ClientMetricPreference{}).Error
}

func (s *metricRepoImpl) InsertPreferences(ctx context.Context, prefs []*model.ClientMetricPreference) error {
	if len(prefs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(prefs).Error
}

func (s *metricRepoImpl) GetLatestValue(ctx context.Context, clientID, metricID uint64) (*model.MetricValue, error) {
	var value model.MetricValue
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND metric_id = ?", clientID, metricID).
		Order("recorded_at DESC").
		First(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func (s *metricRepoImpl) GetValueSeries(ctx context.Context, clientID, metricID uint64) ([]*model.MetricValue, error) {
	values := make([]*model.MetricValue, 0)
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND metric_id = ?", clientID, metricID).
		Order("recorded_at ASC").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *metricRepoImpl) InsertValue(ctx context.Context, value *model.MetricValue) error {
	return s.db.WithContext(ctx).Create(value).Error
}
