package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// UnrankedOrderSentinel 偏好表里查不到顺序时的兜底排序值，永远排在最后
const UnrankedOrderSentinel = 999

// 单个客户的指标数量很小，放开并发拉取即可，无需更细的限流
const aggregateConcurrency = 8

// ResolvedMetric 偏好解析后的展示条目
type ResolvedMetric struct {
	Definition   *model.MetricDefinition
	DisplayOrder int
}

type MetricService interface {
	GetDefinitions(ctx context.Context) ([]*model.MetricDefinition, error)
	GetClientMetrics(ctx context.Context, coachID, clientID uint64) (*dto.ClientMetricsDTO, error)
	SavePreferences(ctx context.Context, coachID, clientID uint64, items []*dto.MetricPreferenceItemDTO) error
	AddMetricValue(ctx context.Context, coachID, clientID, metricID uint64, value float64) error
}

type metricServiceImpl struct {
	metricRepo repository.MetricRepo
	clientRepo repository.ClientRepo
}

func NewMetricService(metricRepo repository.MetricRepo, clientRepo repository.ClientRepo) MetricService {
	return &metricServiceImpl{
		metricRepo: metricRepo,
		clientRepo: clientRepo,
	}
}

// ResolveMetrics 根据客户偏好把全局指标目录过滤并排序成展示列表。
// 纯函数：有偏好时按 display_order 只保留可见指标，
// 没有偏好时按名称排序（忽略大小写，目录原顺序作为稳定的次序）。
// 偏好里引用了目录中已不存在的指标会在过滤时被直接丢弃。
func ResolveMetrics(definitions []*model.MetricDefinition, prefs []*model.ClientMetricPreference) []*ResolvedMetric {
	orderMap := make(map[uint64]int, len(prefs))
	for _, pref := range prefs {
		orderMap[pref.MetricID] = pref.DisplayOrder
	}

	resolved := make([]*ResolvedMetric, 0, len(definitions))

	if len(prefs) > 0 {
		visible := make(map[uint64]bool, len(prefs))
		for _, pref := range prefs {
			if pref.IsVisible {
				visible[pref.MetricID] = true
			}
		}

		for _, definition := range definitions {
			if !visible[definition.ID] {
				continue
			}
			order, ok := orderMap[definition.ID]
			if !ok {
				order = UnrankedOrderSentinel
			}
			resolved = append(resolved, &ResolvedMetric{
				Definition:   definition,
				DisplayOrder: order,
			})
		}

		sort.SliceStable(resolved, func(i, j int) bool {
			return resolved[i].DisplayOrder < resolved[j].DisplayOrder
		})
		return resolved
	}

	for _, definition := range definitions {
		resolved = append(resolved, &ResolvedMetric{
			Definition:   definition,
			DisplayOrder: UnrankedOrderSentinel,
		})
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return strings.ToLower(resolved[i].Definition.Name) < strings.ToLower(resolved[j].Definition.Name)
	})
	return resolved
}

func (s *metricServiceImpl) GetDefinitions(ctx context.Context) ([]*model.MetricDefinition, error) {
	definitions, err := s.metricRepo.GetAllDefinitions(ctx)
	if err != nil {
		return nil, ErrMetricCatalog
	}
	return definitions, nil
}

func (s *metricServiceImpl) GetClientMetrics(ctx context.Context, coachID, clientID uint64) (*dto.ClientMetricsDTO, error) {
	if err := s.checkOwnership(ctx, coachID, clientID); err != nil {
		return nil, err
	}

	prefs, err := s.metricRepo.GetPreferences(ctx, clientID)
	if err != nil {
		// 偏好读不到时退回默认排序，不让整个面板失败
		log.WarnContext(ctx, "failed to load metric preferences, falling back to defaults", "client_id", clientID, "err", err)
		prefs = nil
	}

	definitions, err := s.metricRepo.GetAllDefinitions(ctx)
	if err != nil {
		return nil, ErrMetricCatalog
	}

	resolved := ResolveMetrics(definitions, prefs)
	return s.aggregate(ctx, clientID, resolved)
}

// aggregate 为每个已解析指标并发拉取最新值与完整序列。
// 单个指标的查询失败只会让该指标显示为“无数据”，不影响其余指标；
// 并发完成顺序不确定，返回前按 DisplayOrder 重新排序。
func (s *metricServiceImpl) aggregate(ctx context.Context, clientID uint64, resolved []*ResolvedMetric) (*dto.ClientMetricsDTO, error) {
	summaries := make([]*dto.MetricSummaryDTO, len(resolved))
	histories := make([]*dto.MetricHistoryDTO, len(resolved))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(aggregateConcurrency)

	for i, rm := range resolved {
		g.Go(func() error {
			summaries[i] = s.buildSummary(gCtx, clientID, rm)
			histories[i] = s.buildHistory(gCtx, clientID, rm)
			return nil
		})
	}
	// worker 永远返回 nil，这里的 Wait 只等待全部完成
	_ = g.Wait()

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DisplayOrder < summaries[j].DisplayOrder
	})
	sort.SliceStable(histories, func(i, j int) bool {
		return histories[i].DisplayOrder < histories[j].DisplayOrder
	})

	return &dto.ClientMetricsDTO{
		MetricsData:           summaries,
		MetricsHistoricalData: histories,
	}, nil
}

func (s *metricServiceImpl) buildSummary(ctx context.Context, clientID uint64, rm *ResolvedMetric) *dto.MetricSummaryDTO {
	summary := &dto.MetricSummaryDTO{
		ID:           rm.Definition.ID,
		Name:         rm.Definition.Name,
		Unit:         rm.Definition.Unit,
		DisplayOrder: rm.DisplayOrder,
	}

	latest, err := s.metricRepo.GetLatestValue(ctx, clientID, rm.Definition.ID)
	if err != nil {
		log.WarnContext(ctx, "failed to load latest metric value", "client_id", clientID, "metric_id", rm.Definition.ID, "err", err)
		return summary
	}
	if latest != nil {
		value := strconv.FormatFloat(latest.Value, 'f', -1, 64)
		lastUpdate := latest.RecordedAt.Format("Jan 2")
		summary.Value = &value
		summary.LastUpdate = &lastUpdate
	}
	return summary
}

func (s *metricServiceImpl) buildHistory(ctx context.Context, clientID uint64, rm *ResolvedMetric) *dto.MetricHistoryDTO {
	history := &dto.MetricHistoryDTO{
		ID:            rm.Definition.ID,
		Name:          rm.Definition.Name,
		Unit:          rm.Definition.Unit,
		Data:          make([]*dto.MetricPointDTO, 0),
		PercentChange: "0",
		DisplayOrder:  rm.DisplayOrder,
	}

	values, err := s.metricRepo.GetValueSeries(ctx, clientID, rm.Definition.ID)
	if err != nil {
		log.WarnContext(ctx, "failed to load metric series", "client_id", clientID, "metric_id", rm.Definition.ID, "err", err)
		return history
	}
	if len(values) == 0 {
		return history
	}

	for _, v := range values {
		history.Data = append(history.Data, &dto.MetricPointDTO{
			Date:  v.RecordedAt.Format("2006-01-02"),
			Value: v.Value,
		})
	}
	history.PercentChange = percentChange(values[0].Value, values[len(values)-1].Value)
	return history
}

// percentChange 首末涨跌幅。首值为 0 时除法没有意义，约定返回 "0"
func percentChange(first, last float64) string {
	if first == 0 {
		return "0"
	}
	change := (last - first) / first * 100
	return strconv.FormatFloat(change, 'f', 2, 64)
}

// SavePreferences 整体替换客户的指标偏好：先删后插，最后写入确认才算成功。
// 删除成功而插入失败会让客户短暂处于“无偏好”状态，由名称排序兜底。
func (s *metricServiceImpl) SavePreferences(ctx context.Context, coachID, clientID uint64, items []*dto.MetricPreferenceItemDTO) error {
	if err := s.checkOwnership(ctx, coachID, clientID); err != nil {
		return err
	}

	prefs := make([]*model.ClientMetricPreference, 0, len(items))
	for _, item := range items {
		isVisible := true
		if item.IsVisible != nil {
			isVisible = *item.IsVisible
		}
		prefs = append(prefs, &model.ClientMetricPreference{
			ClientID:     clientID,
			MetricID:     item.ID,
			DisplayOrder: item.DisplayOrder,
			IsVisible:    isVisible,
		})
	}

	if err := s.metricRepo.DeletePreferences(ctx, clientID); err != nil {
		log.ErrorContext(ctx, "failed to delete metric preferences", "client_id", clientID, "err", err)
		return ErrPreferenceDelete
	}
	if err := s.metricRepo.InsertPreferences(ctx, prefs); err != nil {
		log.ErrorContext(ctx, "failed to insert metric preferences", "client_id", clientID, "err", err)
		return ErrPreferenceInsert
	}
	return nil
}

func (s *metricServiceImpl) AddMetricValue(ctx context.Context, coachID, clientID, metricID uint64, value float64) error {
	if err := s.checkOwnership(ctx, coachID, clientID); err != nil {
		return err
	}

	definition, err := s.metricRepo.GetDefinition(ctx, metricID)
	if err != nil {
		return err
	}
	if definition == nil {
		return ErrMetricNotFound
	}

	return s.metricRepo.InsertValue(ctx, &model.MetricValue{
		ClientID:   clientID,
		MetricID:   metricID,
		Value:      value,
		RecordedAt: time.Now(),
	})
}

func (s *metricServiceImpl) checkOwnership(ctx context.Context, coachID, clientID uint64) error {
	client, err := s.clientRepo.GetClientOwned(ctx, clientID, coachID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	return nil
}
