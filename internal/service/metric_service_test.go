package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	owners map[uint64]uint64 // clientID -> coachID
}

func (f *fakeClientRepo) CreateClient(_ context.Context, client *model.Client) error {
	if f.owners == nil {
		f.owners = make(map[uint64]uint64)
	}
	client.ID = uint64(len(f.owners) + 1)
	f.owners[client.ID] = client.CoachID
	return nil
}

func (f *fakeClientRepo) GetClient(_ context.Context, id uint64) (*model.Client, error) {
	coachID, ok := f.owners[id]
	if !ok {
		return nil, nil
	}
	return &model.Client{ID: id, CoachID: coachID}, nil
}

func (f *fakeClientRepo) GetClientOwned(_ context.Context, id, coachID uint64) (*model.Client, error) {
	owner, ok := f.owners[id]
	if !ok || owner != coachID {
		return nil, nil
	}
	return &model.Client{ID: id, CoachID: coachID}, nil
}

func (f *fakeClientRepo) ListClients(_ context.Context, coachID uint64, _ *repository.ClientListFilter) ([]*model.Client, error) {
	clients := make([]*model.Client, 0)
	for id, owner := range f.owners {
		if owner == coachID {
			clients = append(clients, &model.Client{ID: id, CoachID: owner})
		}
	}
	return clients, nil
}

func (f *fakeClientRepo) UpdateClient(_ context.Context, _ *model.Client) error { return nil }
func (f *fakeClientRepo) DeleteClient(_ context.Context, id uint64) error {
	delete(f.owners, id)
	return nil
}

type fakeMetricRepo struct {
	mu sync.Mutex

	definitions    []*model.MetricDefinition
	definitionsErr error

	prefs    []*model.ClientMetricPreference
	prefsErr error

	latest    map[uint64]*model.MetricValue
	latestErr map[uint64]error
	series    map[uint64][]*model.MetricValue
	seriesErr map[uint64]error

	deleteErr error
	insertErr error

	deleteCalls    int
	insertedPrefs  []*model.ClientMetricPreference
	insertedValues []*model.MetricValue
}

func (f *fakeMetricRepo) GetAllDefinitions(_ context.Context) ([]*model.MetricDefinition, error) {
	return f.definitions, f.definitionsErr
}

func (f *fakeMetricRepo) GetDefinition(_ context.Context, id uint64) (*model.MetricDefinition, error) {
	for _, definition := range f.definitions {
		if definition.ID == id {
			return definition, nil
		}
	}
	return nil, nil
}

func (f *fakeMetricRepo) GetPreferences(_ context.Context, _ uint64) ([]*model.ClientMetricPreference, error) {
	return f.prefs, f.prefsErr
}

func (f *fakeMetricRepo) DeletePreferences(_ context.Context, _ uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls++
	f.prefs = nil
	return nil
}

func (f *fakeMetricRepo) InsertPreferences(_ context.Context, prefs []*model.ClientMetricPreference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.insertedPrefs = append(f.insertedPrefs, prefs...)
	f.prefs = append(f.prefs, prefs...)
	return nil
}

func (f *fakeMetricRepo) GetLatestValue(_ context.Context, _, metricID uint64) (*model.MetricValue, error) {
	if err := f.latestErr[metricID]; err != nil {
		return nil, err
	}
	return f.latest[metricID], nil
}

func (f *fakeMetricRepo) GetValueSeries(_ context.Context, _, metricID uint64) ([]*model.MetricValue, error) {
	if err := f.seriesErr[metricID]; err != nil {
		return nil, err
	}
	return f.series[metricID], nil
}

func (f *fakeMetricRepo) InsertValue(_ context.Context, value *model.MetricValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertedValues = append(f.insertedValues, value)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func metricDefs(names ...string) []*model.MetricDefinition {
	definitions := make([]*model.MetricDefinition, 0, len(names))
	for i, name := range names {
		definitions = append(definitions, &model.MetricDefinition{
			ID:   uint64(i + 1),
			Name: name,
			Unit: strPtr("kg"),
		})
	}
	return definitions
}

func TestResolveMetricsAlphabeticalFallback(t *testing.T) {
	definitions := metricDefs("Weight", "Body Fat %", "arm Circumference")

	resolved := ResolveMetrics(definitions, nil)

	require.Len(t, resolved, 3)
	assert.Equal(t, "arm Circumference", resolved[0].Definition.Name)
	assert.Equal(t, "Body Fat %", resolved[1].Definition.Name)
	assert.Equal(t, "Weight", resolved[2].Definition.Name)
	for _, rm := range resolved {
		assert.Equal(t, UnrankedOrderSentinel, rm.DisplayOrder)
	}
}

func TestResolveMetricsPreferenceOrderAndVisibility(t *testing.T) {
	definitions := metricDefs("Weight", "Body Fat %", "Steps")
	prefs := []*model.ClientMetricPreference{
		{MetricID: 3, DisplayOrder: 0, IsVisible: true},
		{MetricID: 1, DisplayOrder: 1, IsVisible: true},
		{MetricID: 2, DisplayOrder: 2, IsVisible: false},
	}

	resolved := ResolveMetrics(definitions, prefs)

	require.Len(t, resolved, 2)
	assert.Equal(t, "Steps", resolved[0].Definition.Name)
	assert.Equal(t, 0, resolved[0].DisplayOrder)
	assert.Equal(t, "Weight", resolved[1].Definition.Name)
	assert.Equal(t, 1, resolved[1].DisplayOrder)
}

func TestResolveMetricsDropsStalePreferences(t *testing.T) {
	definitions := metricDefs("Weight")
	prefs := []*model.ClientMetricPreference{
		{MetricID: 1, DisplayOrder: 1, IsVisible: true},
		// 引用了目录里已不存在的指标
		{MetricID: 42, DisplayOrder: 0, IsVisible: true},
	}

	resolved := ResolveMetrics(definitions, prefs)

	require.Len(t, resolved, 1)
	assert.Equal(t, uint64(1), resolved[0].Definition.ID)
}

func TestResolveMetricsEmptyCatalog(t *testing.T) {
	resolved := ResolveMetrics(nil, nil)
	assert.Empty(t, resolved)

	resolved = ResolveMetrics(nil, []*model.ClientMetricPreference{
		{MetricID: 1, DisplayOrder: 0, IsVisible: true},
	})
	assert.Empty(t, resolved)
}

func TestGetClientMetricsOwnership(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	svc := NewMetricService(&fakeMetricRepo{}, clientRepo)

	_, err := svc.GetClientMetrics(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.GetClientMetrics(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetClientMetricsCatalogError(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{definitionsErr: errors.New("db down")}
	svc := NewMetricService(metricRepo, clientRepo)

	_, err := svc.GetClientMetrics(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrMetricCatalog)
}

func TestGetClientMetricsAggregation(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{
		definitions: metricDefs("Weight", "Body Fat %"),
		prefs: []*model.ClientMetricPreference{
			{MetricID: 2, DisplayOrder: 0, IsVisible: true},
			{MetricID: 1, DisplayOrder: 1, IsVisible: true},
		},
		latest: map[uint64]*model.MetricValue{
			1: {MetricID: 1, Value: 140, RecordedAt: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)},
		},
		series: map[uint64][]*model.MetricValue{
			1: {
				{MetricID: 1, Value: 150, RecordedAt: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)},
				{MetricID: 1, Value: 155, RecordedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)},
				{MetricID: 1, Value: 140, RecordedAt: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)},
			},
		},
	}
	svc := NewMetricService(metricRepo, clientRepo)

	result, err := svc.GetClientMetrics(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.MetricsData, 2)
	require.Len(t, result.MetricsHistoricalData, 2)

	// 偏好顺序决定最终排序：Body Fat % 在前
	assert.Equal(t, "Body Fat %", result.MetricsData[0].Name)
	assert.Equal(t, "Weight", result.MetricsData[1].Name)

	// Body Fat % 没有任何记录
	assert.Nil(t, result.MetricsData[0].Value)
	assert.Nil(t, result.MetricsData[0].LastUpdate)
	assert.Equal(t, "0", result.MetricsHistoricalData[0].PercentChange)
	assert.Empty(t, result.MetricsHistoricalData[0].Data)

	// Weight 有完整序列
	weight := result.MetricsData[1]
	require.NotNil(t, weight.Value)
	assert.Equal(t, "140", *weight.Value)
	require.NotNil(t, weight.LastUpdate)
	assert.Equal(t, "Mar 15", *weight.LastUpdate)

	history := result.MetricsHistoricalData[1]
	require.Len(t, history.Data, 3)
	assert.Equal(t, "2026-01-02", history.Data[0].Date)
	assert.Equal(t, 150.0, history.Data[0].Value)
	assert.Equal(t, "-6.67", history.PercentChange)
}

func TestGetClientMetricsPartialFailure(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{
		definitions: metricDefs("Weight", "Steps"),
		latest: map[uint64]*model.MetricValue{
			1: {MetricID: 1, Value: 80, RecordedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		},
		series: map[uint64][]*model.MetricValue{
			1: {{MetricID: 1, Value: 80, RecordedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}},
		},
		latestErr: map[uint64]error{2: errors.New("timeout")},
		seriesErr: map[uint64]error{2: errors.New("timeout")},
	}
	svc := NewMetricService(metricRepo, clientRepo)

	result, err := svc.GetClientMetrics(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.MetricsData, 2)

	// 单个指标查询失败只表现为无数据，不影响其余指标
	for _, summary := range result.MetricsData {
		if summary.Name == "Steps" {
			assert.Nil(t, summary.Value)
		} else {
			require.NotNil(t, summary.Value)
			assert.Equal(t, "80", *summary.Value)
		}
	}
	for _, history := range result.MetricsHistoricalData {
		if history.Name == "Steps" {
			assert.Equal(t, "0", history.PercentChange)
			assert.Empty(t, history.Data)
		}
	}
}

func TestGetClientMetricsPreferenceErrorFallsBack(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{
		definitions: metricDefs("Weight", "Body Fat %"),
		prefsErr:    errors.New("redis down"),
	}
	svc := NewMetricService(metricRepo, clientRepo)

	result, err := svc.GetClientMetrics(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.MetricsData, 2)
	assert.Equal(t, "Body Fat %", result.MetricsData[0].Name)
	assert.Equal(t, "Weight", result.MetricsData[1].Name)
}

func TestSavePreferencesReplacesAll(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{
		prefs: []*model.ClientMetricPreference{
			{ClientID: 10, MetricID: 1, DisplayOrder: 0, IsVisible: true},
		},
	}
	svc := NewMetricService(metricRepo, clientRepo)

	items := []*dto.MetricPreferenceItemDTO{
		{ID: 2, DisplayOrder: 0, IsVisible: boolPtr(true)},
		{ID: 1, DisplayOrder: 1, IsVisible: boolPtr(false)},
		{ID: 3, DisplayOrder: 2}, // 缺省可见
	}
	err := svc.SavePreferences(context.Background(), 1, 10, items)
	require.NoError(t, err)

	assert.Equal(t, 1, metricRepo.deleteCalls)
	require.Len(t, metricRepo.insertedPrefs, 3)
	assert.Equal(t, uint64(2), metricRepo.insertedPrefs[0].MetricID)
	assert.True(t, metricRepo.insertedPrefs[0].IsVisible)
	assert.False(t, metricRepo.insertedPrefs[1].IsVisible)
	assert.True(t, metricRepo.insertedPrefs[2].IsVisible)
	for _, pref := range metricRepo.insertedPrefs {
		assert.Equal(t, uint64(10), pref.ClientID)
	}
}

func TestSavePreferencesIdempotent(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{}
	svc := NewMetricService(metricRepo, clientRepo)

	items := []*dto.MetricPreferenceItemDTO{
		{ID: 1, DisplayOrder: 0},
	}
	require.NoError(t, svc.SavePreferences(context.Background(), 1, 10, items))
	require.NoError(t, svc.SavePreferences(context.Background(), 1, 10, items))

	// 第二次保存先清空再重插，状态与一次保存一致
	require.Len(t, metricRepo.prefs, 1)
	assert.Equal(t, uint64(1), metricRepo.prefs[0].MetricID)
}

func TestSavePreferencesEmptyClearsAll(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{
		prefs: []*model.ClientMetricPreference{
			{ClientID: 10, MetricID: 1, DisplayOrder: 0, IsVisible: true},
		},
	}
	svc := NewMetricService(metricRepo, clientRepo)

	require.NoError(t, svc.SavePreferences(context.Background(), 1, 10, nil))
	assert.Empty(t, metricRepo.prefs)
}

func TestSavePreferencesErrorSignals(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}

	metricRepo := &fakeMetricRepo{deleteErr: errors.New("db down")}
	svc := NewMetricService(metricRepo, clientRepo)
	err := svc.SavePreferences(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, ErrPreferenceDelete)

	metricRepo = &fakeMetricRepo{insertErr: errors.New("db down")}
	svc = NewMetricService(metricRepo, clientRepo)
	err = svc.SavePreferences(context.Background(), 1, 10, []*dto.MetricPreferenceItemDTO{
		{ID: 1, DisplayOrder: 0},
	})
	assert.ErrorIs(t, err, ErrPreferenceInsert)
}

func TestSavePreferencesOwnership(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{}
	svc := NewMetricService(metricRepo, clientRepo)

	err := svc.SavePreferences(context.Background(), 2, 10, nil)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Zero(t, metricRepo.deleteCalls)
}

func TestAddMetricValue(t *testing.T) {
	clientRepo := &fakeClientRepo{owners: map[uint64]uint64{10: 1}}
	metricRepo := &fakeMetricRepo{definitions: metricDefs("Weight")}
	svc := NewMetricService(metricRepo, clientRepo)

	err := svc.AddMetricValue(context.Background(), 1, 10, 42, 81.5)
	assert.ErrorIs(t, err, ErrMetricNotFound)

	err = svc.AddMetricValue(context.Background(), 1, 10, 1, 81.5)
	require.NoError(t, err)
	require.Len(t, metricRepo.insertedValues, 1)
	inserted := metricRepo.insertedValues[0]
	assert.Equal(t, uint64(10), inserted.ClientID)
	assert.Equal(t, uint64(1), inserted.MetricID)
	assert.Equal(t, 81.5, inserted.Value)
	assert.False(t, inserted.RecordedAt.IsZero())
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, "0", percentChange(0, 100))
	assert.Equal(t, "-6.67", percentChange(150, 140))
	assert.Equal(t, "10.00", percentChange(100, 110))
	assert.Equal(t, "0.00", percentChange(100, 100))
}
