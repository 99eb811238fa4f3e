package repository

import (
	"TrainerHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ClientListFilter 客户列表的筛选与排序条件
type ClientListFilter struct {
	Category string
	Status   string
	Search   string
	SortBy   string
	Order    string
}

// 可用于排序的列白名单，避免把任意入参拼进 ORDER BY
var clientSortColumns = map[string]string{
	"name":        "name",
	"status":      "status",
	"client_type": "client_type",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type ClientRepo interface {
	CreateClient(ctx context.Context, client *model.Client) error
	GetClient(ctx context.Context, id uint64) (*model.Client, error)
	GetClientOwned(ctx context.Context, id, coachID uint64) (*model.Client, error)
	ListClients(ctx context.Context, coachID uint64, filter *ClientListFilter) ([]*model.Client, error)
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, id uint64) error
}

type clientRepoImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepo {
	return &clientRepoImpl{db: db}
}

func (s *clientRepoImpl) CreateClient(ctx context.Context, client *model.Client) error {
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *clientRepoImpl) GetClient(ctx context.Context, id uint64) (*model.Client, error) {
	var client model.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (s *clientRepoImpl) GetClientOwned(ctx context.Context, id, coachID uint64) (*model.Client, error) {
	var client model.Client
	err := s.db.WithContext(ctx).
		Where("id = ? AND coach_id = ?", id, coachID).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (s *clientRepoImpl) ListClients(ctx context.Context, coachID uint64, filter *ClientListFilter) ([]*model.Client, error) {
	clients := make([]*model.Client, 0)

	query := s.db.WithContext(ctx).Where("coach_id = ?", coachID)

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("client_type = ?", filter.Category)
	}
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	sortColumn, ok := clientSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "updated_at"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}

	if err := query.Order(sortColumn + " " + direction).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientRepoImpl) UpdateClient(ctx context.Context, client *model.Client) error {
	return s.db.WithContext(ctx).Updates(client).Error
}

func (s *clientRepoImpl) DeleteClient(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}
