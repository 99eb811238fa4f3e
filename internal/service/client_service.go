package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/pkg/consts"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

type ClientService interface {
	ListClients(ctx context.Context, coachID uint64, filter *repository.ClientListFilter) ([]*dto.ClientRowDTO, error)
	CreateClient(ctx context.Context, coachID uint64, createDTO *dto.CreateClientDTO) (*model.Client, error)
	GetClient(ctx context.Context, coachID, clientID uint64) (*model.Client, error)
	UpdateClient(ctx context.Context, coachID, clientID uint64, updateDTO *dto.UpdateClientDTO) (*model.Client, error)
	DeleteClient(ctx context.Context, coachID, clientID uint64) error
}

type clientServiceImpl struct {
	clientRepo repository.ClientRepo
	metricRepo repository.MetricRepo
}

func NewClientService(clientRepo repository.ClientRepo, metricRepo repository.MetricRepo) ClientService {
	return &clientServiceImpl{
		clientRepo: clientRepo,
		metricRepo: metricRepo,
	}
}

func (s *clientServiceImpl) ListClients(ctx context.Context, coachID uint64, filter *repository.ClientListFilter) ([]*dto.ClientRowDTO, error) {
	clients, err := s.clientRepo.ListClients(ctx, coachID, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := make([]*dto.ClientRowDTO, 0, len(clients))
	for _, client := range clients {
		category := client.ClientType
		if category == "" {
			category = consts.ClientTypeOnline
		}
		status := client.Status
		if status == "" {
			status = consts.ClientStatusConnected
		}

		rows = append(rows, &dto.ClientRowDTO{
			ID:              client.ID,
			Name:            client.Name,
			Demo:            strings.Contains(client.Name, "Demo"),
			LastActivity:    util.FormatTimeAgo(client.UpdatedAt, now),
			LastTraining7d:  client.LastTrainingCompletion,
			LastTraining30d: client.LastTraining30dCompletion,
			LastTasks7d:     client.LastTaskCompletion,
			Category:        category,
			Status:          status,
			Avatar:          client.AvatarURL,
		})
	}
	return rows, nil
}

func (s *clientServiceImpl) CreateClient(ctx context.Context, coachID uint64, createDTO *dto.CreateClientDTO) (*model.Client, error) {
	clientType := createDTO.ClientType
	if clientType == "" {
		clientType = consts.ClientTypeOnline
	}

	client := &model.Client{
		CoachID:    coachID,
		Name:       strings.TrimSpace(createDTO.FirstName + " " + createDTO.LastName),
		FirstName:  createDTO.FirstName,
		LastName:   createDTO.LastName,
		Email:      createDTO.Email,
		ClientType: clientType,
		Status:     consts.ClientStatusConnected,
		AssignedTo: createDTO.AssignedTo,
	}
	if err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	// 指标初始顺序只是附带项，写入失败不回滚客户本身
	if len(createDTO.OrderedMetricIds) > 0 {
		prefs := make([]*model.ClientMetricPreference, 0, len(createDTO.OrderedMetricIds))
		for index, metricID := range createDTO.OrderedMetricIds {
			prefs = append(prefs, &model.ClientMetricPreference{
				ClientID:     client.ID,
				MetricID:     metricID,
				DisplayOrder: index,
				IsVisible:    true,
			})
		}
		if err := s.metricRepo.InsertPreferences(ctx, prefs); err != nil {
			log.ErrorContext(ctx, "failed to seed metric preferences for new client", "client_id", client.ID, "err", err)
		}
	}

	return client, nil
}

func (s *clientServiceImpl) GetClient(ctx context.Context, coachID, clientID uint64) (*model.Client, error) {
	client, err := s.clientRepo.GetClientOwned(ctx, clientID, coachID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *clientServiceImpl) UpdateClient(ctx context.Context, coachID, clientID uint64, updateDTO *dto.UpdateClientDTO) (*model.Client, error) {
	client, err := s.GetClient(ctx, coachID, clientID)
	if err != nil {
		return nil, err
	}

	if updateDTO.FirstName != nil {
		client.FirstName = *updateDTO.FirstName
	}
	if updateDTO.LastName != nil {
		client.LastName = *updateDTO.LastName
	}
	if updateDTO.FirstName != nil || updateDTO.LastName != nil {
		client.Name = strings.TrimSpace(client.FirstName + " " + client.LastName)
	}
	if updateDTO.Email != nil {
		client.Email = updateDTO.Email
	}
	if updateDTO.ClientType != nil {
		client.ClientType = *updateDTO.ClientType
	}
	if updateDTO.Status != nil {
		client.Status = *updateDTO.Status
	}
	if updateDTO.AvatarURL != nil {
		client.AvatarURL = updateDTO.AvatarURL
	}
	if updateDTO.AssignedTo != nil {
		client.AssignedTo = updateDTO.AssignedTo
	}
	client.UpdatedAt = time.Now()

	if err = s.clientRepo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientServiceImpl) DeleteClient(ctx context.Context, coachID, clientID uint64) error {
	client, err := s.GetClient(ctx, coachID, clientID)
	if err != nil {
		return err
	}
	return s.clientRepo.DeleteClient(ctx, client.ID)
}
