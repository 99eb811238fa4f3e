package repository

import (
	"TrainerHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CoachRepo interface {
	CreateCoach(ctx context.Context, coach *model.Coach) error
	GetCoachByID(ctx context.Context, id uint64) (*model.Coach, error)
	GetCoachByEmail(ctx context.Context, email string) (*model.Coach, error)
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
}

type coachRepoImpl struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) CoachRepo {
	return &coachRepoImpl{db: db}
}

func (s *coachRepoImpl) CreateCoach(ctx context.Context, coach *model.Coach) error {
	return s.db.WithContext(ctx).Create(coach).Error
}

func (s *coachRepoImpl) GetCoachByID(ctx context.Context, id uint64) (*model.Coach, error) {
	var coach model.Coach
	err := s.db.WithContext(ctx).First(&coach, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coach, nil
}

func (s *coachRepoImpl) GetCoachByEmail(ctx context.Context, email string) (*model.Coach, error) {
	var coach model.Coach
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coach, nil
}

func (s *coachRepoImpl) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	return s.db.WithContext(ctx).Model(&model.Coach{}).Where("id = ?", id).Update("password", passwordHash).Error
}
