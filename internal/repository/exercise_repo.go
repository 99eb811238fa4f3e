package repository

import (
	"TrainerHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ExerciseRepo interface {
	GetAllExercises(ctx context.Context) ([]*model.Exercise, error)
	GetExercise(ctx context.Context, id uint64) (*model.Exercise, error)
	GetUserExercises(ctx context.Context, coachID uint64) ([]*model.UserExercise, error)
	GetUserExercise(ctx context.Context, id, coachID uint64) (*model.UserExercise, error)
	CreateUserExercise(ctx context.Context, exercise *model.UserExercise) error
	UpdateUserExercise(ctx context.Context, exercise *model.UserExercise) error
	DeleteUserExercise(ctx context.Context, id, coachID uint64) error
}

type exerciseRepoImpl struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepo {
	return &exerciseRepoImpl{db: db}
}

func (s *exerciseRepoImpl) GetAllExercises(ctx context.Context) ([]*model.Exercise, error) {
	exercises := make([]*model.Exercise, 0)
	if err := s.db.WithContext(ctx).Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *exerciseRepoImpl) GetExercise(ctx context.Context, id uint64) (*model.Exercise, error) {
	var exercise model.Exercise
	err := s.db.WithContext(ctx).First(&exercise, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (s *exerciseRepoImpl) GetUserExercises(ctx context.Context, coachID uint64) ([]*model.UserExercise, error) {
	exercises := make([]*model.UserExercise, 0)
	err := s.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *exerciseRepoImpl) GetUserExercise(ctx context.Context, id, coachID uint64) (*model.UserExercise, error) {
	var exercise model.UserExercise
	err := s.db.WithContext(ctx).
		Where("id = ? AND coach_id = ?", id, coachID).
		First(&exercise).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (s *exerciseRepoImpl) CreateUserExercise(ctx context.Context, exercise *model.UserExercise) error {
	return s.db.WithContext(ctx).Create(exercise).Error
}

func (s *exerciseRepoImpl) UpdateUserExercise(ctx context.Context, exercise *model.UserExercise) error {
	return s.db.WithContext(ctx).Updates(exercise).Error
}

func (s *exerciseRepoImpl) DeleteUserExercise(ctx context.Context, id, coachID uint64) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND coach_id = ?", id, coachID).
		Delete(&model.UserExercise{}).Error
}
