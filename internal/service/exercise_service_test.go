package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExerciseRepo struct {
	globals []*model.Exercise
	owned   map[uint64][]*model.UserExercise // coachID -> exercises
	nextID  uint64
}

func (f *fakeExerciseRepo) GetAllExercises(_ context.Context) ([]*model.Exercise, error) {
	return f.globals, nil
}

func (f *fakeExerciseRepo) GetExercise(_ context.Context, id uint64) (*model.Exercise, error) {
	for _, exercise := range f.globals {
		if exercise.ID == id {
			return exercise, nil
		}
	}
	return nil, nil
}

func (f *fakeExerciseRepo) GetUserExercises(_ context.Context, coachID uint64) ([]*model.UserExercise, error) {
	return f.owned[coachID], nil
}

func (f *fakeExerciseRepo) GetUserExercise(_ context.Context, id, coachID uint64) (*model.UserExercise, error) {
	for _, exercise := range f.owned[coachID] {
		if exercise.ID == id {
			return exercise, nil
		}
	}
	return nil, nil
}

func (f *fakeExerciseRepo) CreateUserExercise(_ context.Context, exercise *model.UserExercise) error {
	if f.owned == nil {
		f.owned = make(map[uint64][]*model.UserExercise)
	}
	f.nextID++
	exercise.ID = f.nextID
	f.owned[exercise.CoachID] = append(f.owned[exercise.CoachID], exercise)
	return nil
}

func (f *fakeExerciseRepo) UpdateUserExercise(_ context.Context, exercise *model.UserExercise) error {
	for i, existing := range f.owned[exercise.CoachID] {
		if existing.ID == exercise.ID {
			f.owned[exercise.CoachID][i] = exercise
		}
	}
	return nil
}

func (f *fakeExerciseRepo) DeleteUserExercise(_ context.Context, id, coachID uint64) error {
	kept := make([]*model.UserExercise, 0)
	for _, exercise := range f.owned[coachID] {
		if exercise.ID != id {
			kept = append(kept, exercise)
		}
	}
	f.owned[coachID] = kept
	return nil
}

func seedExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		globals: []*model.Exercise{
			{
				ID: 1, Name: "Barbell Squat", Status: "active",
				Equipments: []string{"Barbell"}, TargetMuscles: []string{"Quads"}, BodyParts: []string{"Legs"},
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID: 2, Name: "Push Up", Status: "active",
				Equipments: []string{"Bodyweight"}, TargetMuscles: []string{"Chest"}, BodyParts: []string{"Chest"},
				CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		owned: map[uint64][]*model.UserExercise{
			1: {
				{
					ID: 100, CoachID: 1, Name: "Banded Squat", Status: "active", IsCustom: true,
					Equipments: []string{"Band", "barbell"}, TargetMuscles: []string{"Quads"}, BodyParts: []string{"Legs"},
					CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		nextID: 100,
	}
}

func TestListExercisesMergesGlobalAndOwned(t *testing.T) {
	svc := NewExerciseService(seedExerciseRepo())

	exercises, err := svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{})
	require.NoError(t, err)
	require.Len(t, exercises, 3)

	// 默认按名称排序
	assert.Equal(t, "Banded Squat", exercises[0].Name)
	assert.True(t, exercises[0].IsUserExercise)
	assert.True(t, exercises[0].IsCustom)
	assert.Equal(t, "Barbell Squat", exercises[1].Name)
	assert.False(t, exercises[1].IsUserExercise)

	// 其他教练看不到自建动作
	exercises, err = svc.ListExercises(context.Background(), 2, &dto.ExerciseListFilterDTO{})
	require.NoError(t, err)
	assert.Len(t, exercises, 2)
}

func TestListExercisesFilters(t *testing.T) {
	svc := NewExerciseService(seedExerciseRepo())

	// 器材过滤不区分大小写
	exercises, err := svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{Equipments: "barbell"})
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	exercises, err = svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{BodyParts: "Chest"})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Push Up", exercises[0].Name)

	exercises, err = svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{IsCustom: "true"})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Banded Squat", exercises[0].Name)

	// 多词搜索需全部命中
	exercises, err = svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{Search: "squat band"})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Banded Squat", exercises[0].Name)

	exercises, err = svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{Search: "squat nosuchword"})
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestListExercisesSorting(t *testing.T) {
	svc := NewExerciseService(seedExerciseRepo())

	exercises, err := svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{SortBy: "created_at", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "Banded Squat", exercises[0].Name)
	assert.Equal(t, "Barbell Squat", exercises[2].Name)

	exercises, err = svc.ListExercises(context.Background(), 1, &dto.ExerciseListFilterDTO{SortBy: "is_custom", Order: "desc"})
	require.NoError(t, err)
	assert.True(t, exercises[0].IsCustom)
}

func TestExerciseCRUD(t *testing.T) {
	repo := seedExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, 1, &dto.CreateExerciseDTO{
		Name:       "Goblet Squat",
		Equipments: []string{"Dumbbell"},
	})
	require.NoError(t, err)
	assert.True(t, created.IsCustom)
	assert.Equal(t, "active", created.Status)

	updated, err := svc.UpdateExercise(ctx, 1, created.ID, &dto.UpdateExerciseDTO{
		Name: strPtr("Goblet Squat Tempo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat Tempo", updated.Name)
	assert.Equal(t, []string{"Dumbbell"}, updated.Equipments)

	// 非属主更新视为不存在
	_, err = svc.UpdateExercise(ctx, 2, created.ID, &dto.UpdateExerciseDTO{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	err = svc.DeleteExercise(ctx, 1, created.ID)
	require.NoError(t, err)
	_, err = svc.GetExercise(ctx, 1, created.ID, true)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	// 全局动作仍可读取
	global, err := svc.GetExercise(ctx, 1, 1, false)
	require.NoError(t, err)
	assert.False(t, global.IsUserExercise)
}

func TestExerciseFacets(t *testing.T) {
	svc := NewExerciseService(seedExerciseRepo())
	ctx := context.Background()

	equipment, err := svc.ListEquipment(ctx, 1)
	require.NoError(t, err)
	// "Barbell" 与 "barbell" 去重后只保留一个
	assert.Equal(t, []string{"Band", "Barbell", "Bodyweight"}, equipment)

	bodyParts, err := svc.ListBodyParts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chest", "Legs"}, bodyParts)

	muscles, err := svc.ListMuscleGroups(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chest", "Quads"}, muscles)
}
