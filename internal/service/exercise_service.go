package service

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/model"
	"TrainerHub/internal/pkg/consts"
	"TrainerHub/internal/repository"
	"context"
	"sort"
	"strings"
)

type ExerciseService interface {
	ListExercises(ctx context.Context, coachID uint64, filter *dto.ExerciseListFilterDTO) ([]*dto.ExerciseDTO, error)
	GetExercise(ctx context.Context, coachID, exerciseID uint64, isCustom bool) (*dto.ExerciseDTO, error)
	CreateExercise(ctx context.Context, coachID uint64, createDTO *dto.CreateExerciseDTO) (*dto.ExerciseDTO, error)
	UpdateExercise(ctx context.Context, coachID, exerciseID uint64, updateDTO *dto.UpdateExerciseDTO) (*dto.ExerciseDTO, error)
	DeleteExercise(ctx context.Context, coachID, exerciseID uint64) error
	ListBodyParts(ctx context.Context, coachID uint64) ([]string, error)
	ListMuscleGroups(ctx context.Context, coachID uint64) ([]string, error)
	ListEquipment(ctx context.Context, coachID uint64) ([]string, error)
}

type exerciseServiceImpl struct {
	exerciseRepo repository.ExerciseRepo
}

func NewExerciseService(exerciseRepo repository.ExerciseRepo) ExerciseService {
	return &exerciseServiceImpl{exerciseRepo: exerciseRepo}
}

func (s *exerciseServiceImpl) ListExercises(ctx context.Context, coachID uint64, filter *dto.ExerciseListFilterDTO) ([]*dto.ExerciseDTO, error) {
	merged, err := s.mergedExercises(ctx, coachID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ExerciseDTO, 0, len(merged))
	for _, exercise := range merged {
		if matchExerciseFilter(exercise, filter) {
			result = append(result, exercise)
		}
	}

	sortExercises(result, filter.SortBy, filter.Order)
	return result, nil
}

// mergedExercises 汇总全局动作与当前教练的自建动作
func (s *exerciseServiceImpl) mergedExercises(ctx context.Context, coachID uint64) ([]*dto.ExerciseDTO, error) {
	globals, err := s.exerciseRepo.GetAllExercises(ctx)
	if err != nil {
		return nil, err
	}
	owned, err := s.exerciseRepo.GetUserExercises(ctx, coachID)
	if err != nil {
		return nil, err
	}

	merged := make([]*dto.ExerciseDTO, 0, len(globals)+len(owned))
	for _, exercise := range globals {
		merged = append(merged, globalExerciseDTO(exercise))
	}
	for _, exercise := range owned {
		merged = append(merged, userExerciseDTO(exercise))
	}
	return merged, nil
}

func globalExerciseDTO(exercise *model.Exercise) *dto.ExerciseDTO {
	return &dto.ExerciseDTO{
		ID:             exercise.ID,
		Name:           exercise.Name,
		GifURL:         exercise.GifURL,
		ThumbnailURL:   exercise.ThumbnailURL,
		Equipments:     exercise.Equipments,
		TargetMuscles:  exercise.TargetMuscles,
		BodyParts:      exercise.BodyParts,
		Instructions:   exercise.Instructions,
		Status:         exercise.Status,
		IsCustom:       false,
		IsUserExercise: false,
		CreatedAt:      exercise.CreatedAt,
		UpdatedAt:      exercise.UpdatedAt,
	}
}

func userExerciseDTO(exercise *model.UserExercise) *dto.ExerciseDTO {
	return &dto.ExerciseDTO{
		ID:             exercise.ID,
		BaseExerciseID: exercise.BaseExerciseID,
		Name:           exercise.Name,
		GifURL:         exercise.GifURL,
		ThumbnailURL:   exercise.ThumbnailURL,
		Equipments:     exercise.Equipments,
		TargetMuscles:  exercise.TargetMuscles,
		BodyParts:      exercise.BodyParts,
		Instructions:   exercise.Instructions,
		Status:         exercise.Status,
		IsCustom:       exercise.IsCustom,
		IsUserExercise: true,
		CreatedAt:      exercise.CreatedAt,
		UpdatedAt:      exercise.UpdatedAt,
	}
}

func matchExerciseFilter(exercise *dto.ExerciseDTO, filter *dto.ExerciseListFilterDTO) bool {
	if filter == nil {
		return true
	}
	if filter.Status != "" && !strings.EqualFold(exercise.Status, filter.Status) {
		return false
	}
	if filter.IsCustom != "" {
		wantCustom := filter.IsCustom == "true"
		if exercise.IsCustom != wantCustom {
			return false
		}
	}
	if !containsAnyFold(exercise.Equipments, splitCSV(filter.Equipments)) {
		return false
	}
	if !containsAnyFold(exercise.TargetMuscles, splitCSV(filter.TargetMuscles)) {
		return false
	}
	if !containsAnyFold(exercise.BodyParts, splitCSV(filter.BodyParts)) {
		return false
	}
	return matchSearchTerms(exercise, filter.Search)
}

// matchSearchTerms 多词搜索，每个词都要命中名称或任一标签
func matchSearchTerms(exercise *dto.ExerciseDTO, search string) bool {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return true
	}

	haystack := strings.ToLower(exercise.Name)
	for _, tags := range [][]string{exercise.Equipments, exercise.TargetMuscles, exercise.BodyParts} {
		for _, tag := range tags {
			haystack += " " + strings.ToLower(tag)
		}
	}

	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// containsAnyFold wanted 为空视为不过滤
func containsAnyFold(tags []string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, want := range wanted {
		for _, tag := range tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}

func sortExercises(exercises []*dto.ExerciseDTO, sortBy, order string) {
	descending := strings.EqualFold(order, "desc")
	less := func(a, b *dto.ExerciseDTO) bool {
		switch sortBy {
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		case "updated_at":
			return a.UpdatedAt.Before(b.UpdatedAt)
		case "is_custom":
			return !a.IsCustom && b.IsCustom
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(exercises, func(i, j int) bool {
		if descending {
			return less(exercises[j], exercises[i])
		}
		return less(exercises[i], exercises[j])
	})
}

func (s *exerciseServiceImpl) GetExercise(ctx context.Context, coachID, exerciseID uint64, isCustom bool) (*dto.ExerciseDTO, error) {
	if isCustom {
		exercise, err := s.exerciseRepo.GetUserExercise(ctx, exerciseID, coachID)
		if err != nil {
			return nil, err
		}
		if exercise == nil {
			return nil, ErrExerciseNotFound
		}
		return userExerciseDTO(exercise), nil
	}

	exercise, err := s.exerciseRepo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}
	return globalExerciseDTO(exercise), nil
}

func (s *exerciseServiceImpl) CreateExercise(ctx context.Context, coachID uint64, createDTO *dto.CreateExerciseDTO) (*dto.ExerciseDTO, error) {
	exercise := &model.UserExercise{
		CoachID:        coachID,
		BaseExerciseID: createDTO.BaseExerciseID,
		Name:           createDTO.Name,
		GifURL:         createDTO.GifURL,
		ThumbnailURL:   createDTO.ThumbnailURL,
		Equipments:     createDTO.Equipments,
		TargetMuscles:  createDTO.TargetMuscles,
		BodyParts:      createDTO.BodyParts,
		Instructions:   createDTO.Instructions,
		Status:         consts.ExerciseStatusActive,
		IsCustom:       true,
	}
	if err := s.exerciseRepo.CreateUserExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return userExerciseDTO(exercise), nil
}

func (s *exerciseServiceImpl) UpdateExercise(ctx context.Context, coachID, exerciseID uint64, updateDTO *dto.UpdateExerciseDTO) (*dto.ExerciseDTO, error) {
	exercise, err := s.exerciseRepo.GetUserExercise(ctx, exerciseID, coachID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	if updateDTO.Name != nil {
		exercise.Name = *updateDTO.Name
	}
	if updateDTO.GifURL != nil {
		exercise.GifURL = updateDTO.GifURL
	}
	if updateDTO.ThumbnailURL != nil {
		exercise.ThumbnailURL = updateDTO.ThumbnailURL
	}
	if updateDTO.Equipments != nil {
		exercise.Equipments = updateDTO.Equipments
	}
	if updateDTO.TargetMuscles != nil {
		exercise.TargetMuscles = updateDTO.TargetMuscles
	}
	if updateDTO.BodyParts != nil {
		exercise.BodyParts = updateDTO.BodyParts
	}
	if updateDTO.Instructions != nil {
		exercise.Instructions = updateDTO.Instructions
	}
	if updateDTO.Status != nil {
		exercise.Status = *updateDTO.Status
	}

	if err = s.exerciseRepo.UpdateUserExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return userExerciseDTO(exercise), nil
}

func (s *exerciseServiceImpl) DeleteExercise(ctx context.Context, coachID, exerciseID uint64) error {
	exercise, err := s.exerciseRepo.GetUserExercise(ctx, exerciseID, coachID)
	if err != nil {
		return err
	}
	if exercise == nil {
		return ErrExerciseNotFound
	}
	return s.exerciseRepo.DeleteUserExercise(ctx, exercise.ID, coachID)
}

func (s *exerciseServiceImpl) ListBodyParts(ctx context.Context, coachID uint64) ([]string, error) {
	return s.distinctTags(ctx, coachID, func(e *dto.ExerciseDTO) []string { return e.BodyParts })
}

func (s *exerciseServiceImpl) ListMuscleGroups(ctx context.Context, coachID uint64) ([]string, error) {
	return s.distinctTags(ctx, coachID, func(e *dto.ExerciseDTO) []string { return e.TargetMuscles })
}

func (s *exerciseServiceImpl) ListEquipment(ctx context.Context, coachID uint64) ([]string, error) {
	return s.distinctTags(ctx, coachID, func(e *dto.ExerciseDTO) []string { return e.Equipments })
}

func (s *exerciseServiceImpl) distinctTags(ctx context.Context, coachID uint64, pick func(*dto.ExerciseDTO) []string) ([]string, error) {
	merged, err := s.mergedExercises(ctx, coachID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, exercise := range merged {
		for _, tag := range pick(exercise) {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			values = append(values, tag)
		}
	}
	sort.Slice(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values, nil
}
