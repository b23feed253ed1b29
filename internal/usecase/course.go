package usecase

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"courseplatform/internal/domain"
)

// CourseCache — кеш каталога курсов (Redis). Может быть nil.
type CourseCache interface {
	GetList(ctx context.Context) ([]domain.Course, bool)
	SetList(ctx context.Context, courses []domain.Course)
	InvalidateList(ctx context.Context)
}

type CourseUseCase struct {
	repo  domain.CourseRepository
	media domain.MediaStorage
	cache CourseCache
}

func NewCourseUseCase(repo domain.CourseRepository, media domain.MediaStorage, cache CourseCache) *CourseUseCase {
	return &CourseUseCase{
		repo:  repo,
		media: media,
		cache: cache,
	}
}

type CreateCourseInput struct {
	Title       string
	Description string
	Category    string
	CreatedBy   string
}

func (uc *CourseUseCase) Create(ctx context.Context, in CreateCourseInput, poster io.Reader) (*domain.Course, error) {
	if in.Title == "" || in.Description == "" || in.Category == "" || in.CreatedBy == "" {
		return nil, domain.NewValidation("Please add all fields")
	}

	uploaded, err := uc.media.Upload(ctx, poster, domain.ResourceImage)
	if err != nil {
		return nil, err
	}

	course := &domain.Course{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   in.CreatedBy,
		Poster:      uploaded,
		Lectures:    []domain.Lecture{},
		NumOfVideos: 0,
		Views:       0,
	}

	if err := uc.repo.Create(ctx, course); err != nil {
		// Постер уже загружен; откат не делаем, объект останется сиротой
		log.Printf("course create failed, orphaned poster %s: %v", uploaded.PublicID, err)
		return nil, err
	}

	uc.invalidate(ctx)
	return course, nil
}

func (uc *CourseUseCase) List(ctx context.Context) ([]domain.Course, error) {
	if uc.cache != nil {
		if courses, ok := uc.cache.GetList(ctx); ok {
			return courses, nil
		}
	}

	courses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetList(ctx, courses)
	}
	return courses, nil
}

// GetLectures возвращает лекции курса. Каждое чтение считается просмотром,
// поэтому счетчик инкрементится и сохраняется до ответа.
func (uc *CourseUseCase) GetLectures(ctx context.Context, courseID uuid.UUID) ([]domain.Lecture, error) {
	course, err := uc.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course.Views++
	if err := uc.repo.Save(ctx, course); err != nil {
		return nil, err
	}

	return course.Lectures, nil
}

func (uc *CourseUseCase) AddLecture(ctx context.Context, courseID uuid.UUID, title, description string, video io.Reader) (*domain.Course, error) {
	course, err := uc.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.media.Upload(ctx, video, domain.ResourceVideo)
	if err != nil {
		return nil, err
	}

	course.Lectures = append(course.Lectures, domain.Lecture{
		ID:          uuid.New(),
		CourseID:    course.ID,
		Title:       title,
		Description: description,
		Video:       uploaded,
		Position:    len(course.Lectures) + 1,
	})
	course.NumOfVideos = len(course.Lectures)

	if err := uc.repo.Save(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUseCase) RemoveLecture(ctx context.Context, courseID, lectureID uuid.UUID) error {
	course, err := uc.repo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	idx := -1
	for i, lecture := range course.Lectures {
		if lecture.ID == lectureID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.NewNotFound("Lecture not found")
	}

	if err := uc.media.Destroy(ctx, course.Lectures[idx].Video.PublicID, domain.ResourceVideo); err != nil {
		return err
	}

	course.Lectures = append(course.Lectures[:idx], course.Lectures[idx+1:]...)
	for i := range course.Lectures {
		course.Lectures[i].Position = i + 1
	}
	course.NumOfVideos = len(course.Lectures)

	return uc.repo.Save(ctx, course)
}

// Delete чистит внешнее хранилище (постер, затем видео по порядку),
// запись курса удаляется последней. Первая же ошибка удаления прерывает
// цепочку — запись остается и ссылается на недочищенное хранилище.
func (uc *CourseUseCase) Delete(ctx context.Context, courseID uuid.UUID) error {
	course, err := uc.repo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := uc.media.Destroy(ctx, course.Poster.PublicID, domain.ResourceImage); err != nil {
		return err
	}
	for _, lecture := range course.Lectures {
		if err := uc.media.Destroy(ctx, lecture.Video.PublicID, domain.ResourceVideo); err != nil {
			return err
		}
	}

	if err := uc.repo.Delete(ctx, courseID); err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *CourseUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateList(ctx)
	}
}
