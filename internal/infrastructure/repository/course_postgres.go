package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseplatform/internal/domain"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

var _ domain.CourseRepository = (*CourseRepository)(nil)

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Preload("Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Course not found")
		}
		return nil, err
	}
	return &course, nil
}

// List отдает курсы без лекций (каталог)
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&courses).Error
	return courses, err
}

// Save сохраняет агрегат целиком: курс вместе с лекциями.
// Лекции, которых больше нет в course.Lectures, удаляются из БД.
func (r *CourseRepository) Save(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(course.Lectures))
		for _, lecture := range course.Lectures {
			keep = append(keep, lecture.ID)
		}

		stale := tx.Where("course_id = ?", course.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&domain.Lecture{}).Error; err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(course).Error
	})
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Lectures").Delete(&domain.Course{ID: id}).Error
}
