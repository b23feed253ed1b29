package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Media — ссылка на объект во внешнем хранилище (Cloudinary)
type Media struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"index" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"index" json:"category"`
	CreatedBy   string    `json:"createdBy"`

	Poster Media `gorm:"embedded;embeddedPrefix:poster_" json:"poster"`

	// Связь один-ко-многим: у курса много лекций
	Lectures []Lecture `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"lectures,omitempty"`

	// Кеш длины Lectures, пересчитывается после каждой мутации списка
	NumOfVideos int `json:"numOfVideos"`
	Views       int `json:"views"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Lecture struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;index" json:"-"`

	Title       string `json:"title"`
	Description string `json:"description"`

	Video Media `gorm:"embedded;embeddedPrefix:video_" json:"video"`

	Position int `json:"-"` // для сортировки (1, 2, 3...)

	CreatedAt time.Time `json:"createdAt"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*Course, error)
	List(ctx context.Context) ([]Course, error)
	Save(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}
