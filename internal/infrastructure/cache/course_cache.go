package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"courseplatform/internal/domain"
)

const courseListKey = "courses:list"

// CourseCache кеширует публичный каталог курсов.
// Список лекций не кешируем: его чтение — это еще и запись (счетчик просмотров).
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourseCache(client *redis.Client) *CourseCache {
	// Курсы добавляются не часто, 10 минут достаточно
	return &CourseCache{client: client, ttl: 10 * time.Minute}
}

func (c *CourseCache) GetList(ctx context.Context) ([]domain.Course, bool) {
	val, err := c.client.Get(ctx, courseListKey).Result()
	if err != nil {
		return nil, false
	}
	var courses []domain.Course
	if json.Unmarshal([]byte(val), &courses) != nil {
		return nil, false
	}
	return courses, true
}

func (c *CourseCache) SetList(ctx context.Context, courses []domain.Course) {
	if data, err := json.Marshal(courses); err == nil {
		c.client.Set(ctx, courseListKey, data, c.ttl)
	}
}

func (c *CourseCache) InvalidateList(ctx context.Context) {
	c.client.Del(ctx, courseListKey)
}
