package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
)

// CatalogSource is the read side of the course catalog being cached.
type CatalogSource interface {
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error)
}

// Catalog is a read-through redis cache over the read-only course/lesson
// reference data. Cache trouble is logged and falls back to the database;
// it never surfaces to the caller.
type Catalog struct {
	source CatalogSource
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCatalog(source CatalogSource, client *redis.Client, ttl time.Duration, log zerolog.Logger) *Catalog {
	return &Catalog{
		source: source,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *Catalog) GetCourse(ctx context.Context, id string) (models.Course, error) {
	key := "catalog:course:" + id

	var course models.Course
	if ok := c.lookup(ctx, key, &course); ok {
		return course, nil
	}

	course, err := c.source.GetCourse(ctx, id)
	if err != nil {
		return models.Course{}, err
	}

	c.store(ctx, key, course)
	return course, nil
}

func (c *Catalog) ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	key := "catalog:lessons:" + courseID

	var lessons []models.Lesson
	if ok := c.lookup(ctx, key, &lessons); ok {
		return lessons, nil
	}

	lessons, err := c.source.ListLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, lessons)
	return lessons, nil
}

func (c *Catalog) lookup(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt")
		return false
	}
	return true
}

func (c *Catalog) store(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

var _ CatalogSource = (*repository.CourseRepository)(nil)
