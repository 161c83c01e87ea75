package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aaryashetye/survey-API/internal/model"
)

// AnalysisCache handles Redis operations for computed map pins, which are
// expensive to rebuild from the full responses collection.
type AnalysisCache interface {
	GetPins(ctx context.Context, surveyID string) ([]model.MapPin, error)
	SetPins(ctx context.Context, surveyID string, pins []model.MapPin) error
	InvalidatePins(ctx context.Context, surveyID string) error
}

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a new analysis cache
func NewAnalysisCache(client *redis.Client) AnalysisCache {
	return &analysisCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *analysisCache) pinsKey(surveyID string) string {
	return fmt.Sprintf("analysis:%s:pins", surveyID)
}

func (c *analysisCache) GetPins(ctx context.Context, surveyID string) ([]model.MapPin, error) {
	data, err := c.client.Get(ctx, c.pinsKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pins []model.MapPin
	if err := json.Unmarshal([]byte(data), &pins); err != nil {
		return nil, err
	}
	return pins, nil
}

func (c *analysisCache) SetPins(ctx context.Context, surveyID string, pins []model.MapPin) error {
	data, err := json.Marshal(pins)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.pinsKey(surveyID), data, c.ttl).Err()
}

func (c *analysisCache) InvalidatePins(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.pinsKey(surveyID)).Err()
}
