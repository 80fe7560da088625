package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aiready/internal/model"
)

// InsightCache handles Redis storage of computed per-participant workflow
// insights so repeat reads skip recomputation.
type InsightCache interface {
	Get(ctx context.Context, assessmentID, participantID string) (*model.WorkflowInsights, error)
	Set(ctx context.Context, assessmentID string, insights *model.WorkflowInsights) error
	Invalidate(ctx context.Context, assessmentID, participantID string) error
}

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache creates a new insight cache
func NewInsightCache(client *redis.Client) InsightCache {
	return &insightCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *insightCache) key(assessmentID, participantID string) string {
	return fmt.Sprintf("assessment:%s:p:%s:insights", assessmentID, participantID)
}

func (c *insightCache) Get(ctx context.Context, assessmentID, participantID string) (*model.WorkflowInsights, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID, participantID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var insights model.WorkflowInsights
	if err := json.Unmarshal([]byte(data), &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (c *insightCache) Set(ctx context.Context, assessmentID string, insights *model.WorkflowInsights) error {
	data, err := json.Marshal(insights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessmentID, insights.ParticipantID), data, c.ttl).Err()
}

func (c *insightCache) Invalidate(ctx context.Context, assessmentID, participantID string) error {
	return c.client.Del(ctx, c.key(assessmentID, participantID)).Err()
}
