package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"aiready/internal/model"
)

// PeerCache maintains per-dimension running sums and counts across completed
// assessments, so radar peer comparisons come from real population data
// instead of synthesized variance. Each participant contributes once per
// dimension: recording again replaces the prior contribution instead of
// double counting it.
type PeerCache interface {
	// Record folds one participant's dimension percentages into the
	// running aggregates for an assessment.
	Record(ctx context.Context, assessmentID, participantID string, scores []model.DimensionScore) error
	// Averages returns dimension name -> mean percentage across all
	// recorded participants.
	Averages(ctx context.Context, assessmentID string) (map[string]float64, error)
}

type peerCache struct {
	client *redis.Client
}

// NewPeerCache creates a new peer-average cache
func NewPeerCache(client *redis.Client) PeerCache {
	return &peerCache{client: client}
}

func (c *peerCache) sumKey(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:peer:sum", assessmentID)
}

func (c *peerCache) countKey(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:peer:count", assessmentID)
}

func (c *peerCache) participantKey(assessmentID, participantID string) string {
	return fmt.Sprintf("assessment:%s:peer:p:%s", assessmentID, participantID)
}

// peerDelta is one dimension's adjustment to the running aggregates when a
// participant records or re-records a score.
type peerDelta struct {
	dimension      string
	percentage     int64
	sumDelta       int64
	newContributor bool
}

// peerDeltas diffs a participant's new percentages against their previous
// contribution, so a recompute shifts the running sum by the difference and
// leaves the contributor count alone.
func peerDeltas(previous map[string]string, scores []model.DimensionScore) []peerDelta {
	deltas := make([]peerDelta, 0, len(scores))
	for _, s := range scores {
		d := peerDelta{
			dimension:  s.Dimension,
			percentage: int64(s.Percentage),
			sumDelta:   int64(s.Percentage),
		}
		if prev, err := strconv.ParseInt(previous[s.Dimension], 10, 64); err == nil {
			d.sumDelta -= prev
		} else {
			d.newContributor = true
		}
		deltas = append(deltas, d)
	}
	return deltas
}

func (c *peerCache) Record(ctx context.Context, assessmentID, participantID string, scores []model.DimensionScore) error {
	previous, err := c.client.HGetAll(ctx, c.participantKey(assessmentID, participantID)).Result()
	if err != nil {
		return err
	}

	pipe := c.client.Pipeline()
	for _, d := range peerDeltas(previous, scores) {
		if d.sumDelta != 0 {
			pipe.HIncrBy(ctx, c.sumKey(assessmentID), d.dimension, d.sumDelta)
		}
		if d.newContributor {
			pipe.HIncrBy(ctx, c.countKey(assessmentID), d.dimension, 1)
		}
		pipe.HSet(ctx, c.participantKey(assessmentID, participantID), d.dimension, d.percentage)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (c *peerCache) Averages(ctx context.Context, assessmentID string) (map[string]float64, error) {
	sums, err := c.client.HGetAll(ctx, c.sumKey(assessmentID)).Result()
	if err != nil {
		return nil, err
	}
	counts, err := c.client.HGetAll(ctx, c.countKey(assessmentID)).Result()
	if err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(sums))
	for dim, rawSum := range sums {
		sum, err := strconv.ParseFloat(rawSum, 64)
		if err != nil {
			continue
		}
		count, err := strconv.ParseFloat(counts[dim], 64)
		if err != nil || count == 0 {
			continue
		}
		averages[dim] = sum / count
	}
	return averages, nil
}
