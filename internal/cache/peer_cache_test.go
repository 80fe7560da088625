package cache

import (
	"strconv"
	"testing"

	"aiready/internal/model"
)

func pct(dimension string, percentage int) model.DimensionScore {
	return model.DimensionScore{Dimension: dimension, Percentage: percentage}
}

func TestPeerDeltasFirstContribution(t *testing.T) {
	deltas := peerDeltas(map[string]string{}, []model.DimensionScore{pct("AI Literacy", 80)})

	if len(deltas) != 1 {
		t.Fatalf("deltas = %d, want 1", len(deltas))
	}
	d := deltas[0]
	if d.sumDelta != 80 || !d.newContributor || d.percentage != 80 {
		t.Errorf("delta = %+v", d)
	}
}

func TestPeerDeltasRecomputeShiftsSumWithoutRecounting(t *testing.T) {
	previous := map[string]string{"AI Literacy": "80"}
	deltas := peerDeltas(previous, []model.DimensionScore{pct("AI Literacy", 30)})

	d := deltas[0]
	if d.sumDelta != -50 {
		t.Errorf("sumDelta = %d, want -50", d.sumDelta)
	}
	if d.newContributor {
		t.Error("recompute must not increment the contributor count")
	}
}

func TestPeerDeltasIdenticalRecomputeIsNeutral(t *testing.T) {
	previous := map[string]string{"Tool Adoption": "55"}
	deltas := peerDeltas(previous, []model.DimensionScore{pct("Tool Adoption", 55)})

	d := deltas[0]
	if d.sumDelta != 0 || d.newContributor {
		t.Errorf("delta = %+v, want neutral", d)
	}
}

// applyDeltas mirrors how Record's pipeline mutates the sum, count, and
// per-participant hashes.
func applyDeltas(sums, counts map[string]int64, contribution map[string]string, deltas []peerDelta) {
	for _, d := range deltas {
		sums[d.dimension] += d.sumDelta
		if d.newContributor {
			counts[d.dimension]++
		}
		contribution[d.dimension] = strconv.FormatInt(d.percentage, 10)
	}
}

func TestRecomputeDoesNotSkewPeerAverage(t *testing.T) {
	sums := map[string]int64{}
	counts := map[string]int64{}
	alice := map[string]string{}
	bob := map[string]string{}

	score := func(p int) []model.DimensionScore { return []model.DimensionScore{pct("AI Literacy", p)} }

	applyDeltas(sums, counts, alice, peerDeltas(alice, score(100)))
	applyDeltas(sums, counts, alice, peerDeltas(alice, score(100)))
	applyDeltas(sums, counts, bob, peerDeltas(bob, score(0)))

	if counts["AI Literacy"] != 2 {
		t.Fatalf("count = %d, want 2 distinct participants", counts["AI Literacy"])
	}
	if avg := float64(sums["AI Literacy"]) / float64(counts["AI Literacy"]); avg != 50 {
		t.Errorf("average = %v, want 50", avg)
	}

	// Alice revises her answers downward; the average follows her latest
	// contribution only.
	applyDeltas(sums, counts, alice, peerDeltas(alice, score(40)))
	if avg := float64(sums["AI Literacy"]) / float64(counts["AI Literacy"]); avg != 20 {
		t.Errorf("average after revision = %v, want 20", avg)
	}
}
