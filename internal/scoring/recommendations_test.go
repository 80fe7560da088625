package scoring

import (
	"testing"

	"aiready/internal/model"
)

func dims(percentages map[string]int) []model.DimensionScore {
	scores := make([]model.DimensionScore, 0, len(percentages))
	for name, pct := range percentages {
		scores = append(scores, model.DimensionScore{Dimension: name, Percentage: pct})
	}
	return scores
}

func TestRecommendationCountBounds(t *testing.T) {
	cases := []map[string]int{
		{},
		{"A": 90},
		{"A": 10, "B": 20, "C": 30, "D": 50, "E": 55},
		{"Prompting Proficiency": 0, "AI Literacy": 0, "Tool Adoption": 0, "Data Practices": 0},
	}

	for _, c := range cases {
		recs := GenerateRecommendations(dims(c))
		if len(recs) < 1 || len(recs) > 4 {
			t.Errorf("recommendation count %d out of [1,4] for %v", len(recs), c)
		}
	}
}

func TestOverallTierSelection(t *testing.T) {
	tests := []struct {
		name string
		pcts map[string]int
		want string
	}{
		{"foundational below 40", map[string]int{"A": 39}, overallRecommendations["foundational"]},
		{"practical at 40", map[string]int{"A": 40}, overallRecommendations["practical"]},
		{"practical at 69", map[string]int{"A": 69}, overallRecommendations["practical"]},
		{"advanced at 70", map[string]int{"A": 70}, overallRecommendations["advanced"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := GenerateRecommendations(dims(tt.pcts))
			if recs[0] != tt.want {
				t.Errorf("overall message = %q, want %q", recs[0], tt.want)
			}
		})
	}
}

func TestDimensionMessagesAscendingAndCapped(t *testing.T) {
	scores := []model.DimensionScore{
		{Dimension: "AI Literacy", Percentage: 55},
		{Dimension: "Prompting Proficiency", Percentage: 10},
		{Dimension: "Tool Adoption", Percentage: 30},
		{Dimension: "Data Practices", Percentage: 45},
		{Dimension: "Workflow Automation", Percentage: 80},
	}

	recs := GenerateRecommendations(scores)
	if len(recs) != 4 {
		t.Fatalf("recommendations = %d, want 4 (overall + 3)", len(recs))
	}

	want := []string{
		dimensionRecommendations[recommendationKey{"Prompting Proficiency", severityLow}],
		dimensionRecommendations[recommendationKey{"Tool Adoption", severityLow}],
		dimensionRecommendations[recommendationKey{"Data Practices", severityMedium}],
	}
	for i, w := range want {
		if recs[i+1] != w {
			t.Errorf("rec[%d] = %q, want %q", i+1, recs[i+1], w)
		}
	}
}

func TestHealthyDimensionGetsNoMessage(t *testing.T) {
	recs := GenerateRecommendations(dims(map[string]int{"A": 60, "B": 75}))
	if len(recs) != 1 {
		t.Errorf("recommendations = %d, want only the overall message", len(recs))
	}
}

func TestUnknownDimensionFallsBackToGeneric(t *testing.T) {
	recs := GenerateRecommendations(dims(map[string]int{"Quantum Intuition": 20}))
	if len(recs) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(recs))
	}
	if recs[1] != genericRecommendation("Quantum Intuition", severityLow) {
		t.Errorf("generic fallback not used: %q", recs[1])
	}
}
