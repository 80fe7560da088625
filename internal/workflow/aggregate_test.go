package workflow

import (
	"testing"

	"aiready/internal/model"
)

func opp(process, dept string, potential float64, roiScore int) model.WorkflowOpportunity {
	return model.WorkflowOpportunity{
		Name:                titleCase(process),
		Process:             process,
		Department:          dept,
		AutomationPotential: potential,
		ROIScore:            roiScore,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	summary := AggregateInsights(nil)

	if summary.Participants != 0 {
		t.Errorf("participants = %d, want 0", summary.Participants)
	}
	if summary.AvgAutomationPotential != 0 {
		t.Errorf("avg potential = %d, want 0", summary.AvgAutomationPotential)
	}
	if summary.TopOpportunities == nil || summary.DepartmentBreakdown == nil {
		t.Errorf("slices must be empty, not nil: %+v", summary)
	}
}

func TestAggregateMeanAutomationPotential(t *testing.T) {
	summary := AggregateInsights([]*model.WorkflowInsights{
		{AutomationPotential: 40},
		{AutomationPotential: 60},
	})

	if summary.Participants != 2 {
		t.Errorf("participants = %d, want 2", summary.Participants)
	}
	if summary.AvgAutomationPotential != 50 {
		t.Errorf("avg potential = %d, want 50", summary.AvgAutomationPotential)
	}
}

func TestAggregateMeanRounds(t *testing.T) {
	summary := AggregateInsights([]*model.WorkflowInsights{
		{AutomationPotential: 33},
		{AutomationPotential: 34},
		{AutomationPotential: 34},
	})

	// 101/3 = 33.67 -> 34
	if summary.AvgAutomationPotential != 34 {
		t.Errorf("avg potential = %d, want 34", summary.AvgAutomationPotential)
	}
}

func TestAggregateTopOpportunitiesRankedAndTruncated(t *testing.T) {
	var insights []*model.WorkflowInsights
	for i := 0; i < 4; i++ {
		insights = append(insights, &model.WorkflowInsights{
			WorkflowOpportunities: []model.WorkflowOpportunity{
				opp("data_entry", "ops", 0.85, 30+i),
				opp("scheduling", "ops", 0.70, 20+i),
				opp("data_analysis", "ops", 0.50, 40+i),
			},
		})
	}

	summary := AggregateInsights(insights)

	if len(summary.TopOpportunities) != maxAggregatedOpportunities {
		t.Fatalf("top opportunities = %d, want %d", len(summary.TopOpportunities), maxAggregatedOpportunities)
	}
	for i := 1; i < len(summary.TopOpportunities); i++ {
		if summary.TopOpportunities[i].RankScore() > summary.TopOpportunities[i-1].RankScore() {
			t.Errorf("opportunities not ranked at %d: %+v", i, summary.TopOpportunities)
		}
	}
	// 33*0.85 = 28.05 beats 43*0.50 = 21.5
	if got := summary.TopOpportunities[0].Process; got != "data_entry" {
		t.Errorf("top process = %q, want data_entry", got)
	}
}

func TestAggregateDepartmentBreakdown(t *testing.T) {
	summary := AggregateInsights([]*model.WorkflowInsights{
		{
			WorkflowOpportunities: []model.WorkflowOpportunity{
				opp("data_entry", "finance", 0.85, 30),
				opp("report_generation", "finance", 0.75, 26),
			},
		},
		{
			WorkflowOpportunities: []model.WorkflowOpportunity{
				opp("data_entry", "finance", 0.85, 20),
			},
		},
		{
			WorkflowOpportunities: []model.WorkflowOpportunity{
				opp("customer_support", "support", 0.55, 15),
			},
		},
	})

	if len(summary.DepartmentBreakdown) != 2 {
		t.Fatalf("breakdowns = %d, want 2", len(summary.DepartmentBreakdown))
	}
	// Sorted by department name
	finance, support := summary.DepartmentBreakdown[0], summary.DepartmentBreakdown[1]
	if finance.Department != "finance" || support.Department != "support" {
		t.Fatalf("departments = %q, %q", finance.Department, support.Department)
	}

	// finance accumulates 0.85+0.75+0.85 = 2.45 over 2 contributing participants
	if finance.ContributingParticipants != 2 {
		t.Errorf("finance contributors = %d, want 2", finance.ContributingParticipants)
	}
	if got, want := finance.AvgAutomationPotential, 2.45/2; got != want {
		t.Errorf("finance avg = %v, want %v", got, want)
	}
	if support.ContributingParticipants != 1 || support.AvgAutomationPotential != 0.55 {
		t.Errorf("support = %+v", support)
	}
}
