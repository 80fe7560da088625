package workflow

import (
	"math"
	"sort"

	"aiready/internal/model"
)

const maxAggregatedOpportunities = 10

// AggregateInsights merges many participants' insights into one
// organization-level summary: mean automation potential, the top 10
// opportunities across the population, and a per-department breakdown. Pure
// function over immutable inputs.
func AggregateInsights(insights []*model.WorkflowInsights) *model.OrganizationSummary {
	summary := &model.OrganizationSummary{
		Participants:        len(insights),
		TopOpportunities:    []model.WorkflowOpportunity{},
		DepartmentBreakdown: []model.DepartmentBreakdown{},
	}
	if len(insights) == 0 {
		return summary
	}

	potentialSum := 0
	all := []model.WorkflowOpportunity{}
	deptPotential := make(map[string]float64)
	deptContributors := make(map[string]int)

	for _, ins := range insights {
		potentialSum += ins.AutomationPotential
		all = append(all, ins.WorkflowOpportunities...)

		contributed := make(map[string]bool)
		for _, opp := range ins.WorkflowOpportunities {
			deptPotential[opp.Department] += opp.AutomationPotential
			contributed[opp.Department] = true
		}
		for dept := range contributed {
			deptContributors[dept]++
		}
	}

	summary.AvgAutomationPotential = int(math.Round(float64(potentialSum) / float64(len(insights))))

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RankScore() > all[j].RankScore()
	})
	if len(all) > maxAggregatedOpportunities {
		all = all[:maxAggregatedOpportunities]
	}
	summary.TopOpportunities = all

	depts := make([]string, 0, len(deptPotential))
	for dept := range deptPotential {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	for _, dept := range depts {
		summary.DepartmentBreakdown = append(summary.DepartmentBreakdown, model.DepartmentBreakdown{
			Department:               dept,
			AvgAutomationPotential:   deptPotential[dept] / float64(deptContributors[dept]),
			ContributingParticipants: deptContributors[dept],
		})
	}
	return summary
}
