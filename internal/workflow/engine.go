package workflow

import (
	"math"
	"sort"
	"strings"

	"aiready/internal/model"
)

// Engine estimates automation potential, ROI, bottlenecks, and opportunities
// from a participant's workflow-related responses. Use one instance per
// analysis; AnalyzeWorkflows clears any previously accumulated state so no
// data leaks between participants.
type Engine struct {
	responses map[string]*model.Response // keyed by sectionId-questionId
}

// NewEngine creates an empty workflow intelligence engine
func NewEngine() *Engine {
	return &Engine{responses: make(map[string]*model.Response)}
}

// AddResponse accumulates one response, last write wins per composite key
func (e *Engine) AddResponse(r *model.Response) {
	if r == nil {
		return
	}
	e.responses[r.Key()] = r
}

// AddResponses accumulates a batch of responses
func (e *Engine) AddResponses(rs []*model.Response) {
	for _, r := range rs {
		e.AddResponse(r)
	}
}

// AnalyzeWorkflows clears the buffer, loads the given responses, and computes
// all insights in one pass. Missing or malformed inputs degrade to neutral
// defaults; the computation never fails.
func (e *Engine) AnalyzeWorkflows(responses []*model.Response) *model.WorkflowInsights {
	e.responses = make(map[string]*model.Response, len(responses))
	e.AddResponses(responses)

	processes := e.choices(qPrimaryProcesses)
	tools := e.choices(qToolsAllowed)
	roi := e.CalculateROIProjections(processes, tools)

	return &model.WorkflowInsights{
		AutomationPotential:   e.CalculateAutomationPotential(processes, tools),
		ROIProjections:        roi,
		ProcessInefficiencies: e.IdentifyProcessBottlenecks(processes),
		WorkflowOpportunities: e.GenerateWorkflowOpportunities(processes, roi),
	}
}

// byQuestion finds a response by question id regardless of section
func (e *Engine) byQuestion(questionID string) *model.Response {
	for _, r := range e.responses {
		if r.QuestionID == questionID {
			return r
		}
	}
	return nil
}

func (e *Engine) choice(questionID string) string {
	if r := e.byQuestion(questionID); r != nil && r.Value.Kind == model.AnswerKindChoice {
		return r.Value.Choice
	}
	return ""
}

func (e *Engine) choices(questionID string) []string {
	if r := e.byQuestion(questionID); r != nil && r.Value.Kind == model.AnswerKindChoices {
		return r.Value.Choices
	}
	return nil
}

func (e *Engine) number(questionID string) (float64, bool) {
	if r := e.byQuestion(questionID); r != nil && r.Value.Kind == model.AnswerKindNumber {
		return r.Value.Number, true
	}
	return 0, false
}

// CalculateAutomationPotential runs the multiplicative heuristic: a
// self-reported base, blended with known process profiles, scaled by
// technical background, tool availability, and current automation level,
// capped at 95%.
func (e *Engine) CalculateAutomationPotential(processes, tools []string) int {
	base, ok := readinessBase[e.choice(qAutomationReadiness)]
	if !ok {
		base = defaultReadinessBase
	}

	// Blend 50/50 with the average profile potential of the listed processes
	profileSum := 0.0
	profileCount := 0
	for _, p := range processes {
		if profile, ok := processProfiles[p]; ok {
			profileSum += profile.BaseAutomationPotential
			profileCount++
		}
	}
	if profileCount > 0 {
		base = base*0.5 + (profileSum/float64(profileCount))*0.5
	}

	techMult, ok := techBackgroundMultiplier[e.choice(qTechnicalBackground)]
	if !ok {
		techMult = 1.0
	}

	levelBoost, ok := automationLevelBoost[e.choice(qAutomationLevel)]
	if !ok {
		levelBoost = 1.0
	}

	potential := math.Min(automationPotentialCap, base*techMult*toolMultiplier(tools)*levelBoost)
	return int(math.Round(potential * 100))
}

// toolMultiplier orders its checks from most to least restrictive; the
// explicit sentinels win over the count-based tiers.
func toolMultiplier(tools []string) float64 {
	switch {
	case containsTool(tools, toolNoneAllowed):
		return 0.2
	case containsTool(tools, toolAnyAllowed):
		return 1.2
	case len(tools) > 2:
		return 1.0
	case len(tools) > 0:
		return 0.8
	default:
		return 0.5
	}
}

func containsTool(tools []string, want string) bool {
	for _, t := range tools {
		if t == want {
			return true
		}
	}
	return false
}

// CalculateROIProjections estimates the annual payoff of automating each
// known primary process, sorted by annual savings, top 5.
func (e *Engine) CalculateROIProjections(processes, tools []string) []model.ROIProjection {
	projections := []model.ROIProjection{}

	for _, p := range processes {
		profile, ok := processProfiles[p]
		if !ok {
			continue
		}

		hoursPerWeek := int(math.Round(e.workBreakdownPct(p, processes) / 100 * workWeekHours * processTimeShare))
		timeSavingsPct := int(math.Round(profile.BaseAutomationPotential * timeSavingsFactor))
		annual := int(math.Round(float64(hoursPerWeek) * float64(timeSavingsPct) / 100 * weeksPerYear * hourlyRateUSD))

		projections = append(projections, model.ROIProjection{
			Process:           p,
			HoursPerWeek:      hoursPerWeek,
			TimeSavingsPct:    timeSavingsPct,
			AnnualCostSavings: annual,
			Feasibility:       feasibility(profile, tools),
		})
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].AnnualCostSavings > projections[j].AnnualCostSavings
	})
	if len(projections) > maxROIProjections {
		projections = projections[:maxROIProjections]
	}
	return projections
}

// workBreakdownPct is the share of the work week the participant spends on a
// process: a time_spent_<process> slider if answered, otherwise an even
// split across the listed processes.
func (e *Engine) workBreakdownPct(process string, processes []string) float64 {
	if pct, ok := e.number(qTimeSpentPrefix + process); ok {
		return pct
	}
	if len(processes) == 0 {
		return 0
	}
	return 100 / float64(len(processes))
}

func feasibility(profile ProcessProfile, tools []string) string {
	switch {
	case containsTool(tools, toolNoneAllowed):
		return "low"
	case profile.Complexity == "low" && len(tools) > 1:
		return "high"
	default:
		return "medium"
	}
}

// IdentifyProcessBottlenecks maps self-reported bottleneck keywords onto
// fixed impact profiles, deduplicated by type.
func (e *Engine) IdentifyProcessBottlenecks(processes []string) []model.ProcessBottleneck {
	bottlenecks := []model.ProcessBottleneck{}
	seen := make(map[string]bool)

	for _, b := range e.choices(qMainBottlenecks) {
		if seen[b] {
			continue
		}
		profile, ok := bottleneckProfiles[b]
		if !ok {
			continue
		}
		seen[b] = true
		bottlenecks = append(bottlenecks, model.ProcessBottleneck{
			Type:                b,
			Impact:              profile.Impact,
			AutomationPotential: profile.AutomationPotential,
			AffectedProcesses:   append([]string{}, processes...),
		})
	}
	return bottlenecks
}

// GenerateWorkflowOpportunities turns every primary process whose ROI clears
// the savings threshold into a named initiative, ranked by
// roiScore * automationPotential, top 5.
func (e *Engine) GenerateWorkflowOpportunities(processes []string, roi []model.ROIProjection) []model.WorkflowOpportunity {
	savingsByProcess := make(map[string]int, len(roi))
	for _, p := range roi {
		savingsByProcess[p.Process] = p.AnnualCostSavings
	}

	department := e.choice(qDepartment)
	if department == "" {
		department = "General"
	}

	opportunities := []model.WorkflowOpportunity{}
	for _, p := range processes {
		profile, ok := processProfiles[p]
		if !ok {
			continue
		}
		annual := savingsByProcess[p]
		if annual <= opportunityThresholdUSD {
			continue
		}

		name, ok := opportunityNames[p]
		if !ok {
			name = titleCase(p) + " Optimization"
		}
		prereqs, ok := opportunityPrerequisites[p]
		if !ok {
			prereqs = defaultPrerequisites
		}

		roiScore := int(math.Round(float64(annual) / 1000))
		if roiScore > 100 {
			roiScore = 100
		}

		opportunities = append(opportunities, model.WorkflowOpportunity{
			Name:                     name,
			Process:                  p,
			Department:               department,
			AutomationPotential:      profile.BaseAutomationPotential,
			ROIScore:                 roiScore,
			ImplementationComplexity: profile.Complexity,
			Prerequisites:            append([]string{}, prereqs...),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].RankScore() > opportunities[j].RankScore()
	})
	if len(opportunities) > maxOpportunities {
		opportunities = opportunities[:maxOpportunities]
	}
	return opportunities
}

// titleCase turns a snake_case process id into a display name
func titleCase(process string) string {
	words := strings.Split(process, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
