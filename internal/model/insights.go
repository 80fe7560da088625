package model

// ROIProjection estimates the payoff of automating one primary process
type ROIProjection struct {
	Process           string `json:"process" bson:"process"`
	HoursPerWeek      int    `json:"hoursPerWeek" bson:"hoursPerWeek"`
	TimeSavingsPct    int    `json:"timeSavingsPct" bson:"timeSavingsPct"`
	AnnualCostSavings int    `json:"annualCostSavings" bson:"annualCostSavings"` // USD
	Feasibility       string `json:"feasibility" bson:"feasibility"`             // low/medium/high
}

// ProcessBottleneck is a self-reported friction point mapped onto a fixed
// impact profile
type ProcessBottleneck struct {
	Type                string   `json:"type" bson:"type"`
	Impact              string   `json:"impact" bson:"impact"` // low/medium/high
	AutomationPotential float64  `json:"automationPotential" bson:"automationPotential"`
	AffectedProcesses   []string `json:"affectedProcesses" bson:"affectedProcesses"`
}

// WorkflowOpportunity is a ranked, named automation initiative
type WorkflowOpportunity struct {
	Name                     string   `json:"name" bson:"name"`
	Process                  string   `json:"process" bson:"process"`
	Department               string   `json:"department" bson:"department"`
	AutomationPotential      float64  `json:"automationPotential" bson:"automationPotential"` // 0-1
	ROIScore                 int      `json:"roiScore" bson:"roiScore"`                       // 0-100
	ImplementationComplexity string   `json:"implementationComplexity" bson:"implementationComplexity"`
	Prerequisites            []string `json:"prerequisites" bson:"prerequisites"`
}

// RankScore is the composite key opportunities are ordered by
func (o WorkflowOpportunity) RankScore() float64 {
	return float64(o.ROIScore) * o.AutomationPotential
}

// WorkflowInsights is the output of one workflow analysis pass for one
// participant's response set
type WorkflowInsights struct {
	ParticipantID         string                `json:"participantId,omitempty" bson:"participantId,omitempty"`
	AutomationPotential   int                   `json:"automationPotential" bson:"automationPotential"` // 0-100
	ROIProjections        []ROIProjection       `json:"roiProjections" bson:"roiProjections"`
	ProcessInefficiencies []ProcessBottleneck   `json:"processInefficiencies" bson:"processInefficiencies"`
	WorkflowOpportunities []WorkflowOpportunity `json:"workflowOpportunities" bson:"workflowOpportunities"`
}

// DepartmentBreakdown is the population average opportunity automation
// potential for one department
type DepartmentBreakdown struct {
	Department               string  `json:"department" bson:"department"`
	AvgAutomationPotential   float64 `json:"avgAutomationPotential" bson:"avgAutomationPotential"`
	ContributingParticipants int     `json:"contributingParticipants" bson:"contributingParticipants"`
}

// OrganizationSummary merges many participants' WorkflowInsights
type OrganizationSummary struct {
	ID                     string                `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID              string                `json:"companyId,omitempty" bson:"companyId,omitempty"`
	Participants           int                   `json:"participants" bson:"participants"`
	AvgAutomationPotential int                   `json:"avgAutomationPotential" bson:"avgAutomationPotential"`
	TopOpportunities       []WorkflowOpportunity `json:"topOpportunities" bson:"topOpportunities"`
	DepartmentBreakdown    []DepartmentBreakdown `json:"departmentBreakdown" bson:"departmentBreakdown"`
}
