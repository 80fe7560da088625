package workflow

// The heuristic model below is driven entirely by these tables. The constants
// are tunable parameters of the estimate, not derived values; changing any of
// them changes every downstream automation and ROI number.

// Well-known question ids the engine reads from the response set
const (
	qAutomationReadiness = "automation_readiness"
	qPrimaryProcesses    = "primary_processes"
	qTechnicalBackground = "technical_background"
	qToolsAllowed        = "tools_allowed_at_work"
	qAutomationLevel     = "current_automation_level"
	qMainBottlenecks     = "main_bottlenecks"
	qDepartment          = "department"
	qTimeSpentPrefix     = "time_spent_" // per-process work-breakdown sliders
)

// ProcessProfile is the fixed automation profile for one known work process
type ProcessProfile struct {
	BaseAutomationPotential float64
	Complexity              string // low/medium/high
	ROIMultiplier           float64
	PrimaryActivity         string
}

var processProfiles = map[string]ProcessProfile{
	"data_entry":         {BaseAutomationPotential: 0.85, Complexity: "low", ROIMultiplier: 1.4, PrimaryActivity: "transcribing and keying data"},
	"report_generation":  {BaseAutomationPotential: 0.75, Complexity: "low", ROIMultiplier: 1.3, PrimaryActivity: "compiling recurring reports"},
	"email_management":   {BaseAutomationPotential: 0.65, Complexity: "low", ROIMultiplier: 1.1, PrimaryActivity: "triaging and drafting email"},
	"scheduling":         {BaseAutomationPotential: 0.70, Complexity: "low", ROIMultiplier: 1.0, PrimaryActivity: "coordinating calendars and meetings"},
	"document_review":    {BaseAutomationPotential: 0.60, Complexity: "medium", ROIMultiplier: 1.2, PrimaryActivity: "reading and summarizing documents"},
	"invoice_processing": {BaseAutomationPotential: 0.80, Complexity: "medium", ROIMultiplier: 1.5, PrimaryActivity: "matching and booking invoices"},
	"customer_support":   {BaseAutomationPotential: 0.55, Complexity: "medium", ROIMultiplier: 1.2, PrimaryActivity: "answering customer requests"},
	"data_analysis":      {BaseAutomationPotential: 0.50, Complexity: "high", ROIMultiplier: 1.6, PrimaryActivity: "exploring and interpreting datasets"},
	"content_creation":   {BaseAutomationPotential: 0.45, Complexity: "medium", ROIMultiplier: 1.1, PrimaryActivity: "drafting copy and collateral"},
	"quality_assurance":  {BaseAutomationPotential: 0.55, Complexity: "high", ROIMultiplier: 1.3, PrimaryActivity: "checking output against standards"},
}

// Self-reported share of work the participant already considers automatable
var readinessBase = map[string]float64{
	"very_little":         0.05,
	"some_tasks":          0.20,
	"significant_portion": 0.45,
	"majority":            0.70,
}

const defaultReadinessBase = 0.30

var techBackgroundMultiplier = map[string]float64{
	"business_user": 0.8,
	"intermediate":  1.1,
	"advanced":      1.3,
	"expert":        1.5,
}

var automationLevelBoost = map[string]float64{
	"fully_manual":     0.7,
	"basic_tools":      0.9,
	"some_automation":  1.1,
	"highly_automated": 1.3,
}

// Tool-availability sentinels
const (
	toolNoneAllowed = "none_allowed"
	toolAnyAllowed  = "any_tool"
)

// ROI model constants
const (
	automationPotentialCap  = 0.95
	workWeekHours           = 40
	processTimeShare        = 0.6 // fraction of reported process time that is hands-on
	timeSavingsFactor       = 75  // percent of base potential realized as saved time
	hourlyRateUSD           = 75
	weeksPerYear            = 52
	opportunityThresholdUSD = 10000
	maxROIProjections       = 5
	maxOpportunities        = 5
)

// BottleneckProfile is the fixed impact profile for one bottleneck keyword
type BottleneckProfile struct {
	Impact              string
	AutomationPotential float64
}

var bottleneckProfiles = map[string]BottleneckProfile{
	"manual_data_entry":      {Impact: "high", AutomationPotential: 0.9},
	"repetitive_tasks":       {Impact: "high", AutomationPotential: 0.85},
	"approval_delays":        {Impact: "high", AutomationPotential: 0.7},
	"manual_reporting":       {Impact: "medium", AutomationPotential: 0.8},
	"information_silos":      {Impact: "medium", AutomationPotential: 0.6},
	"communication_overhead": {Impact: "medium", AutomationPotential: 0.5},
	"context_switching":      {Impact: "medium", AutomationPotential: 0.4},
	"waiting_on_data":        {Impact: "low", AutomationPotential: 0.65},
}

// Canned opportunity titles per known process; anything else gets the generic
// "<Process> Optimization" name.
var opportunityNames = map[string]string{
	"data_entry":         "Automated Data Capture",
	"report_generation":  "Self-Serve Report Automation",
	"email_management":   "AI Email Triage",
	"scheduling":         "Smart Scheduling Assistant",
	"document_review":    "AI-Assisted Document Review",
	"invoice_processing": "Touchless Invoice Processing",
	"customer_support":   "AI Support Deflection",
	"data_analysis":      "Augmented Analytics Pipeline",
	"content_creation":   "AI Drafting Workflow",
	"quality_assurance":  "Automated Quality Checks",
}

var opportunityPrerequisites = map[string][]string{
	"data_entry":         {"Structured input forms", "Access to source systems"},
	"report_generation":  {"Centralized data source", "Report template inventory"},
	"email_management":   {"Mailbox API access", "Triage rules sign-off"},
	"scheduling":         {"Shared calendar access"},
	"document_review":    {"Document repository access", "Review criteria checklist"},
	"invoice_processing": {"ERP integration", "Approval policy definition"},
	"customer_support":   {"Knowledge base", "Escalation policy"},
	"data_analysis":      {"Clean historical data", "Defined key metrics"},
	"content_creation":   {"Brand style guide", "Editorial review step"},
	"quality_assurance":  {"Documented quality standards", "Test data set"},
}

var defaultPrerequisites = []string{"Process documentation", "Tool access approval"}
