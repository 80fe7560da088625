package scoring

import (
	"fmt"
	"sort"

	"aiready/internal/model"
)

// Severity buckets for dimension recommendations
const (
	severityLow    = "low"    // percentage < 40
	severityMedium = "medium" // percentage < 60
)

// Overall-tier thresholds
const (
	overallFoundationalBelow = 40
	overallAdvancedFrom      = 70
)

// recommendationKey addresses a canned message for one dimension at one severity
type recommendationKey struct {
	dimension string
	severity  string
}

// dimensionRecommendations holds the canned per-dimension messages. Static
// load-time data, never mutated.
var dimensionRecommendations = map[recommendationKey]string{
	{"Prompting Proficiency", severityLow}:    "Start with guided prompt-writing exercises: practice giving AI tools context, constraints, and examples before expecting useful output.",
	{"Prompting Proficiency", severityMedium}: "Refine your prompting with iterative techniques such as role framing and few-shot examples to get consistent results from AI tools.",
	{"AI Literacy", severityLow}:              "Build a baseline understanding of what current AI tools can and cannot do; a short structured course will pay off quickly.",
	{"AI Literacy", severityMedium}:           "Deepen your AI literacy by studying how models handle ambiguity and where their failure modes lie.",
	{"Tool Adoption", severityLow}:            "Pick one approved AI tool and fold it into a single recurring task this week; adoption grows from one concrete habit.",
	{"Tool Adoption", severityMedium}:         "Expand beyond your primary AI tool: map your weekly tasks against the tools your organization already licenses.",
	{"Workflow Automation", severityLow}:      "Document your most repetitive manual process end to end; that write-up is the prerequisite for any automation effort.",
	{"Workflow Automation", severityMedium}:   "Look for handoff points in your documented processes where an AI step could replace manual routing or data transfer.",
	{"Data Practices", severityLow}:           "Establish basic data hygiene: consistent naming, a single source of truth, and clear ownership for the data your team relies on.",
	{"Data Practices", severityMedium}:        "Structure your team's data so AI tools can consume it: prefer tabular, labeled, and versioned over ad-hoc documents.",
}

// Overall-tier messages keyed by the mean of all dimension percentages
var overallRecommendations = map[string]string{
	"foundational": "Focus on foundational AI training: core concepts, terminology, and hands-on exposure to everyday AI tools.",
	"practical":    "You have working fundamentals; shift the emphasis to practical application of AI tools inside your daily workflows.",
	"advanced":     "You are ready for advanced topics: agentic workflows, process redesign around AI, and mentoring colleagues.",
}

// GenerateRecommendations produces the overall-tier message followed by up to
// three messages for the weakest dimensions scoring under 60%, ascending.
func GenerateRecommendations(scores []model.DimensionScore) []string {
	recs := []string{overallRecommendation(scores)}

	ranked := make([]model.DimensionScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage < ranked[j].Percentage
	})

	for _, s := range ranked {
		if len(recs) >= 4 {
			break
		}
		if s.Percentage >= 60 {
			break // ascending order: nothing weaker remains
		}
		severity := severityMedium
		if s.Percentage < overallFoundationalBelow {
			severity = severityLow
		}
		if msg, ok := dimensionRecommendations[recommendationKey{s.Dimension, severity}]; ok {
			recs = append(recs, msg)
		} else {
			recs = append(recs, genericRecommendation(s.Dimension, severity))
		}
	}
	return recs
}

func overallRecommendation(scores []model.DimensionScore) string {
	mean := 0.0
	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s.Percentage
		}
		mean = float64(sum) / float64(len(scores))
	}

	switch {
	case mean < overallFoundationalBelow:
		return overallRecommendations["foundational"]
	case mean < overallAdvancedFrom:
		return overallRecommendations["practical"]
	default:
		return overallRecommendations["advanced"]
	}
}

func genericRecommendation(dimension, severity string) string {
	if severity == severityLow {
		return fmt.Sprintf("Prioritize building %s fundamentals: this is currently your weakest area and small structured practice will move it fastest.", dimension)
	}
	return fmt.Sprintf("Keep investing in %s: targeted practice on your weakest sub-skills will lift it past the proficiency threshold.", dimension)
}
