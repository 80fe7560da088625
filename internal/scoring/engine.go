package scoring

import (
	"math"
	"time"

	"aiready/internal/model"
)

// Engine turns a participant's accumulated responses into weighted dimension
// scores, an overall score, a radar projection, and recommendations. It is
// pure computation: the only state is the response buffer, and the intended
// lifecycle is construct, load one closed batch, compute once, discard.
type Engine struct {
	template  *model.Template
	responses map[string]*model.Response // keyed by sectionId-questionId
}

// NewEngine creates a scoring engine bound to one template
func NewEngine(t *model.Template) *Engine {
	return &Engine{
		template:  t,
		responses: make(map[string]*model.Response),
	}
}

// AddResponse accumulates one response; a later write for the same
// sectionId-questionId key overwrites the former.
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

// CalculateResult computes the full assessment result from the accumulated
// responses. peerAverages maps dimension name to a population percentage and
// may be nil. The computation never fails; malformed or missing answers
// contribute zero.
func (e *Engine) CalculateResult(participantID string, peerAverages map[string]float64) *model.AssessmentResult {
	scores := e.CalculateDimensionScores()
	return &model.AssessmentResult{
		ParticipantID:   participantID,
		AssessmentID:    e.template.ID,
		Scores:          scores,
		OverallScore:    e.CalculateOverallScore(scores),
		CompletionDate:  time.Now(),
		Recommendations: GenerateRecommendations(scores),
		RadarData:       GenerateRadarData(scores, peerAverages),
	}
}

// CalculateQuestionScore returns a sub-score in [0,5] for one answered
// question. A mismatch between the declared question type and the answer's
// variant scores 0 rather than erroring.
func CalculateQuestionScore(q *model.Question, v model.AnswerValue) float64 {
	switch q.Type {
	case model.QuestionTypeRadio, model.QuestionTypeSelect:
		if v.Kind != model.AnswerKindChoice || q.Scoring == nil {
			return 0
		}
		return q.Scoring.ValueMapping[v.Choice]

	case model.QuestionTypeMultiSelect:
		if v.Kind != model.AnswerKindChoices {
			return 0
		}
		return multiSelectScore(q, v.Choices)

	case model.QuestionTypeSlider:
		if v.Kind != model.AnswerKindNumber {
			return 0
		}
		return sliderScore(q, v.Number)

	default: // text and anything unknown never scores
		return 0
	}
}

// multiSelectScore sums per-option scores, preferring an explicit option
// score over the valueMapping entry, capped at 5 raw points.
func multiSelectScore(q *model.Question, selected []string) float64 {
	explicit := make(map[string]float64, len(q.Options))
	for _, opt := range q.Options {
		if opt.Score != nil {
			explicit[opt.Value] = *opt.Score
		}
	}

	total := 0.0
	for _, sel := range selected {
		if s, ok := explicit[sel]; ok {
			total += s
		} else if q.Scoring != nil {
			total += q.Scoring.ValueMapping[sel]
		}
	}
	if total > 5 {
		total = 5
	}
	return total
}

// sliderScore interpolates the numeric value between min and max onto 0-5
func sliderScore(q *model.Question, value float64) float64 {
	if q.Max <= q.Min {
		return 0
	}
	score := (value - q.Min) / (q.Max - q.Min) * 5
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}

// CalculateDimensionScores aggregates every scoring-eligible question across
// all sections into per-dimension weighted averages. A template with no
// declared dimensions yields an empty list.
func (e *Engine) CalculateDimensionScores() []model.DimensionScore {
	if len(e.template.Dimensions) == 0 {
		return []model.DimensionScore{}
	}

	type tally struct {
		totalScore  float64
		totalWeight float64
	}
	tallies := make(map[string]*tally, len(e.template.Dimensions))
	for _, d := range e.template.Dimensions {
		t := &tally{}
		tallies[d.ID] = t
		tallies[d.Name] = t
	}

	// Responses are matched by question id alone; Template.Validate
	// guarantees ids are unique across sections.
	byQuestion := make(map[string]*model.Response, len(e.responses))
	for _, r := range e.responses {
		byQuestion[r.QuestionID] = r
	}

	for _, sec := range e.template.Sections {
		for qi := range sec.Questions {
			q := &sec.Questions[qi]
			if q.Scoring == nil {
				continue
			}
			t, ok := tallies[q.Scoring.Dimension]
			if !ok {
				continue // undeclared dimension: excluded, not an error
			}
			resp, ok := byQuestion[q.ID]
			if !ok {
				continue
			}
			score := CalculateQuestionScore(q, resp.Value)
			t.totalScore += score * q.Scoring.Weight
			t.totalWeight += q.Scoring.Weight
		}
	}

	scores := make([]model.DimensionScore, 0, len(e.template.Dimensions))
	for _, d := range e.template.Dimensions {
		t := tallies[d.ID]
		score := 0.0
		if t.totalWeight > 0 {
			score = t.totalScore / t.totalWeight
		}
		scores = append(scores, model.DimensionScore{
			Dimension:  d.Name,
			Score:      score,
			MaxScore:   d.MaxScore,
			Percentage: int(math.Round(score / 5 * 100)),
		})
	}
	return scores
}

// CalculateOverallScore is the weighted mean of dimension percentages,
// weighted by each dimension's declared weight (default 1).
func (e *Engine) CalculateOverallScore(scores []model.DimensionScore) int {
	if len(scores) == 0 {
		return 0
	}

	weights := make(map[string]float64, len(e.template.Dimensions))
	for _, d := range e.template.Dimensions {
		weights[d.Name] = d.EffectiveWeight()
	}

	weighted := 0.0
	totalWeight := 0.0
	for _, s := range scores {
		w, ok := weights[s.Dimension]
		if !ok {
			w = 1
		}
		weighted += float64(s.Percentage) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(weighted / totalWeight))
}

// GenerateRadarData projects dimension scores into a display-ready series.
// Peer averages come from real population aggregates supplied by the caller.
func GenerateRadarData(scores []model.DimensionScore, peerAverages map[string]float64) []model.RadarPoint {
	points := make([]model.RadarPoint, 0, len(scores))
	for _, s := range scores {
		p := model.RadarPoint{
			Dimension: s.Dimension,
			UserScore: s.Percentage,
			MaxScore:  100,
		}
		if avg, ok := peerAverages[s.Dimension]; ok {
			v := avg
			p.PeerAverage = &v
		}
		points = append(points, p)
	}
	return points
}
