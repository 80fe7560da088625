package scoring

import (
	"reflect"
	"testing"

	"aiready/internal/model"
)

func singleDimensionTemplate() *model.Template {
	return &model.Template{
		ID:   "t1",
		Name: "Readiness",
		Dimensions: []model.Dimension{
			{ID: "d1", Name: "Prompting Proficiency", MaxScore: 5, Weight: 1},
		},
		Sections: []model.Section{
			{
				ID: model.SectionStrategic,
				Questions: []model.Question{
					{
						ID:   "q1",
						Type: model.QuestionTypeRadio,
						Scoring: &model.Scoring{
							Weight:       1,
							Dimension:    "d1",
							ValueMapping: map[string]float64{"a": 5, "b": 0},
						},
					},
				},
			},
		},
	}
}

func response(sectionID, questionID string, v model.AnswerValue) *model.Response {
	return &model.Response{
		ParticipantID: "p1",
		AssessmentID:  "t1",
		SectionID:     sectionID,
		QuestionID:    questionID,
		Value:         v,
	}
}

func TestTopAnswerScoresFullMarks(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("a")))

	result := e.CalculateResult("p1", nil)

	if len(result.Scores) != 1 {
		t.Fatalf("scores = %d, want 1", len(result.Scores))
	}
	if got := result.Scores[0].Percentage; got != 100 {
		t.Errorf("percentage = %d, want 100", got)
	}
	if result.OverallScore != 100 {
		t.Errorf("overall = %d, want 100", result.OverallScore)
	}
}

func TestBottomAnswerScoresZeroWithLowRecommendation(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("b")))

	result := e.CalculateResult("p1", nil)

	if got := result.Scores[0].Percentage; got != 0 {
		t.Errorf("percentage = %d, want 0", got)
	}
	if result.OverallScore != 0 {
		t.Errorf("overall = %d, want 0", result.OverallScore)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(result.Recommendations))
	}
	if result.Recommendations[0] != overallRecommendations["foundational"] {
		t.Errorf("first recommendation = %q, want foundational message", result.Recommendations[0])
	}
	want := dimensionRecommendations[recommendationKey{"Prompting Proficiency", severityLow}]
	if result.Recommendations[1] != want {
		t.Errorf("second recommendation = %q, want low Prompting Proficiency message", result.Recommendations[1])
	}
}

func TestCalculateResultIdempotent(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("a")))

	first := e.CalculateResult("p1", nil)
	second := e.CalculateResult("p1", nil)

	if !reflect.DeepEqual(first.Scores, second.Scores) {
		t.Errorf("scores differ between calls: %#v vs %#v", first.Scores, second.Scores)
	}
	if first.OverallScore != second.OverallScore {
		t.Errorf("overall differs: %d vs %d", first.OverallScore, second.OverallScore)
	}
	if !reflect.DeepEqual(first.Recommendations, second.Recommendations) {
		t.Errorf("recommendations differ between calls")
	}
}

func TestLastWriteWinsPerQuestion(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("a")))
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("b")))

	result := e.CalculateResult("p1", nil)
	if result.OverallScore != 0 {
		t.Errorf("overall = %d, want 0 after overwrite", result.OverallScore)
	}
}

func TestQuestionScoreTypeRules(t *testing.T) {
	three := 3.0
	multi := &model.Question{
		ID:   "m1",
		Type: model.QuestionTypeMultiSelect,
		Options: []model.Option{
			{Value: "x", Score: &three},
			{Value: "y", Score: &three},
		},
		Scoring: &model.Scoring{Weight: 1, Dimension: "d1", ValueMapping: map[string]float64{"z": 1}},
	}
	slider := &model.Question{
		ID: "s1", Type: model.QuestionTypeSlider, Min: 0, Max: 10,
		Scoring: &model.Scoring{Weight: 1, Dimension: "d1"},
	}
	radio := &model.Question{
		ID: "r1", Type: model.QuestionTypeRadio,
		Scoring: &model.Scoring{Weight: 1, Dimension: "d1", ValueMapping: map[string]float64{"a": 5}},
	}
	text := &model.Question{ID: "t1", Type: model.QuestionTypeText}

	tests := []struct {
		name string
		q    *model.Question
		v    model.AnswerValue
		want float64
	}{
		{"radio hit", radio, model.ChoiceAnswer("a"), 5},
		{"radio unknown value", radio, model.ChoiceAnswer("zzz"), 0},
		{"radio wrong shape", radio, model.ChoicesAnswer([]string{"a"}), 0},
		{"multi explicit scores", multi, model.ChoicesAnswer([]string{"x"}), 3},
		{"multi capped at five", multi, model.ChoicesAnswer([]string{"x", "y"}), 5},
		{"multi mapping fallback", multi, model.ChoicesAnswer([]string{"z"}), 1},
		{"multi wrong shape", multi, model.ChoiceAnswer("x"), 0},
		{"slider midpoint", slider, model.NumberAnswer(5), 2.5},
		{"slider clamped high", slider, model.NumberAnswer(25), 5},
		{"slider clamped low", slider, model.NumberAnswer(-3), 0},
		{"slider wrong shape", slider, model.ChoiceAnswer("5"), 0},
		{"text never scores", text, model.TextAnswer("anything"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateQuestionScore(tt.q, tt.v); got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiSelectMonotonicUpToCap(t *testing.T) {
	one := 1.0
	tmpl := singleDimensionTemplate()
	tmpl.Sections[0].Questions = []model.Question{
		{
			ID:   "m1",
			Type: model.QuestionTypeMultiSelect,
			Options: []model.Option{
				{Value: "a", Score: &one}, {Value: "b", Score: &one}, {Value: "c", Score: &one},
				{Value: "d", Score: &one}, {Value: "e", Score: &one},
			},
			Scoring: &model.Scoring{Weight: 1, Dimension: "d1"},
		},
	}

	all := []string{"a", "b", "c", "d", "e"}
	prev := -1.0
	for n := 0; n <= len(all); n++ {
		e := NewEngine(tmpl)
		e.AddResponse(response(model.SectionStrategic, "m1", model.ChoicesAnswer(all[:n])))
		score := e.CalculateDimensionScores()[0].Score
		if score < prev {
			t.Fatalf("score decreased from %v to %v at %d selections", prev, score, n)
		}
		prev = score
	}
}

func TestDimensionWeightDoublesInfluence(t *testing.T) {
	tmpl := &model.Template{
		ID: "t2",
		Dimensions: []model.Dimension{
			{ID: "a", Name: "A", Weight: 1},
			{ID: "b", Name: "B", Weight: 2},
		},
		Sections: []model.Section{
			{
				ID: model.SectionCompetence,
				Questions: []model.Question{
					{ID: "qa", Type: model.QuestionTypeRadio, Scoring: &model.Scoring{Weight: 1, Dimension: "a", ValueMapping: map[string]float64{"y": 5}}},
					{ID: "qb", Type: model.QuestionTypeRadio, Scoring: &model.Scoring{Weight: 1, Dimension: "b", ValueMapping: map[string]float64{"y": 5}}},
				},
			},
		},
	}

	e := NewEngine(tmpl)
	e.AddResponse(response(model.SectionCompetence, "qa", model.ChoiceAnswer("y")))
	e.AddResponse(response(model.SectionCompetence, "qb", model.ChoiceAnswer("n")))
	scores := e.CalculateDimensionScores()

	// A at 100%, B at 0%: the weight-2 B pulls the mean to 33
	if got := e.CalculateOverallScore(scores); got != 33 {
		t.Errorf("overall = %d, want 33", got)
	}

	e2 := NewEngine(tmpl)
	e2.AddResponse(response(model.SectionCompetence, "qa", model.ChoiceAnswer("n")))
	e2.AddResponse(response(model.SectionCompetence, "qb", model.ChoiceAnswer("y")))
	if got := e2.CalculateOverallScore(e2.CalculateDimensionScores()); got != 67 {
		t.Errorf("overall = %d, want 67", got)
	}
}

func TestScoreBounds(t *testing.T) {
	tmpl := singleDimensionTemplate()
	values := []model.AnswerValue{
		model.ChoiceAnswer("a"),
		model.ChoiceAnswer("b"),
		model.ChoiceAnswer("unmapped"),
		model.ChoicesAnswer([]string{"a"}),
		model.TextAnswer(""),
	}

	for _, v := range values {
		e := NewEngine(tmpl)
		e.AddResponse(response(model.SectionStrategic, "q1", v))
		result := e.CalculateResult("p1", nil)
		if result.OverallScore < 0 || result.OverallScore > 100 {
			t.Errorf("overall %d out of [0,100] for %+v", result.OverallScore, v)
		}
		for _, s := range result.Scores {
			if s.Percentage < 0 || s.Percentage > 100 {
				t.Errorf("percentage %d out of [0,100] for %+v", s.Percentage, v)
			}
		}
	}
}

func TestEmptyTemplateDegradesToZero(t *testing.T) {
	e := NewEngine(&model.Template{ID: "empty"})
	result := e.CalculateResult("p1", nil)

	if len(result.Scores) != 0 {
		t.Errorf("scores = %d, want 0", len(result.Scores))
	}
	if result.OverallScore != 0 {
		t.Errorf("overall = %d, want 0", result.OverallScore)
	}
	if len(result.Recommendations) < 1 {
		t.Errorf("want at least the overall recommendation")
	}
	if len(result.RadarData) != 0 {
		t.Errorf("radar = %d points, want 0", len(result.RadarData))
	}
}

func TestMissingResponseContributesNothing(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	scores := e.CalculateDimensionScores()
	if scores[0].Score != 0 || scores[0].Percentage != 0 {
		t.Errorf("unanswered question scored %+v, want zero", scores[0])
	}
}

func TestRadarDataCarriesPeerAverages(t *testing.T) {
	e := NewEngine(singleDimensionTemplate())
	e.AddResponse(response(model.SectionStrategic, "q1", model.ChoiceAnswer("a")))

	result := e.CalculateResult("p1", map[string]float64{"Prompting Proficiency": 62.5})

	if len(result.RadarData) != 1 {
		t.Fatalf("radar points = %d, want 1", len(result.RadarData))
	}
	p := result.RadarData[0]
	if p.UserScore != 100 || p.MaxScore != 100 {
		t.Errorf("radar point = %+v", p)
	}
	if p.PeerAverage == nil || *p.PeerAverage != 62.5 {
		t.Errorf("peerAverage = %v, want 62.5", p.PeerAverage)
	}

	// Without peer data the field stays unset
	bare := e.CalculateResult("p1", nil)
	if bare.RadarData[0].PeerAverage != nil {
		t.Errorf("peerAverage should be nil without population data")
	}
}
