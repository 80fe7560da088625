package model

import (
	"strings"
	"testing"
)

func validTemplate() *Template {
	return &Template{
		Name: "AI Readiness Assessment",
		Dimensions: []Dimension{
			{ID: "literacy", Name: "AI Literacy", MaxScore: 5},
			{ID: "adoption", Name: "Tool Adoption", MaxScore: 5, Weight: 2},
		},
		Sections: []Section{
			{
				ID:    SectionProfile,
				Title: "About You",
				Questions: []Question{
					{ID: "department", Type: QuestionTypeSelect, Prompt: "Department?"},
				},
			},
			{
				ID:    SectionCompetence,
				Title: "Competence",
				Questions: []Question{
					{
						ID:      "ai_usage_frequency",
						Type:    QuestionTypeRadio,
						Prompt:  "How often do you use AI tools?",
						Scoring: &Scoring{Weight: 1, Dimension: "adoption", ValueMapping: map[string]float64{"daily": 5}},
					},
					{
						ID:      "confidence_slider",
						Type:    QuestionTypeSlider,
						Prompt:  "Confidence?",
						Min:     0,
						Max:     10,
						Scoring: &Scoring{Weight: 1, Dimension: "AI Literacy"},
					},
				},
			},
		},
	}
}

func TestValidateAcceptsDimensionByIDOrName(t *testing.T) {
	if err := validTemplate().Validate(); err != nil {
		t.Fatalf("valid template rejected: %v", err)
	}
}

func TestValidateRejectsDuplicateQuestionIDsAcrossSections(t *testing.T) {
	tpl := validTemplate()
	tpl.Sections[1].Questions = append(tpl.Sections[1].Questions, Question{
		ID:   "department",
		Type: QuestionTypeText,
	})

	err := tpl.Validate()
	if err == nil {
		t.Fatal("duplicate question id accepted")
	}
	if !strings.Contains(err.Error(), "department") {
		t.Errorf("error does not name the duplicate id: %v", err)
	}
}

func TestValidateRejectsUndeclaredDimension(t *testing.T) {
	tpl := validTemplate()
	tpl.Sections[1].Questions[0].Scoring.Dimension = "velocity"

	err := tpl.Validate()
	if err == nil {
		t.Fatal("undeclared dimension accepted")
	}
	if !strings.Contains(err.Error(), "velocity") {
		t.Errorf("error does not name the dimension: %v", err)
	}
}

func TestQuestionByID(t *testing.T) {
	tpl := validTemplate()

	q, ok := tpl.QuestionByID("confidence_slider")
	if !ok || q.Type != QuestionTypeSlider {
		t.Fatalf("QuestionByID(confidence_slider) = %v, %v", q, ok)
	}
	if _, ok := tpl.QuestionByID("missing"); ok {
		t.Error("found a question that does not exist")
	}
}

func TestEffectiveWeightDefaultsToOne(t *testing.T) {
	if got := (Dimension{}).EffectiveWeight(); got != 1 {
		t.Errorf("zero weight = %v, want 1", got)
	}
	if got := (Dimension{Weight: 2}).EffectiveWeight(); got != 2 {
		t.Errorf("explicit weight = %v, want 2", got)
	}
}

func TestAnswerForQuestionNarrowing(t *testing.T) {
	tests := []struct {
		name string
		qt   QuestionType
		raw  interface{}
		want AnswerValue
	}{
		{"radio string", QuestionTypeRadio, "daily", ChoiceAnswer("daily")},
		{"select string", QuestionTypeSelect, "finance", ChoiceAnswer("finance")},
		{"radio wrong shape", QuestionTypeRadio, 3.0, TextAnswer("")},
		{"multi string slice", QuestionTypeMultiSelect, []string{"a", "b"}, ChoicesAnswer([]string{"a", "b"})},
		{"multi json slice", QuestionTypeMultiSelect, []interface{}{"a", 7, "b"}, ChoicesAnswer([]string{"a", "b"})},
		{"multi wrong shape", QuestionTypeMultiSelect, "a", TextAnswer("")},
		{"slider float", QuestionTypeSlider, 7.5, NumberAnswer(7.5)},
		{"slider int", QuestionTypeSlider, 7, NumberAnswer(7)},
		{"slider wrong shape", QuestionTypeSlider, "7", TextAnswer("")},
		{"text", QuestionTypeText, "free form", TextAnswer("free form")},
		{"unknown type", QuestionType("matrix"), "x", TextAnswer("")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AnswerForQuestion(tc.qt, tc.raw)
			if got.Kind != tc.want.Kind || got.Choice != tc.want.Choice ||
				got.Number != tc.want.Number || got.Text != tc.want.Text {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
			if len(got.Choices) != len(tc.want.Choices) {
				t.Fatalf("choices = %v, want %v", got.Choices, tc.want.Choices)
			}
			for i := range got.Choices {
				if got.Choices[i] != tc.want.Choices[i] {
					t.Errorf("choices = %v, want %v", got.Choices, tc.want.Choices)
				}
			}
		})
	}
}

func TestResponseKey(t *testing.T) {
	r := &Response{SectionID: SectionStrategic, QuestionID: "primary_processes"}
	if got := r.Key(); got != "strategic-primary_processes" {
		t.Errorf("key = %q", got)
	}
}
