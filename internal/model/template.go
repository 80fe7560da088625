package model

import "fmt"

// QuestionType defines how a question is asked and scored
type QuestionType string

const (
	QuestionTypeRadio       QuestionType = "radio"
	QuestionTypeSelect      QuestionType = "select"
	QuestionTypeMultiSelect QuestionType = "multi_select"
	QuestionTypeSlider      QuestionType = "slider"
	QuestionTypeText        QuestionType = "text" // free text, never scored
)

// Section ids fixed across every template
const (
	SectionProfile    = "profile"
	SectionStrategic  = "strategic"
	SectionCompetence = "competence"
)

// Dimension is one competency axis that scoring questions roll up into
type Dimension struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	MaxScore float64 `json:"maxScore" bson:"maxScore"` // display cap only
	Weight   float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// EffectiveWeight returns the dimension weight, defaulting to 1
func (d Dimension) EffectiveWeight() float64 {
	if d.Weight > 0 {
		return d.Weight
	}
	return 1
}

// Scoring describes how a question contributes to a dimension
type Scoring struct {
	Weight       float64            `json:"weight" bson:"weight"`
	Dimension    string             `json:"dimension" bson:"dimension"`
	ValueMapping map[string]float64 `json:"valueMapping,omitempty" bson:"valueMapping,omitempty"`
}

// Option is a selectable choice for radio/select/multi_select questions
type Option struct {
	Value string   `json:"value" bson:"value"`
	Label string   `json:"label" bson:"label"`
	Score *float64 `json:"score,omitempty" bson:"score,omitempty"` // multi_select only; overrides valueMapping
}

// Question is one item in a template section
type Question struct {
	ID      string       `json:"id" bson:"id"`
	Type    QuestionType `json:"type" bson:"type"`
	Prompt  string       `json:"prompt" bson:"prompt"`
	Options []Option     `json:"options,omitempty" bson:"options,omitempty"`
	Min     float64      `json:"min,omitempty" bson:"min,omitempty"` // slider only
	Max     float64      `json:"max,omitempty" bson:"max,omitempty"` // slider only
	Scoring *Scoring     `json:"scoring,omitempty" bson:"scoring,omitempty"`
}

// Section is an ordered group of questions
type Section struct {
	ID        string     `json:"id" bson:"id"`
	Title     string     `json:"title" bson:"title"`
	Questions []Question `json:"questions" bson:"questions"`
}

// Template is the declarative questionnaire definition for one assessment variant
type Template struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	Name       string      `json:"name" bson:"name"`
	CompanyID  string      `json:"companyId,omitempty" bson:"companyId,omitempty"`
	Sections   []Section   `json:"sections" bson:"sections"`
	Dimensions []Dimension `json:"dimensions" bson:"dimensions"`
}

// Validate checks the structural invariants scoring relies on: question ids
// unique across all sections, and every scoring block referencing a declared
// dimension.
func (t *Template) Validate() error {
	dims := make(map[string]bool, len(t.Dimensions))
	for _, d := range t.Dimensions {
		dims[d.ID] = true
		dims[d.Name] = true
	}

	seen := make(map[string]string)
	for _, sec := range t.Sections {
		for _, q := range sec.Questions {
			if prev, ok := seen[q.ID]; ok {
				return fmt.Errorf("question id %q declared in both %q and %q", q.ID, prev, sec.ID)
			}
			seen[q.ID] = sec.ID

			if q.Scoring != nil && !dims[q.Scoring.Dimension] {
				return fmt.Errorf("question %q scores into undeclared dimension %q", q.ID, q.Scoring.Dimension)
			}
		}
	}
	return nil
}

// QuestionByID looks a question up across all sections
func (t *Template) QuestionByID(id string) (*Question, bool) {
	for si := range t.Sections {
		for qi := range t.Sections[si].Questions {
			if t.Sections[si].Questions[qi].ID == id {
				return &t.Sections[si].Questions[qi], true
			}
		}
	}
	return nil, false
}
