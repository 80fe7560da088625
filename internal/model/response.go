package model

import "time"

// AnswerKind tags which variant of AnswerValue is populated
type AnswerKind string

const (
	AnswerKindChoice  AnswerKind = "choice"  // radio/select
	AnswerKindChoices AnswerKind = "choices" // multi_select
	AnswerKindNumber  AnswerKind = "number"  // slider
	AnswerKindText    AnswerKind = "text"
)

// AnswerValue is a tagged variant chosen at the point a response is built,
// so scoring can match on the kind instead of runtime type-checking a bare
// interface value.
type AnswerValue struct {
	Kind    AnswerKind `json:"kind" bson:"kind"`
	Choice  string     `json:"choice,omitempty" bson:"choice,omitempty"`
	Choices []string   `json:"choices,omitempty" bson:"choices,omitempty"`
	Number  float64    `json:"number,omitempty" bson:"number,omitempty"`
	Text    string     `json:"text,omitempty" bson:"text,omitempty"`
}

// ChoiceAnswer builds a radio/select answer
func ChoiceAnswer(v string) AnswerValue {
	return AnswerValue{Kind: AnswerKindChoice, Choice: v}
}

// ChoicesAnswer builds a multi_select answer
func ChoicesAnswer(v []string) AnswerValue {
	return AnswerValue{Kind: AnswerKindChoices, Choices: v}
}

// NumberAnswer builds a slider answer
func NumberAnswer(v float64) AnswerValue {
	return AnswerValue{Kind: AnswerKindNumber, Number: v}
}

// TextAnswer builds a free-text answer
func TextAnswer(v string) AnswerValue {
	return AnswerValue{Kind: AnswerKindText, Text: v}
}

// AnswerForQuestion chooses the variant matching a question's declared type.
// Unrecognized raw shapes degrade to a text answer, which never scores.
func AnswerForQuestion(qt QuestionType, raw interface{}) AnswerValue {
	switch qt {
	case QuestionTypeRadio, QuestionTypeSelect:
		if s, ok := raw.(string); ok {
			return ChoiceAnswer(s)
		}
	case QuestionTypeMultiSelect:
		switch v := raw.(type) {
		case []string:
			return ChoicesAnswer(v)
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return ChoicesAnswer(out)
		}
	case QuestionTypeSlider:
		switch v := raw.(type) {
		case float64:
			return NumberAnswer(v)
		case int:
			return NumberAnswer(float64(v))
		}
	case QuestionTypeText:
		if s, ok := raw.(string); ok {
			return TextAnswer(s)
		}
	}
	return TextAnswer("")
}

// Response is one participant answer to one question
type Response struct {
	ParticipantID string      `json:"participantId" bson:"participantId"`
	AssessmentID  string      `json:"assessmentId" bson:"assessmentId"`
	SectionID     string      `json:"sectionId" bson:"sectionId"`
	QuestionID    string      `json:"questionId" bson:"questionId"`
	Value         AnswerValue `json:"value" bson:"value"`
	Timestamp     time.Time   `json:"timestamp" bson:"timestamp"`
}

// Key is the composite key responses are deduplicated by; a later write for
// the same key overwrites the former.
func (r *Response) Key() string {
	return r.SectionID + "-" + r.QuestionID
}
