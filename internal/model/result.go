package model

import "time"

// DimensionScore is the computed score for one dimension, recomputed fresh
// from the full response set on every scoring pass.
type DimensionScore struct {
	Dimension  string  `json:"dimension" bson:"dimension"`
	Score      float64 `json:"score" bson:"score"` // 0-5 weighted average
	MaxScore   float64 `json:"maxScore" bson:"maxScore"`
	Percentage int     `json:"percentage" bson:"percentage"` // 0-100
}

// RadarPoint is one display-ready radar chart entry
type RadarPoint struct {
	Dimension   string   `json:"dimension" bson:"dimension"`
	UserScore   int      `json:"userScore" bson:"userScore"`
	PeerAverage *float64 `json:"peerAverage,omitempty" bson:"peerAverage,omitempty"`
	MaxScore    int      `json:"maxScore" bson:"maxScore"`
}

// AssessmentResult is the output of one scoring pass for one participant
type AssessmentResult struct {
	ID              string           `json:"id,omitempty" bson:"_id,omitempty"`
	ParticipantID   string           `json:"participantId" bson:"participantId"`
	AssessmentID    string           `json:"assessmentId" bson:"assessmentId"`
	Scores          []DimensionScore `json:"scores" bson:"scores"`
	OverallScore    int              `json:"overallScore" bson:"overallScore"` // 0-100
	CompletionDate  time.Time        `json:"completionDate" bson:"completionDate"`
	Recommendations []string         `json:"recommendations" bson:"recommendations"`
	RadarData       []RadarPoint     `json:"radarData" bson:"radarData"`
}
