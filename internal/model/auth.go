package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for company admin authentication
type AdminClaims struct {
	AdminID   string `json:"adminId"`
	CompanyID string `json:"companyId"`
	jwt.RegisteredClaims
}

// ParticipantClaims are JWT claims for assessment-scoped participant tokens
type ParticipantClaims struct {
	ParticipantID string `json:"participantId"`
	AssessmentID  string `json:"assessmentId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// JoinResponse is returned when a participant joins an assessment
type JoinResponse struct {
	Token         string `json:"token"`
	ParticipantID string `json:"participantId"`
}
