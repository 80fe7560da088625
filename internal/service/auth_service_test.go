package service

import (
	"errors"
	"strings"
	"testing"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService()

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := NewAuthService()

	resp, err := svc.Login("admin", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.HasPrefix(resp.AdminID, "admin_") {
		t.Errorf("adminId = %q", resp.AdminID)
	}

	claims, err := svc.ValidateAdminToken(resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AdminID != resp.AdminID {
		t.Errorf("adminId = %q, want %q", claims.AdminID, resp.AdminID)
	}
	if claims.CompanyID != "default" {
		t.Errorf("companyId = %q, want default", claims.CompanyID)
	}
}

func TestParticipantTokenScopedToAssessment(t *testing.T) {
	svc := NewAuthService()

	resp, err := svc.IssueParticipantToken("a1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !strings.HasPrefix(resp.ParticipantID, "p_") {
		t.Errorf("participantId = %q", resp.ParticipantID)
	}

	claims, err := svc.ValidateParticipantToken(resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AssessmentID != "a1" {
		t.Errorf("assessmentId = %q, want a1", claims.AssessmentID)
	}
	if claims.ParticipantID != resp.ParticipantID {
		t.Errorf("participantId = %q, want %q", claims.ParticipantID, resp.ParticipantID)
	}
}

func TestValidateRejectsGarbageAndCrossTypeTokens(t *testing.T) {
	svc := NewAuthService()

	if _, err := svc.ValidateAdminToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.ValidateParticipantToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
