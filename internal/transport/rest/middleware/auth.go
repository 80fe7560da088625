package middleware

import (
	"context"
	"net/http"
	"strings"

	"aiready/internal/service"
)

type contextKey string

const (
	AdminIDKey       contextKey = "adminId"
	CompanyIDKey     contextKey = "companyId"
	ParticipantIDKey contextKey = "participantId"
	AssessmentIDKey  contextKey = "assessmentId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAdmin validates admin JWT from Authorization header
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateAdminToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, AdminIDKey, claims.AdminID)
		ctx = context.WithValue(ctx, CompanyIDKey, claims.CompanyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireParticipant validates participant JWT from Authorization header or query param
func (m *AuthMiddleware) RequireParticipant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// Try query param for WebSocket
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateParticipantToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, ParticipantIDKey, claims.ParticipantID)
		ctx = context.WithValue(ctx, AssessmentIDKey, claims.AssessmentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID extracts admin ID from context
func GetAdminID(ctx context.Context) string {
	if v := ctx.Value(AdminIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetCompanyID extracts company ID from context
func GetCompanyID(ctx context.Context) string {
	if v := ctx.Value(CompanyIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetParticipantID extracts participant ID from context
func GetParticipantID(ctx context.Context) string {
	if v := ctx.Value(ParticipantIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetAssessmentID extracts the token-scoped assessment ID from context
func GetAssessmentID(ctx context.Context) string {
	if v := ctx.Value(AssessmentIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
