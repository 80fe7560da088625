package service

import (
	"context"
	"log"

	"aiready/internal/cache"
	"aiready/internal/model"
	"aiready/internal/repository"
	"aiready/internal/workflow"
)

// InsightService runs the workflow intelligence engine per participant and
// aggregates the results into organization-level summaries.
type InsightService struct {
	responseRepo repository.ResponseRepo
	resultRepo   repository.ResultRepo
	insightCache cache.InsightCache
	broadcaster  Broadcaster
}

// NewInsightService creates a new insight service
func NewInsightService(
	responseRepo repository.ResponseRepo,
	resultRepo repository.ResultRepo,
	insightCache cache.InsightCache,
) *InsightService {
	return &InsightService{
		responseRepo: responseRepo,
		resultRepo:   resultRepo,
		insightCache: insightCache,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// AnalyzeParticipant computes workflow insights for one participant,
// serving from the cache when the response set has not changed.
func (s *InsightService) AnalyzeParticipant(ctx context.Context, assessmentID, participantID string) (*model.WorkflowInsights, error) {
	cached, err := s.insightCache.Get(ctx, assessmentID, participantID)
	if err != nil {
		log.Printf("insight cache read failed for %s/%s: %v", assessmentID, participantID, err)
	}
	if cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetByParticipant(ctx, assessmentID, participantID)
	if err != nil {
		return nil, err
	}

	engine := workflow.NewEngine()
	insights := engine.AnalyzeWorkflows(responses)
	insights.ParticipantID = participantID

	if err := s.insightCache.Set(ctx, assessmentID, insights); err != nil {
		log.Printf("insight cache write failed for %s/%s: %v", assessmentID, participantID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToParticipant(assessmentID, participantID, "insights_ready", insights)
	}
	return insights, nil
}

// InvalidateParticipant drops cached insights after new responses arrive
func (s *InsightService) InvalidateParticipant(ctx context.Context, assessmentID, participantID string) error {
	return s.insightCache.Invalidate(ctx, assessmentID, participantID)
}

// SummarizeOrganization analyzes every participant of an assessment and
// persists the aggregated organization summary.
func (s *InsightService) SummarizeOrganization(ctx context.Context, companyID, assessmentID string) (*model.OrganizationSummary, error) {
	participantIDs, err := s.responseRepo.GetParticipantIDs(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	insights := make([]*model.WorkflowInsights, 0, len(participantIDs))
	for _, pid := range participantIDs {
		ins, err := s.AnalyzeParticipant(ctx, assessmentID, pid)
		if err != nil {
			log.Printf("skipping participant %s in summary: %v", pid, err)
			continue
		}
		insights = append(insights, ins)
	}

	summary := workflow.AggregateInsights(insights)
	summary.CompanyID = companyID

	if err := s.resultRepo.SaveSummary(ctx, summary); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(assessmentID, "summary_updated", map[string]interface{}{
			"companyId":    companyID,
			"participants": summary.Participants,
		})
	}
	return summary, nil
}

// GetSummary returns the stored organization summary, nil if none exists
func (s *InsightService) GetSummary(ctx context.Context, companyID string) (*model.OrganizationSummary, error) {
	return s.resultRepo.GetSummary(ctx, companyID)
}
