package service

import (
	"context"
	"errors"
	"log"

	"aiready/internal/cache"
	"aiready/internal/model"
	"aiready/internal/repository"
	"aiready/internal/scoring"
)

var ErrTemplateNotFound = errors.New("template not found")

// AssessmentService records responses and runs the scoring engine over a
// participant's response set.
type AssessmentService struct {
	templateRepo repository.TemplateRepo
	responseRepo repository.ResponseRepo
	resultRepo   repository.ResultRepo
	peerCache    cache.PeerCache
	broadcaster  Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	templateRepo repository.TemplateRepo,
	responseRepo repository.ResponseRepo,
	resultRepo repository.ResultRepo,
	peerCache cache.PeerCache,
) *AssessmentService {
	return &AssessmentService{
		templateRepo: templateRepo,
		responseRepo: responseRepo,
		resultRepo:   resultRepo,
		peerCache:    peerCache,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitResponse stores one response; resubmitting the same question
// replaces the earlier answer.
func (s *AssessmentService) SubmitResponse(ctx context.Context, response *model.Response) error {
	if err := s.responseRepo.Save(ctx, response); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(response.AssessmentID, "response_recorded", map[string]string{
			"participantId": response.ParticipantID,
			"questionId":    response.QuestionID,
		})
	}
	return nil
}

// GetResponses returns all stored responses for one participant
func (s *AssessmentService) GetResponses(ctx context.Context, assessmentID, participantID string) ([]*model.Response, error) {
	return s.responseRepo.GetByParticipant(ctx, assessmentID, participantID)
}

// ComputeResult scores a participant's full response set, persists the
// result, folds it into the peer averages, and notifies admin dashboards.
func (s *AssessmentService) ComputeResult(ctx context.Context, assessmentID, participantID string) (*model.AssessmentResult, error) {
	template, err := s.templateRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	responses, err := s.responseRepo.GetByParticipant(ctx, assessmentID, participantID)
	if err != nil {
		return nil, err
	}

	// Peer averages are best effort; scoring proceeds without them
	peerAverages, err := s.peerCache.Averages(ctx, assessmentID)
	if err != nil {
		log.Printf("peer averages unavailable for assessment %s: %v", assessmentID, err)
		peerAverages = nil
	}

	engine := scoring.NewEngine(template)
	engine.AddResponses(responses)
	result := engine.CalculateResult(participantID, peerAverages)

	if err := s.resultRepo.SaveResult(ctx, result); err != nil {
		return nil, err
	}
	if err := s.peerCache.Record(ctx, assessmentID, participantID, result.Scores); err != nil {
		log.Printf("failed to record peer scores for assessment %s: %v", assessmentID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(assessmentID, "assessment_completed", map[string]interface{}{
			"participantId": participantID,
			"overallScore":  result.OverallScore,
		})
		s.broadcaster.BroadcastToParticipant(assessmentID, participantID, "result_ready", result)
	}
	return result, nil
}

// GetResult returns a previously computed result, nil if none exists
func (s *AssessmentService) GetResult(ctx context.Context, assessmentID, participantID string) (*model.AssessmentResult, error) {
	return s.resultRepo.GetResult(ctx, assessmentID, participantID)
}

// GetResultsByAssessment returns every computed result for an assessment
func (s *AssessmentService) GetResultsByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	return s.resultRepo.GetResultsByAssessment(ctx, assessmentID)
}
