package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiready/internal/model"
)

// ResultRepo handles MongoDB operations for computed assessment results and
// organization summaries. Results are derived values; saving one is a full
// replace, never a partial update.
type ResultRepo interface {
	SaveResult(ctx context.Context, result *model.AssessmentResult) error
	GetResult(ctx context.Context, assessmentID, participantID string) (*model.AssessmentResult, error)
	GetResultsByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error)
	SaveSummary(ctx context.Context, summary *model.OrganizationSummary) error
	GetSummary(ctx context.Context, companyID string) (*model.OrganizationSummary, error)
}

type resultRepo struct {
	results   *mongo.Collection
	summaries *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		results:   db.Collection("assessment_results"),
		summaries: db.Collection("organization_summaries"),
	}
}

func (r *resultRepo) SaveResult(ctx context.Context, result *model.AssessmentResult) error {
	filter := bson.M{
		"assessmentId":  result.AssessmentID,
		"participantId": result.ParticipantID,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.results.ReplaceOne(ctx, filter, result, opts)
	return err
}

func (r *resultRepo) GetResult(ctx context.Context, assessmentID, participantID string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.results.FindOne(ctx, bson.M{
		"assessmentId":  assessmentID,
		"participantId": participantID,
	}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) GetResultsByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	cursor, err := r.results.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.AssessmentResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepo) SaveSummary(ctx context.Context, summary *model.OrganizationSummary) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.summaries.ReplaceOne(ctx, bson.M{"companyId": summary.CompanyID}, summary, opts)
	return err
}

func (r *resultRepo) GetSummary(ctx context.Context, companyID string) (*model.OrganizationSummary, error) {
	var summary model.OrganizationSummary
	err := r.summaries.FindOne(ctx, bson.M{"companyId": companyID}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
