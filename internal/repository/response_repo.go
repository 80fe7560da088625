package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiready/internal/model"
)

// ResponseRepo handles MongoDB operations for participant responses
type ResponseRepo interface {
	Save(ctx context.Context, response *model.Response) error
	GetByParticipant(ctx context.Context, assessmentID, participantID string) ([]*model.Response, error)
	GetParticipantIDs(ctx context.Context, assessmentID string) ([]string, error)
	DeleteByParticipant(ctx context.Context, assessmentID, participantID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

// Save upserts on the participant + sectionId-questionId composite key, so a
// later answer to the same question replaces the earlier one.
func (r *responseRepo) Save(ctx context.Context, response *model.Response) error {
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now()
	}

	filter := bson.M{
		"assessmentId":  response.AssessmentID,
		"participantId": response.ParticipantID,
		"sectionId":     response.SectionID,
		"questionId":    response.QuestionID,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, response, opts)
	return err
}

func (r *responseRepo) GetByParticipant(ctx context.Context, assessmentID, participantID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"assessmentId":  assessmentID,
		"participantId": participantID,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) GetParticipantIDs(ctx context.Context, assessmentID string) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, "participantId", bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

func (r *responseRepo) DeleteByParticipant(ctx context.Context, assessmentID, participantID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"assessmentId":  assessmentID,
		"participantId": participantID,
	})
	return err
}
