package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

const feedbacksCollection = "feedbacks"

// FeedbackRepository implements ports.FeedbackRepository using MongoDB.
type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbacksCollection)}
}

func (r *FeedbackRepository) Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	created := *f
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return &f, nil
}

func (r *FeedbackRepository) MarkResolved(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Feedback
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_resolved": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("resolve feedback: %w", err)
	}
	return &f, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Feedback
	for cur.Next(ctx) {
		var f domain.Feedback
		if err := cur.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		out = append(out, &f)
	}
	return out, cur.Err()
}
