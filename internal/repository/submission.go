package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"applicant-portal-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type SubmissionRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{
		collection: db.Collection("submissions"),
		mu:         &sync.Mutex{},
	}
}

func (r *SubmissionRepository) New(ctx context.Context, record *models.SubmissionRecord) (*models.SubmissionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID.IsZero() {
		record.ID = bson.NewObjectID()
	}

	currentTime := time.Now().Unix()
	if record.Metadata.CreatedAt == 0 {
		record.Metadata.CreatedAt = currentTime
	}
	record.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission record: %w", err)
	}
	return record, nil
}

func (r *SubmissionRepository) Search(ctx context.Context, query *models.SubmissionSearchQuery) ([]*models.SubmissionRecord, int64, error) {
	filter := bson.M{}
	if query.UserID != "" {
		filter["userId"] = query.UserID
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	opts := options.Find()
	opts.SetSort(bson.M{"metadata.createdAt": -1})
	opts.SetSkip(int64((query.Page - 1) * query.PageSize))
	opts.SetLimit(int64(query.PageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.SubmissionRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode submissions: %w", err)
	}

	return records, totalCount, nil
}

func (r *SubmissionRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "resource", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "metadata.createdAt", Value: -1}},
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "metadata.createdAt", Value: -1},
			},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create submission indexes: %w", err)
	}

	return nil
}
