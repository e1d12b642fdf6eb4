// repositories/lead_repository.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// LeadRepository stores lead capture submissions.
type LeadRepository struct {
	collection *mongo.Collection
}

// NewLeadRepository creates a repository backed by the given database.
func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		collection: db.Collection("leads"),
	}
}

// Insert stores a new lead submission.
func (r *LeadRepository) Insert(ctx context.Context, lead *models.Lead) error {
	lead.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, lead)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}
	return nil
}

// List returns leads newest first.
func (r *LeadRepository) List(ctx context.Context) ([]models.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
