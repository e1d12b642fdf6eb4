// repositories/mongo_account_repository.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// MongoAccountRepository persists accounts in the "accounts" collection.
type MongoAccountRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountRepository creates a repository backed by the given database.
func NewMongoAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{
		collection: db.Collection("accounts"),
	}
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *MongoAccountRepository) Insert(ctx context.Context, account *models.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

func (r *MongoAccountRepository) SetOTP(ctx context.Context, email string, otp models.OTPInfo) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"otpInfo": otp, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ConsumeOTPAndSetPassword relies on Mongo's single-document atomicity: the
// filter re-checks the stored code and expiry, and the update both writes the
// hash and unsets the OTP, so a consumed code can never match again.
func (r *MongoAccountRepository) ConsumeOTPAndSetPassword(ctx context.Context, email, code, passwordHash string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"email":             email,
			"otpInfo.code":      code,
			"otpInfo.expiresAt": bson.M{"$gt": time.Now()},
		},
		bson.M{
			"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()},
			"$unset": bson.M{"otpInfo": ""},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrOTPInvalid
	}
	return nil
}

func (r *MongoAccountRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setFlag(ctx, id, "approved", approved)
}

func (r *MongoAccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.setFlag(ctx, id, "active", active)
}

func (r *MongoAccountRepository) setFlag(ctx context.Context, id, field string, value bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAccountRepository) ListPending(ctx context.Context) ([]models.Account, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"approved": false, "active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
