package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/models"
)

// mongoUserRepository is the MongoDB implementation of [UserRepository]
// over the "user" collection.
type mongoUserRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
	now    func() time.Time
}

// NewMongoUserRepository constructs a MongoDB [UserRepository].
func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	return newMongoUserRepository(db.collection(usersCollection), logger)
}

func newMongoUserRepository(users *mongo.Collection, logger *logger.Logger) *mongoUserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		logger: logger,
		users:  users,
		now:    time.Now,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := r.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.users.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, mongoWriteError(err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return user, nil
}

// FindUser returns the oldest matching user. ObjectIDs grow with insertion
// time, so sorting on _id also covers records without createdAt.
func (r *mongoUserRepository) FindUser(ctx context.Context, lookup models.UserLookup) (models.User, error) {
	filter := userLookupFilter(lookup)
	if filter == nil {
		return models.User{}, ErrNotFound
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.findOne(ctx, "*mongoUserRepository.FindUser", filter, opts)
}

func (r *mongoUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	return r.findOne(ctx, "*mongoUserRepository.GetUserByID", bson.M{"_id": oid})
}

func (r *mongoUserRepository) findOne(ctx context.Context, fn string, filter any, opts ...*options.FindOneOptions) (models.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, filter, opts...).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateByID(ctx, "*mongoUserRepository.UpdatePassword", id, bson.M{
		"passwordHash": passwordHash,
		"password":     passwordHash,
		"updatedAt":    r.now().UTC(),
	})
}

func (r *mongoUserRepository) UpdateRecoveryAnswers(ctx context.Context, id string, answers models.SecurityQuestions) error {
	return r.updateByID(ctx, "*mongoUserRepository.UpdateRecoveryAnswers", id, bson.M{
		"securityQuestions": securityQuestionsDoc{
			FavouriteBook: answers.FavouriteBook,
			BestSubject:   answers.BestSubject,
		},
		"book":      answers.FavouriteBook,
		"subject":   answers.BestSubject,
		"updatedAt": r.now().UTC(),
	})
}

func (r *mongoUserRepository) updateByID(ctx context.Context, fn, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.users.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error updating user")
		return mongoWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// userLookupFilter returns nil when the lookup has nothing to match on.
func userLookupFilter(lookup models.UserLookup) bson.M {
	var or bson.A
	if len(lookup.Handles) > 0 {
		or = append(or,
			bson.M{"username": bson.M{"$in": lookup.Handles}},
			bson.M{"name": bson.M{"$in": lookup.Handles}},
		)
	}
	if lookup.Email != "" {
		or = append(or, bson.M{"email": lookup.Email})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$or": or}
}
