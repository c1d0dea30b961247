package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
)

// Collection names shared with records written by earlier deployments.
const (
	usersCollection  = "user"
	ordersCollection = "orders"
	foodsCollection  = "food"
)

// MongoDB is a connected MongoDB client bound to one database.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to the deployment named by cfg.DSN, pings the
// primary and ensures the indexes the repositories rely on.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().ApplyURI(cfg.DSN).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(20)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo")
		return nil, fmt.Errorf("error connecting mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to mongo successfully")

	m := &MongoDB{
		client: client,
		db:     client.Database(cfg.Name),
		logger: log,
	}
	m.ensureIndexes(ctx)

	return m, nil
}

// Ping implements [HealthChecker].
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// ensureIndexes creates the unique and lookup indexes. Failures are logged
// and startup continues: legacy data may already violate a constraint.
func (m *MongoDB) ensureIndexes(ctx context.Context) {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys: bson.D{{Key: "username", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
			},
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"email": bson.M{"$gt": ""}}),
			},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		ordersCollection: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "orderedAt", Value: -1}}},
		},
		foodsCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := m.collection(name).Indexes().CreateMany(ctx, models); err != nil {
			m.logger.Warn().Err(err).Str("collection", name).Msg("error creating indexes")
		}
	}
}

// isMongoDSN reports whether dsn names a MongoDB deployment.
func isMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

// mongoWriteError converts a failed write into a repository error.
func mongoWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
