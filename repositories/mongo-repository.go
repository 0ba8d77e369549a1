package repositories

import (
	"context"
	"errors"
	"fmt"

	"viukon-cms/logging"
	"viukon-cms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ SiteDataRepository = (*MongoRepository)(nil)

// The document store holds exactly one site-data document under this id.
const siteDataDocumentID = "sitedata"

type siteDataDocument struct {
	ID              string `bson:"_id"`
	models.SiteData `bson:",inline"`
}

type MongoOptions struct {
	URI         string
	Database    string
	Collection  string
	MaxPoolSize uint64
}

type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepository connects to MongoDB and verifies the connection with a ping.
func NewMongoRepository(ctx context.Context, opts MongoOptions) (*MongoRepository, error) {
	clientOptions := options.Client().ApplyURI(opts.URI)
	if opts.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(opts.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Connected to MongoDB collection %s/%s", opts.Database, opts.Collection)
	return &MongoRepository{
		client:     client,
		collection: client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

func (r *MongoRepository) Get(ctx context.Context) (*models.SiteData, error) {
	var stored siteDataDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": siteDataDocumentID}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching site data: %w", err)
	}

	doc := stored.SiteData
	doc.Normalize()
	return &doc, nil
}

func (r *MongoRepository) Create(ctx context.Context, doc *models.SiteData) error {
	_, err := r.collection.InsertOne(ctx, siteDataDocument{ID: siteDataDocumentID, SiteData: *doc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("creating site data: %w", err)
	}
	return nil
}

// Replace overwrites the document in one ReplaceOne call, which MongoDB
// applies atomically for a single document.
func (r *MongoRepository) Replace(ctx context.Context, doc *models.SiteData) error {
	filter := bson.M{"_id": siteDataDocumentID}
	_, err := r.collection.ReplaceOne(ctx, filter, siteDataDocument{ID: siteDataDocumentID, SiteData: *doc}, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replacing site data: %w", err)
	}
	return nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *MongoRepository) Close(ctx context.Context) error {
	if err := r.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongodb: %w", err)
	}
	return nil
}
