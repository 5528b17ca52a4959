// Package store persists articles and their extraction results in
// MongoDB. Raw articles live in a source collection, processed ones in
// a target collection keyed by the same _id.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/azlabs/tanit/internal/model"
)

// MongoStore is the article store.
type MongoStore struct {
	client *mongo.Client
	source *mongo.Collection
	target *mongo.Collection
	log    *logrus.Entry
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg model.MongoConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := client.Database(cfg.Database)

	return &MongoStore{
		client: client,
		source: db.Collection(cfg.SourceCollection),
		target: db.Collection(cfg.TargetCollection),
		log:    logrus.WithField("component", "store"),
	}, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the target collection indexes.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.target.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "processed_date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// InsertArticle stores a raw article in the source collection and
// returns its id.
func (s *MongoStore) InsertArticle(ctx context.Context, article model.Article) (string, error) {
	res, err := s.source.InsertOne(ctx, article)
	if err != nil {
		return "", fmt.Errorf("insert article: %w", err)
	}

	if article.ID != "" {
		return article.ID, nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// ProcessedIDs returns the ids already present in the target collection.
func (s *MongoStore) ProcessedIDs(ctx context.Context) ([]string, error) {
	raw, err := s.target.Distinct(ctx, "_id", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// UnprocessedArticles returns source articles that have no processed
// counterpart yet. A limit of 0 means no limit.
func (s *MongoStore) UnprocessedArticles(ctx context.Context, limit int64) ([]model.Article, error) {
	processed, err := s.ProcessedIDs(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if len(processed) > 0 {
		filter = bson.M{"_id": bson.M{"$nin": processed}}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.source.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var articles []model.Article
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	return articles, nil
}

// InsertProcessedBatch writes a batch of processed articles. The write
// is unordered, so duplicates are skipped without losing the rest of
// the batch.
func (s *MongoStore) InsertProcessedBatch(ctx context.Context, batch []model.ProcessedArticle) error {
	if len(batch) == 0 {
		return nil
	}

	docs := make([]interface{}, len(batch))
	for i, pa := range batch {
		docs[i] = pa
	}

	_, err := s.target.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			s.log.WithError(err).Warn("duplicate documents skipped")
			return nil
		}
		return fmt.Errorf("insert batch: %w", err)
	}

	return nil
}

// CountProcessed returns the number of processed articles.
func (s *MongoStore) CountProcessed(ctx context.Context) (int64, error) {
	n, err := s.target.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count processed: %w", err)
	}
	return n, nil
}

// Chunk splits articles into insert batches of the given size.
func Chunk(articles []model.ProcessedArticle, size int) [][]model.ProcessedArticle {
	if size <= 0 {
		size = 100
	}

	var chunks [][]model.ProcessedArticle
	for start := 0; start < len(articles); start += size {
		end := start + size
		if end > len(articles) {
			end = len(articles)
		}
		chunks = append(chunks, articles[start:end])
	}
	return chunks
}
