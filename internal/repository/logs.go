package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalculationLogDocument is the MongoDB representation of a calculation log.
type CalculationLogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Kind      string             `bson:"kind" json:"kind"`

	PricingMode string  `bson:"pricing_mode,omitempty" json:"pricing_mode,omitempty"`
	DistanceKm  float64 `bson:"distance_km,omitempty" json:"distance_km,omitempty"`
	DurationMin float64 `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	WeightKg    float64 `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	Fragile     bool    `bson:"fragile,omitempty" json:"fragile,omitempty"`
	Priority    bool    `bson:"priority,omitempty" json:"priority,omitempty"`

	Total      float64 `bson:"total,omitempty" json:"total,omitempty"`
	QuoteCount int     `bson:"quote_count,omitempty" json:"quote_count,omitempty"`

	DurationMs int64  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string `bson:"ip,omitempty" json:"ip,omitempty"`
	Error      string `bson:"error,omitempty" json:"error,omitempty"`

	Fields map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// LogsRepository provides calculation log persistence.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create inserts a new calculation log document.
func (r *LogsRepository) Create(ctx context.Context, entry *CalculationLogDocument) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts calculation log documents in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*CalculationLogDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		if entry.ID.IsZero() {
			entry.ID = primitive.NewObjectID()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// LogQueryOptions filters calculation log queries at the repository level.
type LogQueryOptions struct {
	RequestID   string
	Kind        string
	PricingMode string
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Skip        int
}

func (opts LogQueryOptions) filter() bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Kind != "" {
		filter["kind"] = opts.Kind
	}
	if opts.PricingMode != "" {
		filter["pricing_mode"] = opts.PricingMode
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// Query returns calculation log documents matching the filter, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*CalculationLogDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*CalculationLogDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of calculation log documents matching the filter.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
