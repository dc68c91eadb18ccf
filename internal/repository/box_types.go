package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// BoxTypeDocument is one box entry inside a catalog document.
type BoxTypeDocument struct {
	Name        string  `bson:"name" json:"name"`
	Length      float64 `bson:"length" json:"length"`
	Width       float64 `bson:"width" json:"width"`
	Height      float64 `bson:"height" json:"height"`
	WeightLimit float64 `bson:"weight_limit" json:"weight_limit"`
}

// BoxCatalogConfig is a versioned box catalog document. Exactly one document
// is active at a time; older versions are kept for history.
type BoxCatalogConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Boxes     []BoxTypeDocument      `bson:"boxes" json:"boxes"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ModelBoxes converts the catalog entries to domain box types.
func (c *BoxCatalogConfig) ModelBoxes() []model.BoxType {
	boxes := make([]model.BoxType, len(c.Boxes))
	for i, b := range c.Boxes {
		boxes[i] = model.BoxType{
			Name:        b.Name,
			Length:      b.Length,
			Width:       b.Width,
			Height:      b.Height,
			WeightLimit: b.WeightLimit,
		}
	}
	return boxes
}

// DocumentBoxes converts domain box types to catalog entries.
func DocumentBoxes(boxes []model.BoxType) []BoxTypeDocument {
	docs := make([]BoxTypeDocument, len(boxes))
	for i, b := range boxes {
		docs[i] = BoxTypeDocument{
			Name:        b.Name,
			Length:      b.Length,
			Width:       b.Width,
			Height:      b.Height,
			WeightLimit: b.WeightLimit,
		}
	}
	return docs
}

// BoxTypesRepository provides box catalog persistence.
type BoxTypesRepository struct {
	collection *mongo.Collection
}

// NewBoxTypesRepository creates a new box types repository.
func NewBoxTypesRepository(db *MongoDB) *BoxTypesRepository {
	return &BoxTypesRepository{collection: db.BoxTypes}
}

// GetActive returns the active box catalog, or nil when none is configured.
func (r *BoxTypesRepository) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	var config BoxCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current catalog and inserts a new active one.
func (r *BoxTypesRepository) Create(ctx context.Context, boxes []BoxTypeDocument, createdBy string) (*BoxCatalogConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BoxCatalogConfig{
		ID:        primitive.NewObjectID(),
		Boxes:     boxes,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Update replaces the boxes of an existing catalog and bumps its version.
func (r *BoxTypesRepository) Update(ctx context.Context, id primitive.ObjectID, boxes []BoxTypeDocument, updatedBy string) (*BoxCatalogConfig, error) {
	var current BoxCatalogConfig
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return nil, err
	}

	set := bson.M{
		"boxes":      boxes,
		"updated_at": time.Now(),
		"version":    current.Version + 1,
	}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}

	var config BoxCatalogConfig
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// List returns box catalogs, newest first.
func (r *BoxTypesRepository) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BoxCatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
