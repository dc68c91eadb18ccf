package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

// LoggingService defines calculation log operations.
type LoggingService interface {
	// CreateLog stores a single calculation log entry.
	CreateLog(ctx context.Context, entry *model.CalculationLog) error
	// CreateLogs stores multiple calculation log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.CalculationLog) error
	// QueryLogs retrieves calculation log entries matching the options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.CalculationLog, error)
	// CountLogs counts calculation log entries matching the options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService over the logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores a single calculation log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.CalculationLog) error {
	return s.repo.Create(ctx, s.modelToDocument(entry))
}

// CreateLogs stores multiple calculation log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.CalculationLog) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.CalculationLogDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.modelToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs retrieves calculation log entries matching the options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.CalculationLog, error) {
	docs, err := s.repo.Query(ctx, repoQueryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.CalculationLog, len(docs))
	for i, doc := range docs {
		entries[i] = s.documentToModel(doc)
	}
	return entries, nil
}

// CountLogs counts calculation log entries matching the options.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, repoQueryOptions(opts))
}

func repoQueryOptions(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID:   opts.RequestID,
		Kind:        opts.Kind,
		PricingMode: opts.PricingMode,
		StartTime:   opts.StartTime,
		EndTime:     opts.EndTime,
		Limit:       opts.Limit,
		Skip:        opts.Skip,
	}
}

func (s *LoggingServiceImpl) modelToDocument(entry *model.CalculationLog) *repository.CalculationLogDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return &repository.CalculationLogDocument{
		ID:          entry.ID,
		Timestamp:   entry.Timestamp,
		RequestID:   entry.RequestID,
		Kind:        entry.Kind,
		PricingMode: entry.PricingMode,
		DistanceKm:  entry.DistanceKm,
		DurationMin: entry.DurationMin,
		WeightKg:    entry.WeightKg,
		Fragile:     entry.Fragile,
		Priority:    entry.Priority,
		Total:       entry.Total,
		QuoteCount:  entry.QuoteCount,
		DurationMs:  entry.DurationMs,
		IP:          entry.IP,
		Error:       entry.Error,
		Fields:      entry.Fields,
	}
}

func (s *LoggingServiceImpl) documentToModel(doc *repository.CalculationLogDocument) model.CalculationLog {
	return model.CalculationLog{
		ID:          doc.ID,
		Timestamp:   doc.Timestamp,
		RequestID:   doc.RequestID,
		Kind:        doc.Kind,
		PricingMode: doc.PricingMode,
		DistanceKm:  doc.DistanceKm,
		DurationMin: doc.DurationMin,
		WeightKg:    doc.WeightKg,
		Fragile:     doc.Fragile,
		Priority:    doc.Priority,
		Total:       doc.Total,
		QuoteCount:  doc.QuoteCount,
		DurationMs:  doc.DurationMs,
		IP:          doc.IP,
		Error:       doc.Error,
		Fields:      doc.Fields,
	}
}
