package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/models"
)

// VectorIndex stores resume embeddings for nearest-neighbour lookups.
type VectorIndex interface {
	InitCollection(ctx context.Context) error
	UpsertResume(ctx context.Context, resume *models.Resume) error
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]VectorMatch, error)
}

type VectorMatch struct {
	ResumeID uuid.UUID
	Score    float32
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	logger         *zap.Logger
}

// NewQdrantIndex connects to Qdrant over gRPC. The port defaults to 6334
// when urlStr carries none.
func NewQdrantIndex(urlStr, apiKey, collectionName string, vectorSize int, logger *zap.Logger) (VectorIndex, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	if host == "" {
		host = urlStr
	}
	useTLS := parsed.Scheme == "https"

	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     uint64(vectorSize),
		logger:         logger,
	}, nil
}

// InitCollection implements VectorIndex.
func (q *qdrantIndex) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.logger.Info("✅ Collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.logger.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertResume implements VectorIndex. The point id is the resume id, so
// re-indexing a resume replaces its point.
func (q *qdrantIndex) UpsertResume(ctx context.Context, resume *models.Resume) error {
	if len(resume.Embedding) == 0 {
		return fmt.Errorf("resume %s has no embedding", resume.ID)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(resume.ID.String()),
		Vectors: qdrant.NewVectors(resume.Embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"resume_id":    resume.ID.String(),
			"career_stage": resume.CareerStage,
			"location":     resume.Location,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchSimilar implements VectorIndex.
func (q *qdrantIndex) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]VectorMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	matches := make([]VectorMatch, 0, len(points))
	for _, point := range points {
		raw, ok := point.Payload["resume_id"]
		if !ok {
			continue
		}
		val, ok := raw.GetKind().(*qdrant.Value_StringValue)
		if !ok {
			continue
		}
		id, err := uuid.Parse(val.StringValue)
		if err != nil {
			q.logger.Warn("⚠️ skipping point with bad resume_id", zap.String("resume_id", val.StringValue))
			continue
		}
		matches = append(matches, VectorMatch{ResumeID: id, Score: point.Score})
	}

	return matches, nil
}
