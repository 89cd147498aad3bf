package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/persistence"
	"github.com/spec-kit/supplychain-service/internal/search"
)

// SearchResult carries the outcome of a natural-language query.
type SearchResult struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	SQL     string           `json:"sql,omitempty"`
	Results []map[string]any `json:"results,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// SearchService runs natural-language queries against the live schema.
type SearchService struct {
	pool       *pgxpool.Pool
	generator  *search.Generator
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewSearchService builds the service. cache may be nil.
func NewSearchService(pool *pgxpool.Pool, generator *search.Generator, cache *persistence.Redis, cacheTTL time.Duration, dispatcher events.Dispatcher, logger *zap.Logger) *SearchService {
	return &SearchService{
		pool:       pool,
		generator:  generator,
		cache:      cache,
		cacheTTL:   cacheTTL,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Search translates the query to SQL, executes it, and returns row maps.
// Failures are reported inside the result rather than as an error, matching
// the wire contract consumed by dashboard callers.
func (s *SearchService) Search(ctx context.Context, actorID int64, queryText string) *SearchResult {
	sql := s.cachedSQL(ctx, queryText)
	if sql == "" {
		sql = s.generator.Generate(ctx, queryText)
		s.storeSQL(ctx, queryText, sql)
	}

	rows, err := s.execute(ctx, sql)
	if err != nil {
		s.logger.Warn("search execution failed", zap.String("sql", sql), zap.Error(err))
		return &SearchResult{Success: false, Query: queryText, Error: err.Error()}
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventSearchRan,
		ActorID: actorID,
		Payload: events.SearchRanPayload{Query: queryText, SQL: sql},
	})
	return &SearchResult{Success: true, Query: queryText, SQL: sql, Results: rows}
}

func (s *SearchService) execute(ctx context.Context, sql string) ([]map[string]any, error) {
	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("execute search query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *SearchService) cachedSQL(ctx context.Context, queryText string) string {
	sql, ok, err := s.cache.GetCached(ctx, searchCacheKey(queryText))
	if err != nil {
		s.logger.Warn("search cache read failed", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return sql
}

func (s *SearchService) storeSQL(ctx context.Context, queryText, sql string) {
	if err := s.cache.SetCached(ctx, searchCacheKey(queryText), sql, s.cacheTTL); err != nil {
		s.logger.Warn("search cache write failed", zap.Error(err))
	}
}

func searchCacheKey(queryText string) string {
	sum := sha256.Sum256([]byte(queryText))
	return "search:sql:" + hex.EncodeToString(sum[:])
}
