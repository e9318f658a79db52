package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/render"
	"monastery-guide/internal/repository"
)

// CatalogReader looks up monastery records.
type CatalogReader interface {
	GetByID(id int) (domain.Monastery, bool)
}

// InsightService fetches and caches topic texts per monastery. The cache
// lives as long as the service.
type InsightService struct {
	assistant Assistant
	catalog   CatalogReader
	cache     *repository.InsightCache
	logger    *zap.Logger
	group     singleflight.Group
}

func NewInsightService(a Assistant, c CatalogReader, cache *repository.InsightCache, logger *zap.Logger) (*InsightService, error) {
	if a == nil {
		return nil, errors.New("usecase: assistant must not be nil")
	}
	if c == nil {
		return nil, errors.New("usecase: catalog must not be nil")
	}
	if cache == nil {
		cache = repository.NewInsightCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{assistant: a, catalog: c, cache: cache, logger: logger}, nil
}

// GetInsight returns the rendered HTML for one topic of one monastery.
// Concurrent misses for the same key share a single assistant call and
// failures are not cached.
func (s *InsightService) GetInsight(ctx context.Context, entityID int, topic domain.TopicKind) (string, error) {
	if !topic.Valid() {
		return "", newError(ErrorInvalidInput, "invalid_topic", &InvalidTopicError{Topic: topic})
	}
	key := repository.InsightKey{EntityID: entityID, Topic: topic}
	if html, ok := s.cache.Get(key); ok {
		return html, nil
	}
	m, ok := s.catalog.GetByID(entityID)
	if !ok {
		return "", newError(ErrorNotFound, "entity_not_found", &EntityNotFoundError{ID: entityID})
	}
	prompt, ok := buildTopicPrompt(m, topic)
	if !ok {
		return "", newError(ErrorInvalidInput, "invalid_topic", &InvalidTopicError{Topic: topic})
	}

	// The shared call runs detached from any single caller so one caller
	// leaving does not fail the others waiting on the same key.
	ch := s.group.DoChan(key.String(), func() (any, error) {
		if html, ok := s.cache.Get(key); ok {
			return html, nil
		}
		text, err := s.assistant.Generate(context.WithoutCancel(ctx), prompt)
		if err != nil {
			return "", err
		}
		return s.cache.Put(key, render.Paragraphs(text)), nil
	})

	select {
	case <-ctx.Done():
		return "", newError(ErrorInternal, "insight_cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			s.logger.Warn("insight fetch failed",
				zap.Int("monastery_id", entityID),
				zap.String("topic", string(topic)),
				zap.Error(res.Err),
			)
			return "", classifyUpstream("insight", res.Err)
		}
		return res.Val.(string), nil
	}
}

// Cached reports whether a topic is already in the cache.
func (s *InsightService) Cached(entityID int, topic domain.TopicKind) bool {
	_, ok := s.cache.Get(repository.InsightKey{EntityID: entityID, Topic: topic})
	return ok
}
