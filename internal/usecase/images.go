package usecase

import (
	"context"
	"errors"
	"strings"

	"monastery-guide/internal/domain"
)

// ImageSearcher finds gallery images for a query.
type ImageSearcher interface {
	Search(ctx context.Context, query string, num int) ([]domain.Image, error)
}

type GalleryService struct {
	search ImageSearcher
}

func NewGalleryService(s ImageSearcher) (*GalleryService, error) {
	if s == nil {
		return nil, errors.New("usecase: image searcher must not be nil")
	}
	return &GalleryService{search: s}, nil
}

func (s *GalleryService) Images(ctx context.Context, query string, num int) ([]domain.Image, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newError(ErrorInvalidInput, "empty_query", nil)
	}
	images, err := s.search.Search(ctx, query, num)
	if err != nil {
		return nil, classifyUpstream("image_search", err)
	}
	return images, nil
}
