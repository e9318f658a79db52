package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/integrations/imagesearch"
)

type fakeSearcher struct {
	images []domain.Image
	err    error
	query  string
	num    int
}

func (f *fakeSearcher) Search(_ context.Context, query string, num int) ([]domain.Image, error) {
	f.query, f.num = query, num
	return f.images, f.err
}

func TestGalleryImages(t *testing.T) {
	fs := &fakeSearcher{images: []domain.Image{{Src: "https://img/1.jpg", Caption: "Rumtek"}}}
	svc, err := NewGalleryService(fs)
	require.NoError(t, err)

	images, err := svc.Images(context.Background(), "  Rumtek Monastery ", 4)
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.Equal(t, "Rumtek Monastery", fs.query)
	require.Equal(t, 4, fs.num)
}

func TestGalleryImages_Errors(t *testing.T) {
	_, err := NewGalleryService(nil)
	require.Error(t, err)

	svc, err := NewGalleryService(&fakeSearcher{})
	require.NoError(t, err)
	_, err = svc.Images(context.Background(), " ", 4)
	expectUsecaseError(t, err, ErrorInvalidInput, "empty_query")

	svc, _ = NewGalleryService(&fakeSearcher{err: imagesearch.ErrNotInitialized})
	_, err = svc.Images(context.Background(), "Enchey", 4)
	expectUsecaseError(t, err, ErrorNotInitialized, "image_search_not_initialized")

	svc, _ = NewGalleryService(&fakeSearcher{err: &imagesearch.HTTPStatusError{StatusCode: http.StatusForbidden}})
	_, err = svc.Images(context.Background(), "Enchey", 4)
	expectUsecaseError(t, err, ErrorUpstream, "image_search_status_error")
}
