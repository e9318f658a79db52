package imagesearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"monastery-guide/internal/domain"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient("search-key", "engine-1", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
}

func TestSearch_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "search-key", q.Get("key"))
		require.Equal(t, "engine-1", q.Get("cx"))
		require.Equal(t, "image", q.Get("searchType"))
		require.Equal(t, "Rumtek Monastery", q.Get("q"))
		require.Equal(t, "4", q.Get("num"))
		_, _ = w.Write([]byte(`{"items":[
			{"link":"https://img.example/a.jpg","title":"Prayer hall"},
			{"link":"https://img.example/b.jpg"}
		]}`))
	}))
	defer srv.Close()

	images, err := newTestClient(srv).Search(context.Background(), "Rumtek Monastery", 4)
	require.NoError(t, err)
	require.Equal(t, []domain.Image{
		{Src: "https://img.example/a.jpg", Caption: "Prayer hall"},
		{Src: "https://img.example/b.jpg", Caption: "Rumtek Monastery"},
	}, images)
}

func TestSearch_AbsentItemsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
	}))
	defer srv.Close()

	images, err := newTestClient(srv).Search(context.Background(), "nothing", 0)
	require.NoError(t, err)
	require.NotNil(t, images)
	require.Empty(t, images)
}

func TestSearch_DefaultNum(t *testing.T) {
	for _, num := range []int{0, -1, 11} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "6", r.URL.Query().Get("num"))
			_, _ = w.Write([]byte(`{}`))
		}))
		_, err := newTestClient(srv).Search(context.Background(), "q", num)
		require.NoError(t, err)
		srv.Close()
	}
}

func TestSearch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "q", 3)
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.HTTPStatusCode())
}

func TestSearch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "q", 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestSearch_NotInitialized(t *testing.T) {
	_, err := NewClient("", "engine").Search(context.Background(), "q", 1)
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = NewClient("key", " ").Search(context.Background(), "q", 1)
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestSearch_EmptyQuery(t *testing.T) {
	_, err := NewClient("key", "engine").Search(context.Background(), "  ", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}
