package service

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/ratings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionJSON = `{
	"title": "Inception",
	"synopsis": "A thief who steals corporate secrets.",
	"genres": ["Action", "Sci-Fi"],
	"ratings": {"audience_score": 91},
	"posters": {"thumbnail": "http://x/p.jpg"}
}`

func seedPendingMovie(t *testing.T) *model.Movie {
	t.Helper()
	movie := &model.Movie{Id: 7, Name: "inception1080p", Url: "7.mkv", Status: model.StatusPending}
	require.NoError(t, database.GetDB().Create(movie).Error)
	return movie
}

func assertEnriched(t *testing.T, movieId int) {
	t.Helper()
	movie := &model.Movie{}
	require.NoError(t, database.GetDB().First(movie, movieId).Error)
	assert.Equal(t, model.StatusPublished, movie.Status)
	assert.Equal(t, "Inception", movie.Name)
	assert.Equal(t, "A thief who steals corporate secrets.", movie.Description)
	assert.Equal(t, "Action, Sci-Fi", movie.Genres)
	assert.Equal(t, 91, movie.Ratings)
	assert.Equal(t, "http://x/p.jpg", movie.Poster)
}

func TestEnrich(t *testing.T) {
	initTestDB(t)
	seedPendingMovie(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(inceptionJSON))
	}))
	defer upstream.Close()

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient(upstream.URL, "test-key"))
	movie, err := enrichment.Enrich(context.Background(), 7, "Inception")
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Name)
	assertEnriched(t, 7)
}

func TestEnrichGzipResponse(t *testing.T) {
	initTestDB(t)
	seedPendingMovie(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(inceptionJSON))
		_ = gz.Close()
	}))
	defer upstream.Close()

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient(upstream.URL, "test-key"))
	_, err := enrichment.Enrich(context.Background(), 7, "Inception")
	require.NoError(t, err)
	assertEnriched(t, 7)
}

func TestEnrichUpstreamFailure(t *testing.T) {
	initTestDB(t)
	seedPendingMovie(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient(upstream.URL, "test-key"))
	_, err := enrichment.Enrich(context.Background(), 7, "Inception")
	assert.ErrorIs(t, err, ErrEnrichmentFailed)

	// the pending record stays untouched for a later retry
	movie := &model.Movie{}
	require.NoError(t, database.GetDB().First(movie, 7).Error)
	assert.Equal(t, model.StatusPending, movie.Status)
	assert.Equal(t, "inception1080p", movie.Name)
	assert.Empty(t, movie.Genres)
}

func TestEnrichPartialResponse(t *testing.T) {
	initTestDB(t)
	seedPendingMovie(t)

	// a bare title with no synopsis/genres/score/poster must not publish
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "Inception"}`))
	}))
	defer upstream.Close()

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient(upstream.URL, "test-key"))
	_, err := enrichment.Enrich(context.Background(), 7, "Inception")
	assert.ErrorIs(t, err, ErrEnrichmentFailed)

	movie := &model.Movie{}
	require.NoError(t, database.GetDB().First(movie, 7).Error)
	assert.Equal(t, model.StatusPending, movie.Status)
	assert.Equal(t, "inception1080p", movie.Name)
	assert.Empty(t, movie.Description)
	assert.Empty(t, movie.Genres)
	assert.Empty(t, movie.Poster)
	assert.Zero(t, movie.Ratings)
}

func TestEnrichMalformedResponse(t *testing.T) {
	initTestDB(t)
	seedPendingMovie(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "movie not found"}`))
	}))
	defer upstream.Close()

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient(upstream.URL, "test-key"))
	_, err := enrichment.Enrich(context.Background(), 7, "Inception")
	assert.ErrorIs(t, err, ErrEnrichmentFailed)

	movie := &model.Movie{}
	require.NoError(t, database.GetDB().First(movie, 7).Error)
	assert.Equal(t, model.StatusPending, movie.Status)
}

func TestEnrichMissingMovie(t *testing.T) {
	initTestDB(t)

	enrichment := NewEnrichmentServiceWithClient(ratings.NewClient("http://127.0.0.1:0", "test-key"))
	_, err := enrichment.Enrich(context.Background(), 42, "Inception")
	assert.True(t, database.IsNotFound(err))
}
