package service

import (
	"context"
	"fmt"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/ratings"
)

// EnrichmentService publishes pending movies by pulling metadata from the
// external ratings API.
type EnrichmentService struct {
	client *ratings.Client
}

func NewEnrichmentService() *EnrichmentService {
	return &EnrichmentService{
		client: ratings.NewClient(config.GetRatingsAPIURL(), config.GetRatingsAPIKey()),
	}
}

// NewEnrichmentServiceWithClient is used by tests to point the service at a
// mock API.
func NewEnrichmentServiceWithClient(client *ratings.Client) *EnrichmentService {
	return &EnrichmentService{client: client}
}

// Enrich looks the title up on the ratings API and overwrites the pending
// record's metadata, flipping it to published. On any upstream or parse
// failure the record is left untouched so it stays in the pending queue for
// a later retry.
func (s *EnrichmentService) Enrich(ctx context.Context, movieId int, queryTitle string) (*model.Movie, error) {
	db := database.GetDB()

	movie := &model.Movie{}
	if err := db.First(movie, movieId).Error; err != nil {
		return nil, err
	}

	info, err := s.client.Lookup(ctx, queryTitle)
	if err != nil {
		logger.Warningf("enrich movie %d (%q): %v", movieId, queryTitle, err)
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}

	movie.Name = info.Title
	movie.Description = info.Synopsis
	movie.Genres = model.JoinGenres(info.Genres)
	movie.Ratings = *info.Ratings.AudienceScore
	movie.Poster = info.Posters.Thumbnail
	movie.Status = model.StatusPublished

	if err := db.Save(movie).Error; err != nil {
		return nil, err
	}

	logger.Infof("movie %d published as %q", movie.Id, movie.Name)
	return movie, nil
}
