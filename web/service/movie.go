package service

import (
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
)

// MovieItem is a published movie prepared for display, with the genre
// column split into individual tags.
type MovieItem struct {
	model.Movie
	Tags []string
}

type MovieService struct{}

func toItem(m *model.Movie) MovieItem {
	return MovieItem{Movie: *m, Tags: m.GenreList()}
}

// ListMovies returns the published catalog ordered by the given sort key
// and direction, plus the unordered pending queue awaiting enrichment.
//
// sortKey "rating" orders by the ratings column and "name" by name; any
// other value falls back to name ascending with the direction ignored.
// The direction is ascending unless it is exactly "desc".
func (s *MovieService) ListMovies(sortKey string, direction string) ([]MovieItem, []model.Movie, error) {
	db := database.GetDB()

	if direction != "desc" {
		direction = "asc"
	}

	var order string
	switch sortKey {
	case "rating":
		order = "ratings " + direction
	case "name":
		order = "name " + direction
	default:
		order = "name"
	}

	var published []model.Movie
	err := db.Model(model.Movie{}).
		Where("status = ?", model.StatusPublished).
		Order(order).
		Find(&published).
		Error
	if err != nil {
		return nil, nil, err
	}

	items := make([]MovieItem, 0, len(published))
	for i := range published {
		items = append(items, toItem(&published[i]))
	}

	var pending []model.Movie
	err = db.Model(model.Movie{}).
		Where("status = ?", model.StatusPending).
		Find(&pending).
		Error
	if err != nil {
		return nil, nil, err
	}

	return items, pending, nil
}

// SearchByTag returns published movies whose genre list contains an exact
// match for tag. Matching is case-sensitive whole-token equality, so a
// movie tagged "Action-Comedy" does not match "Action".
func (s *MovieService) SearchByTag(tag string) ([]MovieItem, error) {
	db := database.GetDB()

	var movies []model.Movie
	err := db.Model(model.Movie{}).
		Where("status = ?", model.StatusPublished).
		Find(&movies).
		Error
	if err != nil {
		return nil, err
	}

	hits := make([]MovieItem, 0)
	for i := range movies {
		for _, t := range movies[i].GenreList() {
			if t == tag {
				hits = append(hits, toItem(&movies[i]))
				break
			}
		}
	}
	return hits, nil
}

func (s *MovieService) GetMovie(id int) (*model.Movie, error) {
	db := database.GetDB()

	movie := &model.Movie{}
	err := db.First(movie, id).Error
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// ListPending returns the enrichment queue.
func (s *MovieService) ListPending() ([]model.Movie, error) {
	db := database.GetDB()

	var pending []model.Movie
	err := db.Model(model.Movie{}).
		Where("status = ?", model.StatusPending).
		Find(&pending).
		Error
	if err != nil {
		return nil, err
	}
	return pending, nil
}
