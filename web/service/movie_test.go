package service

import (
	"testing"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovies(t *testing.T) {
	t.Helper()
	db := database.GetDB()
	movies := []model.Movie{
		{Name: "Brazil", Genres: "Comedy, Sci-Fi", Ratings: 88, Url: "3.mp4", Status: model.StatusPublished},
		{Name: "Alien", Genres: "Horror, Sci-Fi", Ratings: 94, Url: "1.mp4", Status: model.StatusPublished},
		{Name: "Clerks", Genres: "Action-Comedy", Ratings: 72, Url: "2.mkv", Status: model.StatusPublished},
		{Name: "unknown4", Url: "4.webm", Status: model.StatusPending},
	}
	for i := range movies {
		require.NoError(t, db.Create(&movies[i]).Error)
	}
}

func publishedNames(items []MovieItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestListMoviesDefaultSort(t *testing.T) {
	initTestDB(t)
	seedMovies(t)

	movieService := MovieService{}

	// unspecified and unrecognized sort keys both order by name ascending,
	// direction ignored
	for _, sortKey := range []string{"", "bogus"} {
		published, pending, err := movieService.ListMovies(sortKey, "desc")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alien", "Brazil", "Clerks"}, publishedNames(published))
		assert.Len(t, pending, 1)
		assert.Equal(t, "unknown4", pending[0].Name)
	}
}

func TestListMoviesSorting(t *testing.T) {
	initTestDB(t)
	seedMovies(t)

	movieService := MovieService{}

	published, _, err := movieService.ListMovies("rating", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien", "Brazil", "Clerks"}, publishedNames(published))

	published, _, err = movieService.ListMovies("rating", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Clerks", "Brazil", "Alien"}, publishedNames(published))

	published, _, err = movieService.ListMovies("name", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Clerks", "Brazil", "Alien"}, publishedNames(published))

	// anything but "desc" means ascending
	published, _, err = movieService.ListMovies("name", "sideways")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien", "Brazil", "Clerks"}, publishedNames(published))
}

func TestListMoviesSplitsGenres(t *testing.T) {
	initTestDB(t)
	seedMovies(t)

	movieService := MovieService{}
	published, _, err := movieService.ListMovies("", "")
	require.NoError(t, err)

	require.Len(t, published, 3)
	assert.Equal(t, []string{"Horror", "Sci-Fi"}, published[0].Tags)
	assert.Equal(t, []string{"Comedy", "Sci-Fi"}, published[1].Tags)
	assert.Equal(t, []string{"Action-Comedy"}, published[2].Tags)
}

func TestSearchByTag(t *testing.T) {
	initTestDB(t)
	seedMovies(t)

	movieService := MovieService{}

	hits, err := movieService.SearchByTag("Sci-Fi")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Brazil", "Alien"}, publishedNames(hits))
	for _, hit := range hits {
		assert.NotEmpty(t, hit.Tags)
	}

	// whole-token equality: "Action-Comedy" is one tag, not a match
	hits, err = movieService.SearchByTag("Action")
	require.NoError(t, err)
	assert.Empty(t, hits)

	// case-sensitive
	hits, err = movieService.SearchByTag("sci-fi")
	require.NoError(t, err)
	assert.Empty(t, hits)

	// pending movies are not searchable
	hits, err = movieService.SearchByTag("")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestGetMovie(t *testing.T) {
	initTestDB(t)
	seedMovies(t)

	movieService := MovieService{}

	movie, err := movieService.GetMovie(1)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", movie.Name)

	_, err = movieService.GetMovie(404)
	assert.True(t, database.IsNotFound(err))
}
