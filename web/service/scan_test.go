package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLibrary(t *testing.T) {
	initTestDB(t)

	videoDir := t.TempDir()
	t.Setenv("FILMSTASH_VIDEO_FOLDER", videoDir)

	for _, name := range []string{"alien.mp4", "brazil.mkv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(videoDir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(videoDir, "extras.mp4"), 0o755))

	scanService := &ScanService{}
	added, err := scanService.ScanLibrary()
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	var pending []model.Movie
	require.NoError(t, database.GetDB().Where("status = ?", model.StatusPending).Order("url asc").Find(&pending).Error)
	require.Len(t, pending, 2)
	assert.Equal(t, "alien", pending[0].Name)
	assert.Equal(t, "alien.mp4", pending[0].Url)
	assert.Equal(t, "brazil", pending[1].Name)

	// repeated scans are idempotent
	added, err = scanService.ScanLibrary()
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	// new files picked up on the next pass
	require.NoError(t, os.WriteFile(filepath.Join(videoDir, "clerks.webm"), []byte("x"), 0o644))
	added, err = scanService.ScanLibrary()
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}
