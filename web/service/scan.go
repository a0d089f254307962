package service

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"

	"go.uber.org/atomic"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
}

// ScanService discovers raw video files in the library folder and registers
// them as pending movies for later enrichment.
type ScanService struct {
	running atomic.Bool
}

// ScanLibrary walks the video folder once and inserts a pending record for
// every video file not yet in the catalog. Inserts are keyed on the file
// name, so repeated scans are idempotent. Returns the number of new records.
func (s *ScanService) ScanLibrary() (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer s.running.Store(false)

	folder := config.GetVideoFolderPath()
	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, err
	}

	db := database.GetDB()
	added := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !videoExtensions[ext] {
			continue
		}

		var count int64
		err := db.Model(model.Movie{}).Where("url = ?", name).Count(&count).Error
		if err != nil {
			return added, err
		}
		if count > 0 {
			continue
		}

		movie := &model.Movie{
			Name:   strings.TrimSuffix(name, filepath.Ext(name)),
			Url:    name,
			Status: model.StatusPending,
		}
		if err := db.Create(movie).Error; err != nil {
			return added, err
		}
		logger.Infof("discovered %q, awaiting enrichment", name)
		added++
	}
	return added, nil
}
