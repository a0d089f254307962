// Package job contains the cron-scheduled background jobs.
package job

import (
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/util/common"
	"github.com/filmstash/filmstash/web/service"
)

// ScanMovieJob periodically scans the video folder for new files.
type ScanMovieJob struct {
	scanService service.ScanService
}

func NewScanMovieJob() *ScanMovieJob {
	return new(ScanMovieJob)
}

func (j *ScanMovieJob) Run() {
	defer common.Recover("scan movie job")

	added, err := j.scanService.ScanLibrary()
	if err != nil {
		logger.Warning("scan video folder failed:", err)
		return
	}
	if added > 0 {
		logger.Infof("library scan added %d pending movie(s)", added)
	}
}
