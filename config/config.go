package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("FILMSTASH_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("FILMSTASH_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("FILMSTASH_LISTEN")
	if listen == "" {
		listen = "0.0.0.0"
	}
	return listen
}

func GetPort() string {
	port := os.Getenv("FILMSTASH_PORT")
	if port == "" {
		port = "8880"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("FILMSTASH_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/filmstash"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("FILMSTASH_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetVideoFolderPath is where the raw video files live. The fronting HTTP
// server must expose the same directory as /raw_videos for X-Accel-Redirect
// to work.
func GetVideoFolderPath() string {
	videoFolderPath := os.Getenv("FILMSTASH_VIDEO_FOLDER")
	if videoFolderPath == "" {
		videoFolderPath = "/srv/videos"
	}
	return videoFolderPath
}

func GetRatingsAPIURL() string {
	ratingsURL := os.Getenv("FILMSTASH_RATINGS_API")
	if ratingsURL == "" {
		ratingsURL = "http://api.rottentomatoes.com/api/public/v1.0/movies"
	}
	return ratingsURL
}

func GetRatingsAPIKey() string {
	return os.Getenv("FILMSTASH_RATINGS_KEY")
}

func GetSessionSecret() string {
	return os.Getenv("FILMSTASH_SESSION_SECRET")
}

func GetCertFile() string {
	return os.Getenv("FILMSTASH_CERT_FILE")
}

func GetKeyFile() string {
	return os.Getenv("FILMSTASH_KEY_FILE")
}
