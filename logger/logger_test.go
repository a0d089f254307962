package logger

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogs(t *testing.T) {
	t.Setenv("FILMSTASH_LOG_FOLDER", t.TempDir())
	InitLogger(logging.ERROR)

	Debug("scanning video folder")
	Warning("ratings api slow")
	Error("upstream unreachable")

	errorsOnly := GetLogs(10, "ERROR")
	require.Len(t, errorsOnly, 1)
	assert.Contains(t, errorsOnly[0], "upstream unreachable")

	// DEBUG includes everything, newest first
	all := GetLogs(10, "DEBUG")
	require.GreaterOrEqual(t, len(all), 3)
	assert.Contains(t, all[0], "upstream unreachable")
	assert.Contains(t, all[1], "ratings api slow")
	assert.Contains(t, all[2], "scanning video folder")
}
