// Package logging configures the global zerolog logger for the desktop shell.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup wires the global logger to stderr plus a rotating log file under
// the user config dir. Returns the log file path, empty when file logging
// could not be set up (console logging still works).
func Setup(debug bool) string {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	logPath := logFilePath()
	if logPath == "" {
		log.Logger = log.Output(console)
		return ""
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // MB
		MaxBackups: 2,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(console, fileWriter))
	return logPath
}

func logFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(configDir, "aio", "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "desktop.log")
}
