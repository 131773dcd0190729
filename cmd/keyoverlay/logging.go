package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func getLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	logDir := filepath.Join(home, ".local", "share", "keyoverlay", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}
	return logDir, nil
}

// setupLogging sends the standard logger to the log file.
func setupLogging() (*os.File, error) {
	logDir, err := getLogDir()
	if err != nil {
		return nil, fmt.Errorf("get log directory: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(logDir, "keyoverlay.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}
