package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bankdash/cmd/category"
	"bankdash/cmd/categorize"
	"bankdash/cmd/fetch"
	"bankdash/cmd/root"
	"bankdash/cmd/rules"
	"bankdash/cmd/summary"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently before any logging happens
	loadEnvSilently()

	// Configure global log level directly so early log lines honor it
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(fetch.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
