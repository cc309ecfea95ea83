package main

import (
	"context"
	"flag"
	"log"

	"github.com/carverauto/journalgate/pkg/config"
	journalwriter "github.com/carverauto/journalgate/pkg/consumers/journal-writer"
	"github.com/carverauto/journalgate/pkg/lifecycle"
	"github.com/carverauto/journalgate/pkg/logger"
)

func main() {
	configPath := flag.String("config", "/etc/journalgate/consumers/journal-writer.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	var cfg journalwriter.JournalWriterConfig
	if err := config.LoadFile(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loggerConfig := cfg.Logging
	if loggerConfig == nil {
		loggerConfig = logger.DefaultConfig()
	}

	serviceLogger, err := lifecycle.CreateComponentLogger(ctx, "journal-writer", loggerConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	svc, err := journalwriter.NewService(&cfg, serviceLogger)
	if err != nil {
		log.Fatalf("Failed to initialize journal writer service: %v", err)
	}

	if err := lifecycle.Run(ctx, svc, serviceLogger); err != nil {
		log.Fatalf("Journal writer failed: %v", err)
	}
}
