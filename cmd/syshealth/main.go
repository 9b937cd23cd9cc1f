package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"syshealth/internal/collector"
	"syshealth/internal/config"
	"syshealth/internal/logger"
	"syshealth/internal/report"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.Open(cfg.LogDir, time.Now())
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	appLog := logger.New(io.MultiWriter(os.Stdout, logFile), logger.ParseLevel(cfg.LogLevel))

	sampler := collector.NewSampler(appLog, cfg.DiskPath)
	reporter := report.New(sampler, appLog)

	if err := reporter.Run(context.Background()); err != nil {
		log.Fatalf("Report failed: %v", err)
	}
}
