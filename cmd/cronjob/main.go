package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"studygroups-backend/internal/config"
	"studygroups-backend/internal/jobs"
	"studygroups-backend/internal/logger"
	"studygroups-backend/internal/repository/postgres"
	"studygroups-backend/internal/retry"
	"studygroups-backend/internal/scheduler"
	"studygroups-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reconcile-member-counts', 'all-nightly', 'all-weekly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Study Groups Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	memberSvc := service.NewMembershipService(
		store.GroupRepository,
		store.MembershipRepository,
		store.JoinRequestRepository,
		store.UserRepository,
		emailSvc,
		retry.Policy{
			MaxRetries:      uint64(cfg.Recount.MaxRetries),
			InitialInterval: time.Duration(cfg.Recount.InitialIntervalMs) * time.Millisecond,
		},
	)

	jobServices := &jobs.Services{
		Membership: memberSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "reconcile-member-counts":
		jobRunner.ReconcileMemberCounts()
	case "archive-idle-groups":
		jobRunner.ArchiveIdleGroups()
	case "purge-processed-requests":
		jobRunner.PurgeProcessedRequests()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-weekly":
		jobRunner.RunAllWeeklyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - reconcile-member-counts\n")
		fmt.Printf("  - archive-idle-groups\n")
		fmt.Printf("  - purge-processed-requests\n")
		fmt.Printf("  - all-nightly\n")
		fmt.Printf("  - all-weekly\n")
		os.Exit(1)
	}
}
