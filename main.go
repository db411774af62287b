package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drujensen/taskapi/internal/domain/interfaces"
	"github.com/drujensen/taskapi/internal/domain/services"
	"github.com/drujensen/taskapi/internal/impl/config"
	"github.com/drujensen/taskapi/internal/impl/database"
	repositoriesJson "github.com/drujensen/taskapi/internal/impl/repositories/json"
	repositoriesMongo "github.com/drujensen/taskapi/internal/impl/repositories/mongo"
	"github.com/drujensen/taskapi/internal/server"

	"go.uber.org/zap"
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"
)

const tasksCollection = "tasks"

func main() {
	// Check version flag first
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		os.Exit(0)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: taskapi [--storage=type]\n")
		flag.PrintDefaults()
	}

	storage := flag.String("storage", "mongo", "Storage type: mongo or file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *storage != "file" && *storage != "mongo" {
		fmt.Fprintf(os.Stderr, "Invalid storage type: %s\n", *storage)
		flag.Usage()
		os.Exit(1)
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if *debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	var taskRepo interfaces.TaskRepository

	if *storage == "mongo" {
		db := database.NewMongoDB(cfg.MongoURI, cfg.Database, logger)
		// Requests are served while the connection is still being established.
		db.ConnectAsync()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Disconnect(ctx); err != nil {
				logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
			}
		}()

		taskRepo = repositoriesMongo.NewMongoTaskRepository(db, tasksCollection, logger)
	} else {
		taskRepo, err = repositoriesJson.NewJSONTaskRepository(cfg.DataDir, logger)
		if err != nil {
			logger.Fatal("Failed to initialize task repository", zap.Error(err))
		}
	}

	taskService := services.NewTaskService(taskRepo, logger)
	srv := server.New(cfg, taskService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server failed", zap.Error(err))
	}
}
