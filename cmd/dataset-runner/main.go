package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"ecommerce-dataset/internal/config"
	"ecommerce-dataset/internal/database"
	"ecommerce-dataset/internal/pipeline"
)

func main() {
	var exitCode int
	defer func() {
		os.Exit(exitCode)
	}()

	configPath := flag.String("config", "config.yaml", "path to the config file")
	stage := flag.String("stage", "all", "stage to run (generate, load, analyze, or all)")
	dbType := flag.String("db", "postgres", "database type (postgres or mysql)")
	seed := flag.Uint64("seed", 0, "override the configured random seed (0 keeps the config value)")
	repeat := flag.Int("repeat", 1, "times to run each analytical query (>1 reports latency percentiles)")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		exitCode = 1
		return
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		exitCode = 1
		return
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *repeat < 1 {
		log.Printf("repeat must be at least 1, got %d", *repeat)
		exitCode = 1
		return
	}

	ctx := context.Background()

	var driver database.Driver
	needsDB := *stage == "load" || *stage == "analyze" || *stage == "all"
	if needsDB {
		dbs := map[string]struct {
			driver database.Driver
			dsn    string
		}{
			"postgres": {&database.PostgresDriver{}, cfg.Databases.Postgres},
			"mysql":    {&database.MySQLDriver{}, cfg.Databases.MySQL},
		}
		entry, ok := dbs[*dbType]
		if !ok {
			log.Printf("Unsupported database type: %s", *dbType)
			exitCode = 1
			return
		}
		if err := entry.driver.Connect(ctx, entry.dsn); err != nil {
			log.Printf("Failed to connect to %s: %v", *dbType, err)
			exitCode = 1
			return
		}
		driver = entry.driver
		defer driver.Close(ctx)
	}

	p := pipeline.New(cfg, driver, logger)
	logger.Info("starting run", zap.String("run_id", p.RunID()), zap.String("stage", *stage))

	switch *stage {
	case "generate":
		_, err = p.Generate()
	case "load":
		err = p.Load(ctx, nil)
	case "analyze":
		err = p.Analyze(ctx, *repeat)
	case "all":
		err = runAll(ctx, p, *repeat)
	default:
		log.Printf("Unsupported stage: %s", *stage)
		exitCode = 1
		return
	}
	if err != nil {
		logger.Error("run failed", zap.String("run_id", p.RunID()), zap.Error(err))
		exitCode = 1
		return
	}
	logger.Info("run completed", zap.String("run_id", p.RunID()))
}

func runAll(ctx context.Context, p *pipeline.Pipeline, repeat int) error {
	ds, err := p.Generate()
	if err != nil {
		return err
	}
	if err := p.Load(ctx, ds); err != nil {
		return err
	}
	return p.Analyze(ctx, repeat)
}
